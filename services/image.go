package services

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// imageURL returns s as an image_url value. Data URIs and http(s) links pass
// through; bare base64 payloads are wrapped in a data URI whose media type is
// sniffed from the decoded bytes.
func imageURL(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		if raw, err = base64.RawStdEncoding.DecodeString(s); err != nil {
			return s
		}
	}
	mtype := mimetype.Detect(raw)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return s
	}
	return "data:" + mtype.String() + ";base64," + s
}
