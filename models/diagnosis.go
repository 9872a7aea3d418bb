package models

// DiagnosisResult is the structured report the diagnosis pipeline returns.
// Field presence is enforced through the validate tags; radar values are
// expected in [0,100] but are not range checked.
type DiagnosisResult struct {
	MensajeMaestro     string             `json:"mensaje_maestro" validate:"required"`
	DiagnosticoWang    DiagnosticoWang    `json:"diagnostico_wang"`
	NivelesRadar       NivelesRadar       `json:"niveles_radar"`
	CuadrantesIntegral CuadrantesIntegral `json:"cuadrantes_integral"`
}

type DiagnosticoWang struct {
	ObservacionVisual string `json:"observacion_visual" validate:"required"`
	OrganoAfectado    string `json:"organo_afectado" validate:"required"`
	SignificadoMTC    string `json:"significado_mtc" validate:"required"`
}

// NivelesRadar uses pointers so a missing element can be told apart from 0.
type NivelesRadar struct {
	Fuego  *float64 `json:"fuego" validate:"required"`
	Tierra *float64 `json:"tierra" validate:"required"`
	Metal  *float64 `json:"metal" validate:"required"`
	Agua   *float64 `json:"agua" validate:"required"`
	Madera *float64 `json:"madera" validate:"required"`
}

type CuadrantesIntegral struct {
	Yo       *Cuadrante `json:"yo" validate:"required"`
	Ello     *Cuadrante `json:"ello" validate:"required"`
	Nosotros *Cuadrante `json:"nosotros" validate:"required"`
	Ellos    *Cuadrante `json:"ellos" validate:"required"`
}

type Cuadrante struct {
	Titulo  string `json:"titulo" validate:"required"`
	Detalle string `json:"detalle" validate:"required"`
}

// AnalyzeRequest carries both hands as data-URI encoded images.
type AnalyzeRequest struct {
	LeftHand  string `json:"leftHand"`
	RightHand string `json:"rightHand"`
}
