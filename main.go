package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"tao_health_backend/bootstrap"
	"tao_health_backend/config"
	"tao_health_backend/pkg/logging"
)

func main() {
	// 环境变量
	envErr := godotenv.Load()
	logging.Init()
	if envErr != nil {
		logging.Logger.Info("no .env file loaded, using process environment", "error", envErr)
	}

	cfg := config.LoadConfig()
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	server := bootstrap.NewServer(app)

	go func() {
		logging.Logger.Info("Server running on http://localhost:" + cfg.HttpPort)
		if err := server.Listen(":" + cfg.HttpPort); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	if err := server.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logging.Logger.Error("fail server shutdown", "error", err)
	}
	if err := app.Shutdown(); err != nil {
		logging.Logger.Error("fail app shutdown", "error", err)
	}
}
