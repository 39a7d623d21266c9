package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disruptio-org/face-compare-service/internal/api/compare"
	"github.com/disruptio-org/face-compare-service/internal/config"
	"github.com/disruptio-org/face-compare-service/pkg/log"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger, "Face Compare Service (Direct Upload)")),
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithMiddleware(),
		config.WithRekognitionFromEnv(),
		config.WithVariant(compare.UploadVariant),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
}
