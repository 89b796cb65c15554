package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"BreathePulse/internal/config"
	"BreathePulse/pkg/facemesh"
	"BreathePulse/pkg/log"
	"BreathePulse/pkg/redis"
	"BreathePulse/pkg/smtp"
	"BreathePulse/pkg/stress"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	if err := stress.DefaultCalibration().Validate(); err != nil {
		logger.Fatalf("Invalid stress calibration: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	smtpMailer := smtp.New()
	faceMesh := facemesh.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithFaceMesh(faceMesh),
		config.WithMiddleware(),
		config.WithGeminiClient(),
		config.WithCoachAI(),
		config.WithUtils(),
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

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
