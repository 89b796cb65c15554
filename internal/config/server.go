package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"BreathePulse/database/postgres"
	analysisHandler "BreathePulse/internal/api/analysis/handler"
	analysisService "BreathePulse/internal/api/analysis/service"
	chatHandler "BreathePulse/internal/api/chat/handler"
	chatRepository "BreathePulse/internal/api/chat/repository"
	chatService "BreathePulse/internal/api/chat/service"
	coachingHandler "BreathePulse/internal/api/coaching/handler"
	coachingRepository "BreathePulse/internal/api/coaching/repository"
	coachingService "BreathePulse/internal/api/coaching/service"
	feedbackHandler "BreathePulse/internal/api/feedback/handler"
	feedbackRepository "BreathePulse/internal/api/feedback/repository"
	feedbackService "BreathePulse/internal/api/feedback/service"
	"BreathePulse/internal/middleware"
	"BreathePulse/pkg/facemesh"
	"BreathePulse/pkg/gemini"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/redis"
	"BreathePulse/pkg/smtp"
	"BreathePulse/pkg/stress"
	"BreathePulse/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	smtpMailer   smtp.ItfSmtp
	faceMesh     facemesh.IFaceMesh
	geminiClient gemini.IGemini
	coachAI      openai.ICoachAI
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithFaceMesh(faceMesh facemesh.IFaceMesh) ServerOption {
	return func(s *Server) error {
		s.faceMesh = faceMesh
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithCoachAI() ServerOption {
	return func(s *Server) error {
		s.coachAI = openai.NewCoachAI()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Analysis Domain
	scorer := stress.NewScorer(stress.DefaultCalibration())
	analysisServices := analysisService.NewAnalysisService(s.log, s.faceMesh, scorer)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices, s.utils)

	// Chat Domain
	chatRepo := chatRepository.New(s.db, s.log)
	coachingRepo := coachingRepository.New(s.db, s.log)
	chatServices := chatService.NewChatService(s.log, chatRepo, coachingRepo, s.coachAI, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Coaching Domain
	coachingServices := coachingService.NewCoachingService(s.log, coachingRepo, s.coachAI, s.geminiClient, s.redisServer, s.utils)
	coachingHandlers := coachingHandler.New(s.log, s.validator, s.middleware, coachingServices)

	// Feedback Domain
	feedbackRepo := feedbackRepository.New(s.db, s.log)
	feedbackServices := feedbackService.NewFeedbackService(s.log, feedbackRepo, s.coachAI, s.smtpMailer, s.utils)
	feedbackHandlers := feedbackHandler.New(s.log, s.validator, s.middleware, feedbackServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, analysisHandlers, chatHandlers, coachingHandlers, feedbackHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.faceMesh != nil {
			s.faceMesh.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
