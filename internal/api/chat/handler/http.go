package chatHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	chatService "BreathePulse/internal/api/chat/service"
	"BreathePulse/internal/middleware"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validator,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	group := srv.Group("/chat")
	group.Post("/coach", h.middleware.NewTokenMiddleware, h.ChatWithCoach)
	group.Post("/mood", h.middleware.NewTokenMiddleware, h.RecordMood)
	group.Put("/journal", h.middleware.NewTokenMiddleware, h.UpdateJournal)
}
