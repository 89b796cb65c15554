package feedbackHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	feedbackService "BreathePulse/internal/api/feedback/service"
	"BreathePulse/internal/middleware"
)

type FeedbackHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	feedbackService feedbackService.IFeedbackService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	fs feedbackService.IFeedbackService,
) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		feedbackService: fs,
	}
}

func (h *FeedbackHandler) Start(srv fiber.Router) {
	group := srv.Group("/feedback")
	group.Post("/", h.middleware.NewTokenMiddleware, h.SubmitFeedback)
	group.Post("/chat", h.middleware.NewTokenMiddleware, h.FeedbackChat)
}
