package coachingHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	coachingService "BreathePulse/internal/api/coaching/service"
	"BreathePulse/internal/middleware"
)

type CoachingHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	coachingService coachingService.ICoachingService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs coachingService.ICoachingService,
) *CoachingHandler {
	return &CoachingHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		coachingService: cs,
	}
}

func (h *CoachingHandler) Start(srv fiber.Router) {
	group := srv.Group("/coaching")
	group.Post("/message", h.middleware.NewTokenMiddleware, h.GenerateMessage)
	group.Post("/habits", h.middleware.NewTokenMiddleware, h.CreateHabit)
	group.Get("/habits", h.middleware.NewTokenMiddleware, h.GetHabits)
	group.Post("/habits/:id/complete", h.middleware.NewTokenMiddleware, h.CompleteHabit)
	group.Get("/summary", h.middleware.NewTokenMiddleware, h.WeeklySummary)
}
