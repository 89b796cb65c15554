package feedbackService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/feedback"
	feedbackRepository "BreathePulse/internal/api/feedback/repository"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/smtp"
	"BreathePulse/pkg/utils"
)

type IFeedbackService interface {
	SubmitFeedback(ctx context.Context, req feedback.SubmitFeedbackRequest) (feedback.SubmitFeedbackResponse, error)
	FeedbackChat(ctx context.Context, req feedback.FeedbackChatRequest) (feedback.FeedbackChatResponse, error)
}

type feedbackService struct {
	log                *logrus.Logger
	feedbackRepository feedbackRepository.Repository
	coachAI            openai.ICoachAI
	mailer             smtp.ItfSmtp
	utils              utils.IUtils
}

func NewFeedbackService(
	log *logrus.Logger,
	fr feedbackRepository.Repository,
	coachAI openai.ICoachAI,
	mailer smtp.ItfSmtp,
	utils utils.IUtils,
) IFeedbackService {
	return &feedbackService{
		log:                log,
		feedbackRepository: fr,
		coachAI:            coachAI,
		mailer:             mailer,
		utils:              utils,
	}
}
