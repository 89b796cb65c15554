package chatService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/chat"
	chatRepository "BreathePulse/internal/api/chat/repository"
	coachingRepository "BreathePulse/internal/api/coaching/repository"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/utils"
)

type IChatService interface {
	ChatWithCoach(ctx context.Context, req chat.ChatWithCoachRequest) (chat.ChatWithCoachResponse, error)
	RecordMood(ctx context.Context, req chat.RecordMoodRequest) error
	UpdateJournal(ctx context.Context, req chat.UpdateJournalRequest) error
}

type chatService struct {
	log                *logrus.Logger
	chatRepository     chatRepository.Repository
	coachingRepository coachingRepository.Repository
	coachAI            openai.ICoachAI
	utils              utils.IUtils
}

func NewChatService(
	log *logrus.Logger,
	cr chatRepository.Repository,
	hr coachingRepository.Repository,
	coachAI openai.ICoachAI,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:                log,
		chatRepository:     cr,
		coachingRepository: hr,
		coachAI:            coachAI,
		utils:              utils,
	}
}
