package coachingService

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/coaching"
	coachingRepository "BreathePulse/internal/api/coaching/repository"
	"BreathePulse/pkg/gemini"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/redis"
	"BreathePulse/pkg/utils"
)

type ICoachingService interface {
	GenerateMessage(ctx context.Context, req coaching.GenerateMessageRequest) (coaching.GenerateMessageResponse, error)
	CreateHabit(ctx context.Context, req coaching.CreateHabitRequest) error
	GetHabits(ctx context.Context, userID string) (coaching.HabitListResponse, error)
	CompleteHabit(ctx context.Context, userID string, habitID string) (coaching.HabitResponse, error)
	WeeklySummary(ctx context.Context, userID string) (coaching.WeeklySummaryResponse, error)
}

type coachingService struct {
	log                *logrus.Logger
	coachingRepository coachingRepository.Repository
	coachAI            openai.ICoachAI
	gemini             gemini.IGemini
	redis              redis.IRedis
	utils              utils.IUtils

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewCoachingService(
	log *logrus.Logger,
	cr coachingRepository.Repository,
	coachAI openai.ICoachAI,
	gemini gemini.IGemini,
	redis redis.IRedis,
	utils utils.IUtils,
) ICoachingService {
	return &coachingService{
		log:                log,
		coachingRepository: cr,
		coachAI:            coachAI,
		gemini:             gemini,
		redis:              redis,
		utils:              utils,
		rand:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *coachingService) pickIndex(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(n)
}
