package coachingService

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/coaching"
	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
)

var coachingPersonalityTones = map[string]string{
	"cheerful":   "friendly, positive, and gently encouraging",
	"serious":    "calm, clear, and direct",
	"motivating": "energetic, supportive, and action-oriented",
}

// GenerateMessage selects a break activity the user has not seen recently
// and asks the model for a two-sentence coaching message around it. Both
// the model call and the rotation bookkeeping degrade gracefully; the
// caller always gets a message naming the selected break.
func (s *coachingService) GenerateMessage(ctx context.Context, req coaching.GenerateMessageRequest) (coaching.GenerateMessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	habitSummary := s.habitStatusSummary(ctx, req.UserID)

	stressContext := stressContext(req.StressLevel)

	recentTitles, err := s.redis.GetRecentBreaks(ctx, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to fetch recent breaks, selecting from full library")
		recentTitles = nil
	}

	selected := selectBreak(recentTitles, s.pickIndex)

	if err := s.redis.PushRecentBreak(ctx, req.UserID, selected.Title, maxRecentBreaks); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to store recent break selection")
	}

	tone, ok := coachingPersonalityTones[req.Personality]
	if !ok {
		tone = coachingPersonalityTones["cheerful"]
	}

	systemPrompt := fmt.Sprintf(`You are BreathePulse, an AI microbreak coach with a %s personality. Your goal is to provide a brief, supportive message suggesting a specific break activity.
The user's current estimated stress level context is '%s'.
Consider the user's habit progress for today when crafting the message. Be mindful and avoid being pushy.
Generate ONLY the coaching message itself, maximum 2 short sentences. Do NOT include greetings like "Hi there" or sign-offs.`, tone, stressContext)

	userPrompt := fmt.Sprintf(`Suggest a '%s' break. It falls under the category '%s'. Briefly describe or hint at how to do it if appropriate for the tone.

User's Habit Status:
%s

Generate the coaching message:`, selected.Title, selected.Category, habitSummary)

	message, err := s.coachAI.GenerateCoachingMessage(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate coaching message, using fallback")
		return coaching.GenerateMessageResponse{
			Message: fmt.Sprintf("How about a short '%s' break to reset?", selected.Title),
		}, nil
	}

	if message == "" {
		message = fmt.Sprintf("Maybe a quick '%s' break would feel good right now?", selected.Title)
	}

	return coaching.GenerateMessageResponse{Message: message}, nil
}

func (s *coachingService) CreateHabit(ctx context.Context, req coaching.CreateHabitRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	habit := entity.Habit{
		ID:            ULID,
		UserID:        req.UserID,
		Name:          req.Name,
		IsActive:      true,
		CurrentStreak: 0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := repo.Habit.CreateHabit(ctx, habit); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create habit")
		return coaching.ErrCreateHabit
	}

	return nil
}

func (s *coachingService) GetHabits(ctx context.Context, userID string) (coaching.HabitListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return coaching.HabitListResponse{}, err
	}

	habits, err := repo.Habit.GetHabitsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get habits")
		return coaching.HabitListResponse{}, err
	}

	now := time.Now()
	responses := make([]coaching.HabitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, makeHabitResponse(habit, now))
	}

	return coaching.HabitListResponse{Habits: responses}, nil
}

// CompleteHabit marks a habit done for today. Completing twice on the same
// day is a no-op; completing on the day after the last completion extends
// the streak; any larger gap resets the streak to 1.
func (s *coachingService) CompleteHabit(ctx context.Context, userID string, habitID string) (coaching.HabitResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return coaching.HabitResponse{}, err
	}

	habit, err := repo.Habit.GetHabitByID(ctx, habitID)
	if err != nil {
		return coaching.HabitResponse{}, err
	}

	if habit.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"habit_id":   habitID,
		}).Warn("Habit does not belong to user")
		return coaching.HabitResponse{}, coaching.ErrHabitNotOwned
	}

	now := time.Now()

	if habit.CompletedToday(now) {
		return makeHabitResponse(habit, now), nil
	}

	habit.CurrentStreak = nextStreak(habit, now)
	completedAt := now
	habit.LastCompletedDate = &completedAt

	if err := repo.Habit.UpdateHabitCompletion(ctx, habit); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update habit completion")
		return coaching.HabitResponse{}, err
	}

	return makeHabitResponse(habit, now), nil
}

// WeeklySummary builds a short Gemini-generated recap over the user's
// last seven days of moods and habit completions.
func (s *coachingService) WeeklySummary(ctx context.Context, userID string) (coaching.WeeklySummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return coaching.WeeklySummaryResponse{}, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -7)

	moods, err := repo.Mood.GetMoodEntriesSince(ctx, userID, since)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch moods for weekly summary")
		return coaching.WeeklySummaryResponse{}, err
	}

	habits, err := repo.Habit.GetHabitsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch habits for weekly summary")
		return coaching.WeeklySummaryResponse{}, err
	}

	prompt := buildWeeklySummaryPrompt(moods, habits, now)

	summary, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Gemini weekly summary generation failed")
		return coaching.WeeklySummaryResponse{}, coaching.ErrSummaryUnavailable
	}

	return coaching.WeeklySummaryResponse{Summary: strings.TrimSpace(summary)}, nil
}

func (s *coachingService) habitStatusSummary(ctx context.Context, userID string) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		return "(Habit tracking data is currently unavailable)"
	}

	habits, err := repo.Habit.GetHabitsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to fetch habits for coaching message")
		return "(Habit tracking data is currently unavailable)"
	}

	return habitStatusLines(habits, time.Now())
}

func habitStatusLines(habits []entity.Habit, now time.Time) string {
	if len(habits) == 0 {
		return "No habits tracked yet."
	}

	lines := make([]string, 0, len(habits))
	for _, habit := range habits {
		status := "Not Completed"
		if habit.CompletedToday(now) {
			status = "Completed"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", habit.Name, status))
	}

	return "Today's Habit Status:\n" + strings.Join(lines, "\n")
}

// stressContext maps the numeric stress level to the band used in the
// coaching prompt. 40 and up is the red zone, 30 and up the yellow zone.
func stressContext(stressLevel float64) string {
	switch {
	case stressLevel >= 40:
		return "quite high"
	case stressLevel >= 30:
		return "elevated"
	default:
		return "normal"
	}
}

func nextStreak(habit entity.Habit, now time.Time) int {
	if habit.LastCompletedDate == nil {
		return 1
	}

	lastY, lastM, lastD := habit.LastCompletedDate.UTC().Date()
	lastDay := time.Date(lastY, lastM, lastD, 0, 0, 0, 0, time.UTC)

	nowY, nowM, nowD := now.UTC().Date()
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, time.UTC)

	if today.Sub(lastDay) == 24*time.Hour {
		return habit.CurrentStreak + 1
	}
	return 1
}

func makeHabitResponse(habit entity.Habit, now time.Time) coaching.HabitResponse {
	response := coaching.HabitResponse{
		ID:             habit.ID,
		Name:           habit.Name,
		Streak:         habit.CurrentStreak,
		CompletedToday: habit.CompletedToday(now),
	}

	if habit.LastCompletedDate != nil {
		response.LastCompletedDate = habit.LastCompletedDate.UTC().Format(time.RFC3339)
	}

	return response
}

func buildWeeklySummaryPrompt(moods []entity.MoodEntry, habits []entity.Habit, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("You are BreathePulse, an AI wellness companion. Write a short, encouraging weekly wellness summary for the user based on the data below. Maximum 3 sentences. Do not include greetings or sign-offs.\n\n")

	sb.WriteString("Moods recorded over the last 7 days:\n")
	if len(moods) == 0 {
		sb.WriteString("(none recorded)\n")
	} else {
		for _, mood := range moods {
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", mood.CreatedAt.Format("2006-01-02"), mood.MoodEmoji))
		}
	}

	sb.WriteString("\nHabits:\n")
	if len(habits) == 0 {
		sb.WriteString("(no habits tracked)\n")
	} else {
		for _, habit := range habits {
			status := "not completed today"
			if habit.CompletedToday(now) {
				status = "completed today"
			}
			sb.WriteString(fmt.Sprintf("- %s: current streak %d days, %s\n", habit.Name, habit.CurrentStreak, status))
		}
	}

	return sb.String()
}
