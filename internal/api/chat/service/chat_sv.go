package chatService

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/chat"
	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/sentiment"
)

const (
	maxJournalContextRunes = 500
	memoryContextLimit     = 10
	fallbackCoachReply     = "Sorry, I couldn't process that request. Please try again."
)

var personalityTones = map[string]string{
	"cheerful":   "friendly, positive, and gently encouraging",
	"serious":    "calm, clear, and direct",
	"motivating": "energetic, supportive, and action-oriented",
}

// ChatWithCoach assembles the wellness context around the conversation,
// asks the companion model for a reply, and afterwards tries to extract a
// new memory from the user's last message. Every context section degrades
// to a placeholder on failure; only a missing user message fails the call.
func (s *chatService) ChatWithCoach(ctx context.Context, req chat.ChatWithCoachRequest) (chat.ChatWithCoachResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	lastUserMessage := lastUserMessageContent(req.Messages)
	if lastUserMessage == "" {
		return chat.ChatWithCoachResponse{}, chat.ErrNoUserMessage
	}

	now := time.Now()

	moodContext := s.buildMoodContext(ctx, req.UserID, now)
	habitContext := s.buildHabitContext(ctx, req.UserID, now)
	journalContext := s.buildJournalContext(ctx, req.UserID)
	memoryContext := s.buildMemoryContext(ctx, req.UserID)

	sentimentCategory := sentiment.Classify(lastUserMessage)

	tone, ok := personalityTones[req.Personality]
	if !ok {
		tone = personalityTones["cheerful"]
	}

	systemPrompt := buildCoachSystemPrompt(
		req.UserID,
		tone,
		sentimentInstructions(sentimentCategory),
		moodContext,
		habitContext,
		journalContext,
		memoryContext,
	)

	history := make([]openai.ConversationMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		history = append(history, openai.ConversationMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	reply, err := s.coachAI.CoachReply(ctx, systemPrompt, history)
	if err != nil || reply == "" {
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get coach reply, using fallback")
		}
		reply = fallbackCoachReply
	}

	s.extractAndStoreMemory(ctx, req.UserID, lastUserMessage)

	return chat.ChatWithCoachResponse{
		Reply:     reply,
		Sentiment: string(sentimentCategory),
	}, nil
}

func (s *chatService) RecordMood(ctx context.Context, req chat.RecordMoodRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepository.NewClient(false)
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

	mood := entity.MoodEntry{
		ID:        ULID,
		UserID:    req.UserID,
		MoodEmoji: req.MoodEmoji,
		CreatedAt: time.Now(),
	}

	if err := repo.Mood.CreateMoodEntry(ctx, mood); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to record mood entry")
		return chat.ErrCreateMood
	}

	return nil
}

func (s *chatService) UpdateJournal(ctx context.Context, req chat.UpdateJournalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	profile := entity.Profile{
		UserID:       req.UserID,
		JournalEntry: req.JournalEntry,
	}

	if err := repo.Profile.UpsertJournalEntry(ctx, profile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update journal entry")
		return chat.ErrUpdateJournal
	}

	return nil
}

func (s *chatService) buildMoodContext(ctx context.Context, userID string, now time.Time) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepository.NewClient(false)
	if err != nil {
		return "(Error retrieving mood context)"
	}

	mood, err := repo.Mood.GetLatestMoodEntry(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "(No mood entries recorded yet)"
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch latest mood entry")
		return "(Error retrieving mood context)"
	}

	if mood.RecordedToday(now) {
		return "Today's mood: " + mood.MoodEmoji
	}
	return "Latest recorded mood: " + mood.MoodEmoji
}

func (s *chatService) buildHabitContext(ctx context.Context, userID string, now time.Time) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.coachingRepository.NewClient(false)
	if err != nil {
		return "(Habit tracking context is unavailable)"
	}

	habits, err := repo.Habit.GetHabitsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch habits for chat context")
		return "(Error retrieving habit context)"
	}

	return buildHabitSummary(habits, now)
}

func (s *chatService) buildJournalContext(ctx context.Context, userID string) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepository.NewClient(false)
	if err != nil {
		return "(Error retrieving personal journal context)"
	}

	profile, err := repo.Profile.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "(No personal journal entry provided yet)"
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch profile for chat context")
		return "(Error retrieving personal journal context)"
	}

	entry := strings.TrimSpace(profile.JournalEntry)
	if entry == "" {
		return "(No personal journal entry provided yet)"
	}

	return "User's Personal Journal Entry:\n" + truncateRunes(entry, maxJournalContextRunes)
}

func (s *chatService) buildMemoryContext(ctx context.Context, userID string) string {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.chatRepository.NewClient(false)
	if err != nil {
		return "(Error retrieving companion memory)"
	}

	memories, err := repo.Memory.GetRecentMemories(ctx, userID, memoryContextLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch companion memories")
		return "(Error retrieving companion memory)"
	}

	if len(memories) == 0 {
		return "(No companion memory recorded yet)"
	}

	// Newest first from the repository; oldest first in the prompt.
	lines := make([]string, 0, len(memories))
	for i := len(memories) - 1; i >= 0; i-- {
		memory := memories[i]
		lines = append(lines, fmt.Sprintf("- [%s] %s", memory.CreatedAt.Format("2006-01-02"), memory.Content))
	}

	return "Known facts about the user (from memory):\n" + strings.Join(lines, "\n")
}

// extractAndStoreMemory asks the model for the most important new fact in
// the user's last message and persists it. Failures are logged only; the
// chat reply has already been produced at this point.
func (s *chatService) extractAndStoreMemory(ctx context.Context, userID string, userMessage string) {
	requestID := contextPkg.GetRequestID(ctx)

	extracted, err := s.coachAI.ExtractMemory(ctx, userMessage)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Memory extraction failed")
		return
	}

	if extracted == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Debug("No significant new memory extracted")
		return
	}

	repo, err := s.chatRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client for memory storage")
		return
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID for memory")
		return
	}

	memory := entity.CompanionMemory{
		ID:        ULID,
		UserID:    userID,
		Content:   extracted,
		CreatedAt: time.Now(),
	}

	if err := repo.Memory.CreateMemory(ctx, memory); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store extracted memory")
		return
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"memory":     extracted,
	}).Debug("Stored new companion memory")
}

func lastUserMessageContent(messages []chat.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}

// buildHabitSummary renders the active habits with today's completion
// status and current streaks for the prompt context.
func buildHabitSummary(habits []entity.Habit, now time.Time) string {
	if len(habits) == 0 {
		return "(User has not set up any habits yet)"
	}

	lines := make([]string, 0, len(habits))
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}

		status := "Not Done Today"
		if habit.CompletedToday(now) {
			status = "Completed Today"
		}

		line := fmt.Sprintf("- %s [%s]", habit.Name, status)
		if habit.CurrentStreak > 0 {
			line += fmt.Sprintf(" (Current Streak: %d days)", habit.CurrentStreak)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "(User has no active habits)"
	}

	return "User's Active Habits:\n" + strings.Join(lines, "\n")
}

func sentimentInstructions(category sentiment.Category) string {
	switch category {
	case sentiment.CategoryPositive:
		return "The user's last message seems positive. Feel free to use positive emojis occasionally."
	case sentiment.CategoryNegative:
		return "The user's last message seems negative. Respond with extra empathy and support. Avoid overly cheerful emojis."
	default:
		return "The user's last message seems neutral. You can use neutral or gently positive emojis occasionally."
	}
}

func buildCoachSystemPrompt(
	userID string,
	tone string,
	sentimentContext string,
	moodContext string,
	habitContext string,
	journalContext string,
	memoryContext string,
) string {
	return fmt.Sprintf(`You are BreathePulse, an AI wellness companion with a %s personality.
You are chatting with a user (ID: %s).
Keep your responses concise, supportive, and focused on wellness, mindfulness, or productivity.

SENTIMENT CONTEXT:
%s

USER CONTEXT:
%s
%s
%s
%s

INSTRUCTIONS:
- Look at the USER CONTEXT (Mood, Habits, Journal) and SENTIMENT CONTEXT provided above.
- Start your response by acknowledging the user's latest mood, especially if it was recorded today. Adapt your tone based on the mood, your personality (%s), and the SENTIMENT CONTEXT.
- Next, greet the user by the name mentioned in their Personal Journal Entry, if available.
- Then, briefly mention the status of their active habits for today.
- Finally, continue the conversation naturally based on the user's last message and the overall context.
- Keep your responses concise and supportive.`,
		tone, userID, sentimentContext, moodContext, habitContext, journalContext, memoryContext, tone)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
