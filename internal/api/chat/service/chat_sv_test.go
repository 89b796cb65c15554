package chatService

import (
	"database/sql"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/chat"
	chatRepository "BreathePulse/internal/api/chat/repository"
	coachingRepository "BreathePulse/internal/api/coaching/repository"
	"BreathePulse/internal/entity"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/utils"
)

type fakeMoodStore struct {
	latest  entity.MoodEntry
	err     error
	created []entity.MoodEntry
}

func (f *fakeMoodStore) CreateMoodEntry(c context.Context, mood entity.MoodEntry) error {
	f.created = append(f.created, mood)
	return f.err
}

func (f *fakeMoodStore) GetLatestMoodEntry(c context.Context, userID string) (entity.MoodEntry, error) {
	return f.latest, f.err
}

type fakeProfileStore struct {
	profile entity.Profile
	err     error
}

func (f *fakeProfileStore) GetProfile(c context.Context, userID string) (entity.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileStore) UpsertJournalEntry(c context.Context, profile entity.Profile) error {
	return f.err
}

type fakeMemoryStore struct {
	memories []entity.CompanionMemory
	err      error
	created  []entity.CompanionMemory
}

func (f *fakeMemoryStore) CreateMemory(c context.Context, memory entity.CompanionMemory) error {
	f.created = append(f.created, memory)
	return f.err
}

func (f *fakeMemoryStore) GetRecentMemories(c context.Context, userID string, limit int) ([]entity.CompanionMemory, error) {
	return f.memories, f.err
}

type fakeChatRepository struct {
	client chatRepository.Client
}

func (f *fakeChatRepository) NewClient(tx bool) (chatRepository.Client, error) {
	return f.client, nil
}

type fakeHabitStore struct {
	habits []entity.Habit
	err    error
}

func (f *fakeHabitStore) CreateHabit(c context.Context, habit entity.Habit) error { return f.err }

func (f *fakeHabitStore) GetHabitByID(c context.Context, id string) (entity.Habit, error) {
	return entity.Habit{}, f.err
}

func (f *fakeHabitStore) GetHabitsByUserID(c context.Context, userID string) ([]entity.Habit, error) {
	return f.habits, f.err
}

func (f *fakeHabitStore) UpdateHabitCompletion(c context.Context, habit entity.Habit) error {
	return f.err
}

type fakeCoachingRepository struct {
	client coachingRepository.Client
}

func (f *fakeCoachingRepository) NewClient(tx bool) (coachingRepository.Client, error) {
	return f.client, nil
}

type fakeCoachAI struct {
	reply           string
	replyErr        error
	extracted       string
	extractErr      error
	capturedPrompt  string
	capturedHistory []openai.ConversationMessage
}

func (f *fakeCoachAI) CoachReply(ctx context.Context, systemPrompt string, history []openai.ConversationMessage) (string, error) {
	f.capturedPrompt = systemPrompt
	f.capturedHistory = history
	return f.reply, f.replyErr
}

func (f *fakeCoachAI) GenerateCoachingMessage(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	return "", nil
}

func (f *fakeCoachAI) FeedbackReply(ctx context.Context, systemPrompt string, history []openai.ConversationMessage) (string, error) {
	return "", nil
}

func (f *fakeCoachAI) ExtractMemory(ctx context.Context, userMessage string) (string, error) {
	return f.extracted, f.extractErr
}

func (f *fakeCoachAI) ClassifyDistress(ctx context.Context, text string) (bool, error) {
	return false, nil
}

type fakeUtils struct{}

func (f *fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01TESTULID", nil
}

func (f *fakeUtils) ValidateImageFile(file *multipart.FileHeader) error { return nil }

func (f *fakeUtils) ConvertFileToBase64(file multipart.File) (string, error) { return "", nil }

func (f *fakeUtils) DecodeBase64Image(data string) ([]byte, error) { return nil, nil }

func testUtils() utils.IUtils { return &fakeUtils{} }

func newChatTestService(
	mood *fakeMoodStore,
	profile *fakeProfileStore,
	memory *fakeMemoryStore,
	habit *fakeHabitStore,
	coachAI *fakeCoachAI,
) IChatService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	chatRepo := &fakeChatRepository{client: chatRepository.Client{
		Mood:     mood,
		Profile:  profile,
		Memory:   memory,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}}
	coachingRepo := &fakeCoachingRepository{client: coachingRepository.Client{
		Habit:    habit,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}}

	return NewChatService(logger, chatRepo, coachingRepo, coachAI, testUtils())
}

func TestChatWithCoachAssemblesContext(t *testing.T) {
	now := time.Now()
	journal := "My name is Dana and I want to sleep earlier."
	completedAt := now.Add(-time.Hour)

	mood := &fakeMoodStore{latest: entity.MoodEntry{MoodEmoji: "😊", CreatedAt: now}}
	profile := &fakeProfileStore{profile: entity.Profile{JournalEntry: journal}}
	memory := &fakeMemoryStore{memories: []entity.CompanionMemory{
		{Content: "Works night shifts", CreatedAt: now.AddDate(0, 0, -1)},
		{Content: "Enjoys hiking", CreatedAt: now.AddDate(0, 0, -3)},
	}}
	habit := &fakeHabitStore{habits: []entity.Habit{
		{Name: "Meditation", IsActive: true, CurrentStreak: 2, LastCompletedDate: &completedAt},
	}}
	coachAI := &fakeCoachAI{reply: "Glad you're feeling good today, Dana!", extracted: ""}

	svc := newChatTestService(mood, profile, memory, habit, coachAI)

	resp, err := svc.ChatWithCoach(context.Background(), chat.ChatWithCoachRequest{
		UserID:      "user-1",
		Personality: "cheerful",
		Messages: []chat.Message{
			{Role: "user", Content: "I had a wonderful day, feeling happy and grateful"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Glad you're feeling good today, Dana!", resp.Reply)
	assert.Equal(t, "positive", resp.Sentiment)

	assert.Contains(t, coachAI.capturedPrompt, "friendly, positive, and gently encouraging")
	assert.Contains(t, coachAI.capturedPrompt, "Today's mood: 😊")
	assert.Contains(t, coachAI.capturedPrompt, "- Meditation [Completed Today] (Current Streak: 2 days)")
	assert.Contains(t, coachAI.capturedPrompt, "User's Personal Journal Entry:\n"+journal)
	assert.Contains(t, coachAI.capturedPrompt, "Known facts about the user (from memory):")

	// Oldest memory first in the prompt.
	hiking := strings.Index(coachAI.capturedPrompt, "Enjoys hiking")
	nights := strings.Index(coachAI.capturedPrompt, "Works night shifts")
	require.GreaterOrEqual(t, hiking, 0)
	require.GreaterOrEqual(t, nights, 0)
	assert.Less(t, hiking, nights)

	require.Len(t, coachAI.capturedHistory, 1)
	assert.Equal(t, "user", coachAI.capturedHistory[0].Role)
}

func TestChatWithCoachStoresExtractedMemory(t *testing.T) {
	mood := &fakeMoodStore{err: sql.ErrNoRows}
	profile := &fakeProfileStore{err: sql.ErrNoRows}
	memory := &fakeMemoryStore{}
	habit := &fakeHabitStore{}
	coachAI := &fakeCoachAI{reply: "Nice!", extracted: "User just adopted a puppy"}

	svc := newChatTestService(mood, profile, memory, habit, coachAI)

	_, err := svc.ChatWithCoach(context.Background(), chat.ChatWithCoachRequest{
		UserID:   "user-1",
		Messages: []chat.Message{{Role: "user", Content: "We adopted a puppy yesterday!"}},
	})
	require.NoError(t, err)

	require.Len(t, memory.created, 1)
	assert.Equal(t, "User just adopted a puppy", memory.created[0].Content)
	assert.Equal(t, "user-1", memory.created[0].UserID)
}

func TestChatWithCoachFallbackReply(t *testing.T) {
	mood := &fakeMoodStore{err: sql.ErrNoRows}
	profile := &fakeProfileStore{err: sql.ErrNoRows}
	memory := &fakeMemoryStore{}
	habit := &fakeHabitStore{}
	coachAI := &fakeCoachAI{replyErr: assert.AnError}

	svc := newChatTestService(mood, profile, memory, habit, coachAI)

	resp, err := svc.ChatWithCoach(context.Background(), chat.ChatWithCoachRequest{
		UserID:   "user-1",
		Messages: []chat.Message{{Role: "user", Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, fallbackCoachReply, resp.Reply)
}

func TestChatWithCoachNoUserMessage(t *testing.T) {
	svc := newChatTestService(&fakeMoodStore{}, &fakeProfileStore{}, &fakeMemoryStore{}, &fakeHabitStore{}, &fakeCoachAI{})

	_, err := svc.ChatWithCoach(context.Background(), chat.ChatWithCoachRequest{
		UserID:   "user-1",
		Messages: []chat.Message{{Role: "assistant", Content: "How are you?"}},
	})
	assert.ErrorIs(t, err, chat.ErrNoUserMessage)
}

func TestBuildHabitSummaryVariants(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no habits at all", func(t *testing.T) {
		assert.Equal(t, "(User has not set up any habits yet)", buildHabitSummary(nil, now))
	})

	t.Run("only inactive habits", func(t *testing.T) {
		habits := []entity.Habit{{Name: "Old habit", IsActive: false}}
		assert.Equal(t, "(User has no active habits)", buildHabitSummary(habits, now))
	})

	t.Run("mixed habits", func(t *testing.T) {
		completedAt := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
		habits := []entity.Habit{
			{Name: "Stretch", IsActive: true, CurrentStreak: 7, LastCompletedDate: &completedAt},
			{Name: "Read", IsActive: true},
			{Name: "Paused", IsActive: false},
		}

		summary := buildHabitSummary(habits, now)
		assert.Contains(t, summary, "- Stretch [Completed Today] (Current Streak: 7 days)")
		assert.Contains(t, summary, "- Read [Not Done Today]")
		assert.NotContains(t, summary, "Paused")
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))

	long := strings.Repeat("à", 600)
	truncated := truncateRunes(long, maxJournalContextRunes)
	assert.Equal(t, maxJournalContextRunes+3, len([]rune(truncated)))
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestLastUserMessageContent(t *testing.T) {
	messages := []chat.Message{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "reply"},
		{Role: "user", Content: "second"},
	}
	assert.Equal(t, "second", lastUserMessageContent(messages))
	assert.Equal(t, "", lastUserMessageContent(nil))
}
