package feedbackService

import (
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/feedback"
	feedbackRepository "BreathePulse/internal/api/feedback/repository"
	"BreathePulse/internal/entity"
	"BreathePulse/pkg/openai"
	"BreathePulse/pkg/utils"
)

type fakeFeedbackStore struct {
	created []entity.BreakFeedback
	err     error
}

func (f *fakeFeedbackStore) CreateFeedback(c context.Context, record entity.BreakFeedback) error {
	f.created = append(f.created, record)
	return f.err
}

type fakeFeedbackRepository struct {
	store *fakeFeedbackStore
}

func (f *fakeFeedbackRepository) NewClient(tx bool) (feedbackRepository.Client, error) {
	return feedbackRepository.Client{
		Feedback: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeFeedbackAI struct {
	reply       string
	replyErr    error
	distressed  bool
	distressErr error
}

func (f *fakeFeedbackAI) CoachReply(ctx context.Context, systemPrompt string, history []openai.ConversationMessage) (string, error) {
	return "", nil
}

func (f *fakeFeedbackAI) GenerateCoachingMessage(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	return "", nil
}

func (f *fakeFeedbackAI) FeedbackReply(ctx context.Context, systemPrompt string, history []openai.ConversationMessage) (string, error) {
	return f.reply, f.replyErr
}

func (f *fakeFeedbackAI) ExtractMemory(ctx context.Context, userMessage string) (string, error) {
	return "", nil
}

func (f *fakeFeedbackAI) ClassifyDistress(ctx context.Context, text string) (bool, error) {
	return f.distressed, f.distressErr
}

type fakeMailer struct {
	configured bool
	alerts     []string
	err        error
}

func (f *fakeMailer) SendDistressAlert(userID string, excerpt string) error {
	f.alerts = append(f.alerts, excerpt)
	return f.err
}

func (f *fakeMailer) Configured() bool { return f.configured }

type fakeUtils struct{}

func (f *fakeUtils) NewULIDFromTimestamp(t time.Time) (string, error) { return "01TESTULID", nil }

func (f *fakeUtils) ValidateImageFile(file *multipart.FileHeader) error { return nil }

func (f *fakeUtils) ConvertFileToBase64(file multipart.File) (string, error) { return "", nil }

func (f *fakeUtils) DecodeBase64Image(data string) ([]byte, error) { return nil, nil }

func newFeedbackTestService(store *fakeFeedbackStore, ai *fakeFeedbackAI, mailer *fakeMailer) IFeedbackService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var u utils.IUtils = &fakeUtils{}
	return NewFeedbackService(logger, &fakeFeedbackRepository{store: store}, ai, mailer, u)
}

func TestSubmitFeedbackPersistsRecord(t *testing.T) {
	store := &fakeFeedbackStore{}
	svc := newFeedbackTestService(store, &fakeFeedbackAI{}, &fakeMailer{})

	rating := 4
	resp, err := svc.SubmitFeedback(context.Background(), feedback.SubmitFeedbackRequest{
		UserID:        "user-1",
		InteractionID: "interaction-9",
		AIMessage:     "Try a box breathing break.",
		Rating:        &rating,
		Comment:       "Really helped",
	})
	require.NoError(t, err)

	assert.Equal(t, "Feedback received successfully.", resp.Message)
	assert.False(t, resp.FeedbackReceivedAt.IsZero())

	require.Len(t, store.created, 1)
	record := store.created[0]
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "interaction-9", record.InteractionID)
	assert.Equal(t, "general", record.FeedbackType)
	require.NotNil(t, record.Rating)
	assert.Equal(t, 4, *record.Rating)
}

func TestSubmitFeedbackStoreFailure(t *testing.T) {
	store := &fakeFeedbackStore{err: assert.AnError}
	svc := newFeedbackTestService(store, &fakeFeedbackAI{}, &fakeMailer{})

	_, err := svc.SubmitFeedback(context.Background(), feedback.SubmitFeedbackRequest{
		UserID:        "user-1",
		InteractionID: "interaction-9",
		AIMessage:     "message",
	})
	assert.ErrorIs(t, err, feedback.ErrCreateFeedback)
}

func TestFeedbackChatPlainReply(t *testing.T) {
	ai := &fakeFeedbackAI{reply: "Glad to hear the stretch helped!"}
	mailer := &fakeMailer{configured: true}
	svc := newFeedbackTestService(&fakeFeedbackStore{}, ai, mailer)

	resp, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "user", Content: "That stretch felt great!"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Glad to hear the stretch helped!", resp.Reply)
	assert.Empty(t, mailer.alerts)
}

func TestFeedbackChatDistressAppendsResources(t *testing.T) {
	ai := &fakeFeedbackAI{reply: "I'm sorry to hear that.", distressed: true}
	mailer := &fakeMailer{configured: true}
	svc := newFeedbackTestService(&fakeFeedbackStore{}, ai, mailer)

	resp, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "user", Content: "I still feel overwhelmed and need help"}},
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "I'm sorry to hear that.")
	assert.Contains(t, resp.Reply, "ASU Counseling Services")
	require.Len(t, mailer.alerts, 1)
	assert.Equal(t, "I still feel overwhelmed and need help", mailer.alerts[0])
}

func TestFeedbackChatDistressWithoutMailer(t *testing.T) {
	ai := &fakeFeedbackAI{reply: "Thanks.", distressed: true}
	mailer := &fakeMailer{configured: false}
	svc := newFeedbackTestService(&fakeFeedbackStore{}, ai, mailer)

	resp, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "user", Content: "still feeling awful"}},
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "CRISIS TEXT LINE")
	assert.Empty(t, mailer.alerts)
}

func TestFeedbackChatReplyFailureUsesFallback(t *testing.T) {
	ai := &fakeFeedbackAI{replyErr: assert.AnError}
	svc := newFeedbackTestService(&fakeFeedbackStore{}, ai, &fakeMailer{})

	resp, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "user", Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, defaultFeedbackReply, resp.Reply)
}

func TestFeedbackChatClassifierFailureSkipsResources(t *testing.T) {
	ai := &fakeFeedbackAI{reply: "Thanks!", distressErr: assert.AnError}
	svc := newFeedbackTestService(&fakeFeedbackStore{}, ai, &fakeMailer{configured: true})

	resp, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "user", Content: "not sure how I feel"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Thanks!", resp.Reply)
}

func TestFeedbackChatNoUserMessage(t *testing.T) {
	svc := newFeedbackTestService(&fakeFeedbackStore{}, &fakeFeedbackAI{}, &fakeMailer{})

	_, err := svc.FeedbackChat(context.Background(), feedback.FeedbackChatRequest{
		UserID:   "user-1",
		Messages: []feedback.Message{{Role: "assistant", Content: "How was the break?"}},
	})
	assert.ErrorIs(t, err, feedback.ErrNoUserMessage)
}
