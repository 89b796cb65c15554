package feedbackService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"BreathePulse/internal/api/feedback"
	"BreathePulse/internal/entity"
	contextPkg "BreathePulse/pkg/context"
	"BreathePulse/pkg/openai"
)

const defaultFeedbackReply = "Thanks for the feedback!"

const feedbackSystemPrompt = `You are BreathePulse's feedback assistant. Your role is to briefly acknowledge the user's feedback about their recent break experience. Be encouraging and let them know their input is valuable. Keep responses concise (1-2 sentences).
Example interactions:
User: That stretch felt great!
Assistant: Glad to hear the stretch helped!
User: The breathing exercise was a bit confusing.
Assistant: Thanks for letting me know. We'll try to make the instructions clearer.
User: I didn't find the puzzle relaxing.
Assistant: Understood. Thanks for sharing your thoughts on the puzzle break.`

const distressResourcesMessage = `I'm sorry the suggested break didn't seem to help, and I sense you might still be feeling distressed. It's really important to reach out when you feel this way. Please consider connecting with a mental health professional or someone you trust. Your feelings are valid, and support is available.

Here are some resources that might be helpful:
*   ASU Counseling Services: 480-965-6146
*   ASU Health Services: 480-965-3349
*   ASU Help Center: 1-855-278-5080
*   National Suicide Prevention Lifeline: 1-800-273-8255 (or call/text 988)
*   CRISIS TEXT LINE: Text HOME To 741741
*   EMPACT (after hours/weekends): 480-921-1006
*   For emergencies, call 911. For non-emergencies on campus, call ASU Police: 480-965-3456.
*   Find more resources at eoss.asu.edu/resources or contact the Dean of Students Office: 480-965-6547.`

func (s *feedbackService) SubmitFeedback(ctx context.Context, req feedback.SubmitFeedbackRequest) (feedback.SubmitFeedbackResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.feedbackRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return feedback.SubmitFeedbackResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return feedback.SubmitFeedbackResponse{}, err
	}

	feedbackType := req.FeedbackType
	if feedbackType == "" {
		feedbackType = "general"
	}

	receivedAt := time.Now().UTC()

	record := entity.BreakFeedback{
		ID:            ULID,
		UserID:        req.UserID,
		InteractionID: req.InteractionID,
		AIMessage:     req.AIMessage,
		Rating:        req.Rating,
		Comment:       req.Comment,
		FeedbackType:  feedbackType,
		CreatedAt:     receivedAt,
	}

	if err := repo.Feedback.CreateFeedback(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store feedback")
		return feedback.SubmitFeedbackResponse{}, feedback.ErrCreateFeedback
	}

	return feedback.SubmitFeedbackResponse{
		Message:            "Feedback received successfully.",
		FeedbackReceivedAt: receivedAt,
	}, nil
}

// FeedbackChat acknowledges break feedback and, when the user's last
// message is classified as distressed, appends the support-resources block
// and alerts the support inbox. Classification and mail failures never
// fail the request.
func (s *feedbackService) FeedbackChat(ctx context.Context, req feedback.FeedbackChatRequest) (feedback.FeedbackChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	lastUserMessage := lastUserMessageContent(req.Messages)
	if lastUserMessage == "" {
		return feedback.FeedbackChatResponse{}, feedback.ErrNoUserMessage
	}

	history := make([]openai.ConversationMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		history = append(history, openai.ConversationMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	reply, err := s.coachAI.FeedbackReply(ctx, feedbackSystemPrompt, history)
	if err != nil || reply == "" {
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get feedback reply, using fallback")
		}
		reply = defaultFeedbackReply
	}

	distressed, err := s.coachAI.ClassifyDistress(ctx, lastUserMessage)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Distress classification failed")
		distressed = false
	}

	if distressed {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    req.UserID,
		}).Warn("Distress detected in feedback chat")

		reply = reply + "\n\n" + distressResourcesMessage

		if s.mailer.Configured() {
			if err := s.mailer.SendDistressAlert(req.UserID, lastUserMessage); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to send distress alert mail")
			}
		}
	}

	return feedback.FeedbackChatResponse{Reply: reply}, nil
}

func lastUserMessageContent(messages []feedback.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
