package feedback

import "time"

type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type SubmitFeedbackRequest struct {
	UserID        string `json:"-"`
	InteractionID string `json:"interaction_id" validate:"required"`
	AIMessage     string `json:"ai_message" validate:"required"`
	Rating        *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment       string `json:"comment"`
	FeedbackType  string `json:"feedback_type"`
}

type SubmitFeedbackResponse struct {
	Message            string    `json:"message"`
	FeedbackReceivedAt time.Time `json:"feedback_received_at"`
}

type FeedbackChatRequest struct {
	UserID   string    `json:"-"`
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
}

type FeedbackChatResponse struct {
	Reply string `json:"reply"`
}
