package entity

import "time"

type BreakFeedback struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	InteractionID string    `json:"interaction_id"`
	AIMessage     string    `json:"ai_message"`
	Rating        *int      `json:"rating,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	FeedbackType  string    `json:"feedback_type"`
	CreatedAt     time.Time `json:"created_at"`
}
