package chat

type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatWithCoachRequest struct {
	UserID      string    `json:"-"`
	Messages    []Message `json:"messages" validate:"required,min=1,dive"`
	Personality string    `json:"personality" validate:"omitempty,oneof=cheerful serious motivating"`
}

type ChatWithCoachResponse struct {
	Reply     string `json:"reply"`
	Sentiment string `json:"sentiment"`
}

type RecordMoodRequest struct {
	UserID    string `json:"-"`
	MoodEmoji string `json:"mood_emoji" validate:"required,max=16"`
}

type UpdateJournalRequest struct {
	UserID       string `json:"-"`
	JournalEntry string `json:"journal_entry" validate:"required,max=5000"`
}
