package entity

import "time"

type Profile struct {
	UserID       string    `json:"user_id"`
	JournalEntry string    `json:"journal_entry"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CompanionMemory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
