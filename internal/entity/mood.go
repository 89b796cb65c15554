package entity

import "time"

type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MoodEmoji string    `json:"mood_emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordedToday reports whether the mood entry was logged on the given day
// (UTC calendar comparison).
func (m MoodEntry) RecordedToday(now time.Time) bool {
	y1, m1, d1 := m.CreatedAt.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
