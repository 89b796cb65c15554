package entity

import "time"

type Habit struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	Name              string     `json:"name"`
	IsActive          bool       `json:"is_active"`
	CurrentStreak     int        `json:"current_streak"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CompletedToday reports whether the habit was last completed on the given
// day (UTC calendar comparison).
func (h Habit) CompletedToday(now time.Time) bool {
	if h.LastCompletedDate == nil {
		return false
	}

	y1, m1, d1 := h.LastCompletedDate.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
