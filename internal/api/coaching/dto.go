package coaching

type GenerateMessageRequest struct {
	UserID      string  `json:"-"`
	StressLevel float64 `json:"stress_level" validate:"gte=0,lte=100"`
	Personality string  `json:"personality" validate:"omitempty,oneof=cheerful serious motivating"`
}

type GenerateMessageResponse struct {
	Message string `json:"message"`
}

type CreateHabitRequest struct {
	UserID string `json:"-"`
	Name   string `json:"name" validate:"required,max=100"`
}

type HabitResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Streak            int    `json:"streak"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	CompletedToday    bool   `json:"completed_today"`
}

type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

type WeeklySummaryResponse struct {
	Summary string `json:"summary"`
}
