package entity

type BreakCategory string

const (
	BreakCategoryBreathing  BreakCategory = "Breathing"
	BreakCategoryStretching BreakCategory = "Stretching"
	BreakCategoryEyes       BreakCategory = "Eyes"
	BreakCategoryMind       BreakCategory = "Mind"
)

type BreakActivity struct {
	Title       string        `json:"title"`
	Category    BreakCategory `json:"category"`
	Description string        `json:"description"`
}
