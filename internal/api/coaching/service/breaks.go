package coachingService

import "BreathePulse/internal/entity"

// maxRecentBreaks is how many previous suggestions are excluded before a
// break title can come up again.
const maxRecentBreaks = 3

var breakActivities = []entity.BreakActivity{
	// Breathing
	{Title: "Box Breathing", Category: entity.BreakCategoryBreathing, Description: "Inhale for 4s, hold for 4s, exhale for 4s, hold for 4s. Repeat."},
	{Title: "4-7-8 Breathing", Category: entity.BreakCategoryBreathing, Description: "Inhale for 4s, hold for 7s, exhale slowly for 8s."},
	{Title: "Diaphragmatic Breathing", Category: entity.BreakCategoryBreathing, Description: "Focus on deep belly breaths, letting your stomach expand."},
	// Stretching
	{Title: "Neck Rolls", Category: entity.BreakCategoryStretching, Description: "Gently roll your head side to side, then front to back."},
	{Title: "Shoulder Shrugs", Category: entity.BreakCategoryStretching, Description: "Lift your shoulders towards your ears, hold, then release."},
	{Title: "Wrist & Finger Stretch", Category: entity.BreakCategoryStretching, Description: "Extend arms, flex wrists up/down, spread fingers wide."},
	{Title: "Torso Twist", Category: entity.BreakCategoryStretching, Description: "While seated, gently twist your upper body side to side."},
	// Eye strain relief
	{Title: "20-20-20 Rule", Category: entity.BreakCategoryEyes, Description: "Look at something 20 feet away for 20 seconds."},
	{Title: "Eye Palming", Category: entity.BreakCategoryEyes, Description: "Rub hands together, gently cup over closed eyes, breathe deeply."},
	{Title: "Focus Shift", Category: entity.BreakCategoryEyes, Description: "Alternate focus between a near object and a distant one."},
	// Quick mental break
	{Title: "Mindful Observation", Category: entity.BreakCategoryMind, Description: "Notice 3 things you can see and 2 things you can hear right now."},
	{Title: "Quick Gratitude", Category: entity.BreakCategoryMind, Description: "Think of one small thing you're grateful for."},
}

// selectBreak picks a break activity uniformly at random, excluding titles
// suggested recently. When every activity was suggested recently the full
// library is used again.
func selectBreak(recentTitles []string, pick func(n int) int) entity.BreakActivity {
	excluded := make(map[string]struct{}, len(recentTitles))
	for _, title := range recentTitles {
		excluded[title] = struct{}{}
	}

	available := make([]entity.BreakActivity, 0, len(breakActivities))
	for _, activity := range breakActivities {
		if _, ok := excluded[activity.Title]; !ok {
			available = append(available, activity)
		}
	}

	if len(available) == 0 {
		available = breakActivities
	}

	return available[pick(len(available))]
}
