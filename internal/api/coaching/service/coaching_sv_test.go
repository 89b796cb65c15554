package coachingService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BreathePulse/internal/entity"
)

func TestStressContextBands(t *testing.T) {
	tests := []struct {
		name        string
		stressLevel float64
		want        string
	}{
		{name: "zero", stressLevel: 0, want: "normal"},
		{name: "just below elevated", stressLevel: 29.9, want: "normal"},
		{name: "elevated boundary", stressLevel: 30, want: "elevated"},
		{name: "just below high", stressLevel: 39.9, want: "elevated"},
		{name: "high boundary", stressLevel: 40, want: "quite high"},
		{name: "maximum", stressLevel: 100, want: "quite high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stressContext(tt.stressLevel))
		})
	}
}

func TestSelectBreakExcludesRecentTitles(t *testing.T) {
	recent := []string{"Box Breathing", "Neck Rolls", "Quick Gratitude"}

	// Walk every remaining index; none of the picks may be a recent title.
	for i := 0; i < len(breakActivities)-len(recent); i++ {
		idx := i
		selected := selectBreak(recent, func(n int) int {
			require.Equal(t, len(breakActivities)-len(recent), n)
			return idx
		})
		assert.NotContains(t, recent, selected.Title)
	}
}

func TestSelectBreakFallsBackToFullLibrary(t *testing.T) {
	allTitles := make([]string, 0, len(breakActivities))
	for _, activity := range breakActivities {
		allTitles = append(allTitles, activity.Title)
	}

	selected := selectBreak(allTitles, func(n int) int {
		require.Equal(t, len(breakActivities), n)
		return 0
	})
	assert.Equal(t, breakActivities[0].Title, selected.Title)
}

func TestSelectBreakNoRecentHistory(t *testing.T) {
	selected := selectBreak(nil, func(n int) int {
		require.Equal(t, len(breakActivities), n)
		return n - 1
	})
	assert.Equal(t, breakActivities[len(breakActivities)-1].Title, selected.Title)
}

func TestNextStreakFirstCompletion(t *testing.T) {
	habit := entity.Habit{CurrentStreak: 0}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, nextStreak(habit, now))
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	yesterday := time.Date(2025, 3, 9, 22, 30, 0, 0, time.UTC)
	habit := entity.Habit{CurrentStreak: 4, LastCompletedDate: &yesterday}
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, nextStreak(habit, now))
}

func TestNextStreakGapResets(t *testing.T) {
	threeDaysAgo := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	habit := entity.Habit{CurrentStreak: 9, LastCompletedDate: &threeDaysAgo}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, nextStreak(habit, now))
}

func TestHabitStatusLines(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	completedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	habits := []entity.Habit{
		{Name: "Morning walk", IsActive: true, LastCompletedDate: &completedAt},
		{Name: "Meditation", IsActive: true},
	}

	summary := habitStatusLines(habits, now)
	assert.Contains(t, summary, "Today's Habit Status:")
	assert.Contains(t, summary, "- Morning walk: Completed")
	assert.Contains(t, summary, "- Meditation: Not Completed")
}

func TestHabitStatusLinesEmpty(t *testing.T) {
	assert.Equal(t, "No habits tracked yet.", habitStatusLines(nil, time.Now()))
}

func TestBuildWeeklySummaryPrompt(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	moods := []entity.MoodEntry{
		{MoodEmoji: "😊", CreatedAt: now.AddDate(0, 0, -2)},
		{MoodEmoji: "😐", CreatedAt: now.AddDate(0, 0, -1)},
	}
	habits := []entity.Habit{
		{Name: "Hydration", CurrentStreak: 3},
	}

	prompt := buildWeeklySummaryPrompt(moods, habits, now)
	assert.Contains(t, prompt, "Maximum 3 sentences")
	assert.Contains(t, prompt, "😊")
	assert.Contains(t, prompt, "Hydration: current streak 3 days, not completed today")
}

func TestBuildWeeklySummaryPromptEmptyData(t *testing.T) {
	prompt := buildWeeklySummaryPrompt(nil, nil, time.Now())
	assert.Contains(t, prompt, "(none recorded)")
	assert.Contains(t, prompt, "(no habits tracked)")
}

func TestBreakLibraryShape(t *testing.T) {
	require.Len(t, breakActivities, 12)

	perCategory := map[entity.BreakCategory]int{}
	for _, activity := range breakActivities {
		require.NotEmpty(t, activity.Title)
		require.NotEmpty(t, activity.Description)
		perCategory[activity.Category]++
	}

	assert.Equal(t, 3, perCategory[entity.BreakCategoryBreathing])
	assert.Equal(t, 4, perCategory[entity.BreakCategoryStretching])
	assert.Equal(t, 3, perCategory[entity.BreakCategoryEyes])
	assert.Equal(t, 2, perCategory[entity.BreakCategoryMind])
}
