package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Category
	}{
		{"plain positive", "That stretch felt great, thanks!", CategoryPositive},
		{"plain negative", "I am so stressed and overwhelmed today", CategoryNegative},
		{"no lexicon hits", "I opened the dashboard twice", CategoryNeutral},
		{"empty", "", CategoryNeutral},
		{"negated positive", "that was not helpful at all", CategoryNegative},
		{"negated negative", "I'm not sad anymore", CategoryPositive},
		{"mixed leaning positive", "tired but happy and grateful", CategoryPositive},
		{"intensified negative", "I feel really terrible", CategoryNegative},
		{"contraction negation", "I don't feel good about this", CategoryNegative},
		{"diacritics", "feeling grâteful", CategoryPositive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.text))
		})
	}
}

func TestAnalyzeBounds(t *testing.T) {
	texts := []string{
		"extremely totally awesome perfect wonderful",
		"extremely horrible awful worst miserable",
		"",
		"neutral words only here",
	}

	for _, text := range texts {
		polarity := Analyze(text)
		assert.GreaterOrEqual(t, polarity, -1.0)
		assert.LessOrEqual(t, polarity, 1.0)
	}
}

func TestAnalyzeDampenedIntensifier(t *testing.T) {
	full := Analyze("I feel sad")
	dampened := Analyze("I feel slightly sad")

	assert.Less(t, full, 0.0)
	assert.Greater(t, dampened, full)
}
