// Package sentiment scores the polarity of short chat messages from a fixed
// lexicon. It replaces a hosted classifier for the three-way cut the coach
// prompt needs; anything subtler than positive/negative/neutral is wasted on
// an emoji hint.
package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// threshold is the polarity cut separating the three categories.
const threshold = 0.1

// Analyze returns a polarity in [-1, 1]: the clamped mean polarity of the
// lexicon words found in text, with single-token negation and intensifier
// handling. Text with no lexicon hits scores 0.
func Analyze(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var hits int

	// Negation and intensifiers carry over up to two tokens, so "don't feel
	// good" still flips "good".
	negate := 0
	scale := 1.0
	scaleWindow := 0

	for _, token := range tokens {
		if negations[token] {
			negate = 2
			continue
		}

		if factor, ok := intensifiers[token]; ok {
			scale = factor
			scaleWindow = 2
			continue
		}

		polarity, ok := lexicon[token]
		if !ok {
			if negate > 0 {
				negate--
			}
			if scaleWindow > 0 {
				scaleWindow--
				if scaleWindow == 0 {
					scale = 1.0
				}
			}
			continue
		}

		if negate > 0 {
			polarity = -polarity
		}
		if scaleWindow > 0 {
			polarity *= scale
		}

		sum += polarity
		hits++

		negate = 0
		scale = 1.0
		scaleWindow = 0
	}

	if hits == 0 {
		return 0
	}

	mean := sum / float64(hits)
	if mean > 1 {
		return 1
	}
	if mean < -1 {
		return -1
	}
	return mean
}

// Classify maps a message to its category using the ±0.1 polarity cut.
func Classify(text string) Category {
	polarity := Analyze(text)

	switch {
	case polarity > threshold:
		return CategoryPositive
	case polarity < -threshold:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

func tokenize(text string) []string {
	cleaned := cleanText(text)
	return strings.Fields(cleaned)
}

// cleanText lowercases, strips diacritics and drops everything that is not a
// letter, digit or space. Apostrophes vanish, so "don't" matches "dont".
func cleanText(text string) string {
	lowered := strings.ToLower(text)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, lowered)
	if err != nil {
		normalized = lowered
	}

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
