package sentiment

// Word polarities in [-1, 1], loosely following the TextBlob pattern lexicon
// for the vocabulary a wellness chat actually sees.
var lexicon = map[string]float64{
	// positive
	"amazing":    0.9,
	"awesome":    1.0,
	"better":     0.5,
	"calm":       0.4,
	"excellent":  1.0,
	"excited":    0.6,
	"fantastic":  0.9,
	"glad":       0.5,
	"good":       0.7,
	"grateful":   0.7,
	"great":      0.8,
	"happy":      0.8,
	"helpful":    0.6,
	"love":       0.8,
	"loved":      0.8,
	"nice":       0.6,
	"peaceful":   0.5,
	"perfect":    1.0,
	"refreshed":  0.6,
	"relaxed":    0.5,
	"relaxing":   0.5,
	"relieved":   0.5,
	"thanks":     0.4,
	"thankful":   0.6,
	"wonderful":  0.9,

	// negative
	"angry":       -0.7,
	"anxious":     -0.6,
	"awful":       -1.0,
	"bad":         -0.7,
	"burned":      -0.4,
	"confused":    -0.3,
	"depressed":   -0.8,
	"difficult":   -0.4,
	"exhausted":   -0.6,
	"frustrated":  -0.6,
	"hate":        -0.8,
	"horrible":    -1.0,
	"hopeless":    -0.9,
	"hurt":        -0.6,
	"lonely":      -0.6,
	"miserable":   -0.9,
	"overwhelmed": -0.7,
	"sad":         -0.6,
	"scared":      -0.6,
	"stressed":    -0.6,
	"terrible":    -1.0,
	"tired":       -0.4,
	"upset":       -0.6,
	"worried":     -0.5,
	"worse":       -0.6,
	"worst":       -1.0,
}

// negations flip the polarity of the following lexicon word.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"cant":    true,
	"cannot":  true,
	"dont":    true,
	"didnt":   true,
	"wasnt":   true,
	"isnt":    true,
	"wont":    true,
	"couldnt": true,
}

// intensifiers scale the polarity of the following lexicon word.
var intensifiers = map[string]float64{
	"very":      1.3,
	"really":    1.3,
	"so":        1.2,
	"extremely": 1.5,
	"totally":   1.3,
	"slightly":  0.6,
	"bit":       0.7,
	"little":    0.7,
}
