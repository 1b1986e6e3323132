// Package sentiment scores text polarity on a [-1,1] scale using a small
// English lexicon. It is a pure function of its input and always succeeds.
package sentiment

import (
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`[a-z']+`)

// lexicon maps words to polarity scores. Values are hand-tuned on the same
// scale TextBlob-style analyzers use.
var lexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "awesome": 1.0, "amazing": 0.9,
	"excellent": 1.0, "fantastic": 0.9, "wonderful": 1.0, "love": 0.6,
	"loved": 0.7, "like": 0.3, "happy": 0.8, "glad": 0.7, "nice": 0.6,
	"best": 1.0, "better": 0.5, "thanks": 0.4, "thank": 0.4, "cool": 0.35,
	"fun": 0.5, "perfect": 1.0, "beautiful": 0.85, "enjoy": 0.5,
	"helpful": 0.6, "brilliant": 0.9, "super": 0.6, "fine": 0.4,

	// negative
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0,
	"hate": -0.8, "hated": -0.9, "sad": -0.5, "angry": -0.6, "upset": -0.5,
	"worst": -1.0, "worse": -0.5, "annoying": -0.6, "annoyed": -0.6,
	"broken": -0.4, "wrong": -0.5, "useless": -0.8, "stupid": -0.7,
	"boring": -0.6, "disappointed": -0.7, "frustrating": -0.7,
	"frustrated": -0.7, "poor": -0.4, "ugly": -0.7, "sick": -0.5,
	"tired": -0.4, "lonely": -0.5, "miserable": -0.9, "depressed": -0.8,
}

// negators flip the polarity of the following lexicon word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "n't": true,
	"dont": true, "don't": true, "cant": true, "can't": true,
	"isnt": true, "isn't": true, "wasnt": true, "wasn't": true,
}

// Polarity returns the average polarity of the scored words in text,
// in [-1,1]. Text with no scored words is 0.
func Polarity(text string) float64 {
	words := wordRE.FindAllString(strings.ToLower(text), -1)

	var sum float64
	matched := 0
	negate := false
	for _, w := range words {
		if negators[w] {
			negate = true
			continue
		}
		score, ok := lexicon[w]
		if !ok {
			negate = false
			continue
		}
		if negate {
			score = -0.5 * score
			negate = false
		}
		sum += score
		matched++
	}

	if matched == 0 {
		return 0
	}
	p := sum / float64(matched)
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	return p
}
