// Package entities extracts named-entity spans from text with a small set of
// regex rules: capitalized name runs, dates, times and currency amounts.
// Extraction is a pure function of its input; no matches yields an empty
// slice, never an error.
package entities

import (
	"regexp"
	"strings"
)

var (
	// Runs of capitalized words, optionally joined by "of"/"the"
	// ("New York", "Bank of America").
	properRE = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+(?:of|the)\s+)?(?:\s*[A-Z][a-z]+)*`)

	dateRE  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	timeRE  = regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s?[apAP][mM])?\b`)
	moneyRE = regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)?`)
)

// sentenceStarters are words that look like proper nouns only because they
// open a sentence.
var sentenceStarters = map[string]bool{
	"The": true, "A": true, "An": true, "I": true, "It": true, "He": true,
	"She": true, "We": true, "They": true, "What": true, "Who": true,
	"Where": true, "When": true, "Why": true, "How": true, "Is": true,
	"Are": true, "Do": true, "Does": true, "Can": true, "Could": true,
	"Will": true, "Would": true, "My": true, "Your": true, "Tell": true,
	"Please": true, "Hello": true, "Hi": true, "Hey": true, "Thanks": true,
	"This": true, "That": true,
}

// Extract returns the entity spans found in text in match order.
// Duplicates are preserved.
func Extract(text string) []string {
	spans := []string{}

	for _, m := range properRE.FindAllString(text, -1) {
		span := strings.TrimSpace(m)
		if skip(span) {
			continue
		}
		spans = append(spans, span)
	}

	for _, re := range []*regexp.Regexp{dateRE, timeRE, moneyRE} {
		spans = append(spans, re.FindAllString(text, -1)...)
	}

	return spans
}

// skip drops single function words that are capitalized only by sentence
// position. Multi-word spans are always kept.
func skip(span string) bool {
	if strings.ContainsAny(span, " \t") {
		return false
	}
	return sentenceStarters[span]
}
