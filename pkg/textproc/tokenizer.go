package textproc

import (
	"regexp"
	"strings"
)

// wordRE matches word-character runs, the tokenization unit used both at
// training and serving time. Punctuation and whitespace are discarded.
var wordRE = regexp.MustCompile(`\w+`)

// Tokenize splits text into lower-cased word tokens.
func Tokenize(text string) []string {
	return wordRE.FindAllString(strings.ToLower(text), -1)
}

// Normalize tokenizes, stems and re-joins text into the canonical form the
// vectorizer was trained on.
func Normalize(text string) string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		tokens[i] = Stem(tok)
	}
	return strings.Join(tokens, " ")
}
