// Package tfidf implements a TF-IDF text vectorizer with a fixed vocabulary
// learned offline. Artifacts persist as JSON and are read-only at serving time.
package tfidf

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
)

// termRE matches feature terms: word-character runs of at least two
// characters. Single-letter tokens carry no signal and are dropped.
var termRE = regexp.MustCompile(`\w\w+`)

// Vectorizer maps normalized text to an L2-normalized TF-IDF feature vector
// over a fixed vocabulary.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"` // term -> feature index
	IDF        []float64      `json:"idf"`        // smoothed inverse document frequency per index
}

// Fit learns the vocabulary and IDF weights from the given document corpus.
// Vocabulary indices are assigned in sorted term order so fitting is
// deterministic.
func Fit(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range terms(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(vocab)),
		IDF:        make([]float64, len(vocab)),
	}
	n := float64(len(docs))
	for i, term := range vocab {
		v.Vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Transform converts a document into an L2-normalized TF-IDF vector.
// Out-of-vocabulary terms are ignored; an all-unknown document yields the
// zero vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, term := range terms(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx] += v.IDF[idx]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// NumFeatures returns the vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.IDF)
}

// Save writes the vectorizer as JSON.
func (v *Vectorizer) Save(path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vectorizer: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a vectorizer previously written by Save.
func Load(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer artifact: %w", err)
	}
	var v Vectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vectorizer artifact: %w", err)
	}
	if len(v.Vocabulary) != len(v.IDF) {
		return nil, fmt.Errorf("corrupt vectorizer artifact: %d terms but %d idf weights", len(v.Vocabulary), len(v.IDF))
	}
	return &v, nil
}

func terms(doc string) []string {
	return termRE.FindAllString(strings.ToLower(doc), -1)
}
