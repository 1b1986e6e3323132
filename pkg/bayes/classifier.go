// Package bayes implements a multinomial naive Bayes classifier trained
// offline on TF-IDF vectors. Like the vectorizer it persists as JSON and is
// read-only at serving time.
package bayes

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
)

// DefaultAlpha is the Lidstone smoothing constant.
const DefaultAlpha = 1.0

// Classifier holds the fitted parameters of a multinomial naive Bayes model.
// Classes are kept in sorted order; that ordering is the native tag ordering
// used for tie-breaking at serving time.
type Classifier struct {
	ClassList      []string    `json:"classes"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Train fits the model on feature matrix X with labels y.
func Train(X [][]float64, y []string, alpha float64) (*Classifier, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, fmt.Errorf("invalid training set: %d samples, %d labels", len(X), len(y))
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}

	nFeatures := len(X[0])
	classSet := make(map[string]bool)
	for _, label := range y {
		classSet[label] = true
	}
	classes := make([]string, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	counts := make([]float64, len(classes))
	featureSums := make([][]float64, len(classes))
	for i := range featureSums {
		featureSums[i] = make([]float64, nFeatures)
	}

	for i, row := range X {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("sample %d has %d features, expected %d", i, len(row), nFeatures)
		}
		ci := classIdx[y[i]]
		counts[ci]++
		for j, x := range row {
			featureSums[ci][j] += x
		}
	}

	clf := &Classifier{
		ClassList:      classes,
		ClassLogPrior:  make([]float64, len(classes)),
		FeatureLogProb: make([][]float64, len(classes)),
	}

	n := float64(len(X))
	for ci := range classes {
		clf.ClassLogPrior[ci] = math.Log(counts[ci] / n)

		var total float64
		for _, s := range featureSums[ci] {
			total += s
		}
		denom := math.Log(total + alpha*float64(nFeatures))

		clf.FeatureLogProb[ci] = make([]float64, nFeatures)
		for j, s := range featureSums[ci] {
			clf.FeatureLogProb[ci][j] = math.Log(s+alpha) - denom
		}
	}

	return clf, nil
}

// Classes returns the class labels in the model's native (sorted) order.
func (c *Classifier) Classes() []string {
	return c.ClassList
}

// PredictProba returns the posterior probability for each class, in the same
// order as Classes. Probabilities sum to 1.
func (c *Classifier) PredictProba(x []float64) ([]float64, error) {
	if len(c.ClassList) == 0 {
		return nil, errors.New("classifier is not trained")
	}
	if len(x) != len(c.FeatureLogProb[0]) {
		return nil, fmt.Errorf("feature vector has %d components, expected %d", len(x), len(c.FeatureLogProb[0]))
	}

	joint := make([]float64, len(c.ClassList))
	for ci := range c.ClassList {
		s := c.ClassLogPrior[ci]
		for j, xj := range x {
			if xj != 0 {
				s += xj * c.FeatureLogProb[ci][j]
			}
		}
		joint[ci] = s
	}

	// log-sum-exp normalization
	maxJoint := joint[0]
	for _, j := range joint[1:] {
		if j > maxJoint {
			maxJoint = j
		}
	}
	var sum float64
	probs := make([]float64, len(joint))
	for i, j := range joint {
		probs[i] = math.Exp(j - maxJoint)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// Save writes the classifier as JSON.
func (c *Classifier) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal classifier: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a classifier previously written by Save.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier artifact: %w", err)
	}
	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse classifier artifact: %w", err)
	}
	if len(c.ClassList) == 0 || len(c.ClassList) != len(c.ClassLogPrior) || len(c.ClassList) != len(c.FeatureLogProb) {
		return nil, errors.New("corrupt classifier artifact: inconsistent class parameters")
	}
	return &c, nil
}
