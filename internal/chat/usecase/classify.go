package usecase

import (
	"context"
	"sort"

	"chatbot-nlp-service/internal/chat"
	"chatbot-nlp-service/pkg/textproc"
)

// classify resolves an utterance into candidate intents: top-K tags with
// probability at or above the threshold, or the synthetic fallback when none
// qualifies. The returned slice is never empty.
func (uc *implUseCase) classify(ctx context.Context, text string) []chat.Classification {
	normalized := textproc.Normalize(text)

	if uc.classifyCache != nil {
		if cached, ok := uc.classifyCache.Get(normalized); ok {
			return cached
		}
	}

	results := uc.classifyNormalized(ctx, normalized)

	if uc.classifyCache != nil {
		uc.classifyCache.Add(normalized, results)
	}
	return results
}

func (uc *implUseCase) classifyNormalized(ctx context.Context, normalized string) []chat.Classification {
	vec := uc.vectorizer.Transform(normalized)

	probs, err := uc.classifier.PredictProba(vec)
	if err != nil {
		// The model is a fixed artifact; a predict failure here means the
		// process loaded a broken artifact. Degrade to fallback rather than
		// surface an error mid-request.
		uc.l.Errorf(ctx, "classifier predict failed: %v", err)
		return fallbackResult()
	}

	tags := uc.classifier.Classes()
	candidates := make([]chat.Classification, len(tags))
	for i, tag := range tags {
		candidates[i] = chat.Classification{Tag: tag, Confidence: probs[i]}
	}

	// Stable sort keeps the classifier's native ordering on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	results := make([]chat.Classification, 0, uc.topK)
	for _, c := range candidates {
		if c.Confidence < uc.threshold {
			break
		}
		results = append(results, c)
		if len(results) == uc.topK {
			break
		}
	}

	if len(results) == 0 {
		return fallbackResult()
	}
	return results
}

func fallbackResult() []chat.Classification {
	return []chat.Classification{{Tag: TagFallback, Confidence: 1.0}}
}
