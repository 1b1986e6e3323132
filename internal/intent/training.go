package intent

import (
	"context"

	"chatbot-nlp-service/pkg/log"
	"chatbot-nlp-service/pkg/textproc"
)

// TrainingSet pairs normalized pattern documents with their intent tags.
type TrainingSet struct {
	Docs []string
	Tags []string
}

// BuildTrainingSet converts the catalog into normalized training documents.
// Intents without patterns are skipped with a logged warning; they still
// serve responses, they just cannot be predicted.
func BuildTrainingSet(ctx context.Context, c *Catalog, l log.Logger) TrainingSet {
	var ts TrainingSet
	for _, rec := range c.Records() {
		if len(rec.Patterns) == 0 {
			l.Warnf(ctx, "Skipping intent %q: missing patterns", rec.Tag)
			continue
		}
		for _, pattern := range rec.Patterns {
			ts.Docs = append(ts.Docs, textproc.Normalize(pattern))
			ts.Tags = append(ts.Tags, rec.Tag)
		}
	}
	return ts
}
