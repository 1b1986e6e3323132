package chat

import (
	"time"

	"chatbot-nlp-service/internal/model"
)

// RouteInput is the input for routing one utterance.
type RouteInput struct {
	Message string
}

// RouteOutput is the final reply for one utterance.
type RouteOutput struct {
	Reply string
}

// Classification is one candidate intent with its posterior probability.
type Classification struct {
	Tag        string
	Confidence float64
}

// Decision records which path handled an utterance. Exactly one of the two
// variants applies per call.
type Decision struct {
	Math   *MathDecision
	Intent *IntentDecision
}

// MathDecision is the math path: the normalized expression that was
// evaluated.
type MathDecision struct {
	NormalizedExpression string
}

// IntentDecision is the conversational path: selected tags plus the context
// extracted from the utterance.
type IntentDecision struct {
	Classifications []Classification
	Sentiment       model.Sentiment
	Entities        []string
}

// Entry is one transcript line of the conversation log.
type Entry struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// HistoryInput is the input for reading back the transcript.
type HistoryInput struct {
	Limit int
}

// HistoryOutput is the transcript read result.
type HistoryOutput struct {
	Entries []Entry
	Total   int
}
