package usecase

import (
	"context"
	"strings"

	"chatbot-nlp-service/internal/chat"
)

// Route resolves one utterance into a reply. Exactly one of the math path or
// the intent path executes per call; a math answer is never mixed with an
// intent-template answer.
func (uc *implUseCase) Route(ctx context.Context, input chat.RouteInput) (chat.RouteOutput, error) {
	if _, err := uc.history.Append(ctx, input.Message); err != nil {
		// The transcript is a write-only audit trail; losing one entry must
		// not fail the request.
		uc.l.Errorf(ctx, "history append failed: %v", err)
	}

	if isMathExpression(input.Message) {
		uc.l.Debugf(ctx, "routing to math path: %q", input.Message)
		return chat.RouteOutput{Reply: uc.evaluateMathGuarded(ctx, input.Message)}, nil
	}

	decision := chat.IntentDecision{
		Classifications: uc.classify(ctx, input.Message),
		Sentiment:       detectSentiment(input.Message),
		Entities:        extractEntities(input.Message),
	}
	uc.l.Debugf(ctx, "routing to intent path: tags=%v sentiment=%s entities=%d",
		decision.Classifications, decision.Sentiment, len(decision.Entities))

	replies := make([]string, 0, len(decision.Classifications))
	for _, c := range decision.Classifications {
		replies = append(replies, uc.respond(c.Tag, decision.Entities, decision.Sentiment))
	}

	return chat.RouteOutput{Reply: strings.Join(replies, " ")}, nil
}

// History returns the most recent transcript entries.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	if input.Limit < 0 {
		return chat.HistoryOutput{}, chat.ErrInvalidLimit
	}

	entries, err := uc.history.List(ctx, input.Limit)
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	total, err := uc.history.Len(ctx)
	if err != nil {
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{Entries: entries, Total: total}, nil
}
