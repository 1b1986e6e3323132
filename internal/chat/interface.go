package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Route resolves one utterance into a reply: math queries are evaluated
	// symbolically, everything else goes through intent classification.
	// Per-request pipeline failures degrade to a textual reply, never an error.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)

	// History returns the most recent transcript entries.
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
}
