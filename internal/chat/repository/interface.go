package repository

import (
	"context"

	"chatbot-nlp-service/internal/chat"
)

// HistoryRepository is the append-only conversation log. The pipeline only
// writes; the history endpoint reads.
//
// Append must be safe under concurrent requests: no entry may be lost or
// interleaved, and appends from the same caller keep their relative order.
type HistoryRepository interface {
	Append(ctx context.Context, text string) (chat.Entry, error)
	List(ctx context.Context, limit int) ([]chat.Entry, error)
	Len(ctx context.Context) (int, error)
}
