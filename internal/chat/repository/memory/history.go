// Package memory implements the conversation log as a mutex-guarded
// in-process append-only slice.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"chatbot-nlp-service/internal/chat"
)

// HistoryStore is the process-wide conversation log. The zero value is not
// usable; construct with New.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []chat.Entry
}

// New creates an empty history store.
func New() *HistoryStore {
	return &HistoryStore{}
}

// Append records one utterance at the end of the log.
func (s *HistoryStore) Append(ctx context.Context, text string) (chat.Entry, error) {
	entry := chat.Entry{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry, nil
}

// List returns the last limit entries in append order. limit <= 0 returns
// the full log.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]chat.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit > 0 && len(s.entries) > limit {
		start = len(s.entries) - limit
	}

	out := make([]chat.Entry, len(s.entries)-start)
	copy(out, s.entries[start:])
	return out, nil
}

// Len returns the number of logged entries.
func (s *HistoryStore) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
