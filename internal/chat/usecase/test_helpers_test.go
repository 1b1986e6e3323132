package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"chatbot-nlp-service/internal/chat/repository/memory"
	"chatbot-nlp-service/internal/intent"
	"chatbot-nlp-service/pkg/bayes"
	"chatbot-nlp-service/pkg/tfidf"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// testClock is a fixed point in time: Tuesday, 05 March 2024, 10:30 AM UTC.
var testClock = func() time.Time {
	return time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
}

func testRecords() []intent.Record {
	return []intent.Record{
		{
			Tag:       "greeting",
			Patterns:  []string{"hello", "hi there", "good morning"},
			Responses: []string{"Hello! How can I help you?"},
		},
		{
			Tag:       "thanks",
			Patterns:  []string{"thank you so much", "thanks a lot"},
			Responses: []string{"You're welcome!"},
		},
		{
			Tag:       "time",
			Patterns:  []string{"what time is it", "tell me the time", "what is the time"},
			Responses: []string{"unused"},
		},
		{
			Tag:       "date",
			Patterns:  []string{"what is the date today", "what day is it"},
			Responses: []string{"unused"},
		},
	}
}

// newTestUseCase trains a small in-memory model over testRecords and wires a
// usecase around it with a seeded RNG and a fixed clock.
func newTestUseCase(t *testing.T, cfg Config) *implUseCase {
	t.Helper()

	catalog, err := intent.New(testRecords())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	set := intent.BuildTrainingSet(context.Background(), catalog, &mockLogger{})
	vectorizer := tfidf.Fit(set.Docs)

	X := make([][]float64, len(set.Docs))
	for i, doc := range set.Docs {
		X[i] = vectorizer.Transform(doc)
	}
	classifier, err := bayes.Train(X, set.Tags, bayes.DefaultAlpha)
	if err != nil {
		t.Fatalf("train classifier: %v", err)
	}

	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	if cfg.Now == nil {
		cfg.Now = testClock
	}

	return New(&mockLogger{}, catalog, vectorizer, classifier, memory.New(), cfg)
}
