package intent_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chatbot-nlp-service/internal/intent"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	body := `{"intents":[
		{"tag":"greeting","patterns":["hi","hello"],"responses":["Hello!"]},
		{"tag":"goodbye","patterns":["bye"],"responses":["Bye!"]}
	]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := intent.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", c.Len())
	}

	rec, ok := c.Get("greeting")
	if !ok {
		t.Fatal("expected greeting record")
	}
	if len(rec.Responses) != 1 || rec.Responses[0] != "Hello!" {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, ok := c.Get("unknown"); ok {
		t.Error("unexpected hit for unknown tag")
	}
}

func TestLoadFailures(t *testing.T) {
	if _, err := intent.Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0o644)
	if _, err := intent.Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := intent.New(nil); err == nil {
		t.Error("expected error for empty catalog")
	}

	_, err := intent.New([]intent.Record{
		{Tag: "a", Patterns: []string{"x"}, Responses: []string{"y"}},
		{Tag: "a", Patterns: []string{"z"}, Responses: []string{"w"}},
	})
	if err == nil {
		t.Error("expected error for duplicate tags")
	}
}

func TestBuildTrainingSet(t *testing.T) {
	c, err := intent.New([]intent.Record{
		{Tag: "greeting", Patterns: []string{"Hello there!", "Hi"}, Responses: []string{"Hello!"}},
		{Tag: "broken", Responses: []string{"never trained"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	ts := intent.BuildTrainingSet(context.Background(), c, noopLogger{})

	if len(ts.Docs) != 2 {
		t.Fatalf("expected 2 docs (pattern-less intent skipped), got %d", len(ts.Docs))
	}
	if ts.Tags[0] != "greeting" || ts.Tags[1] != "greeting" {
		t.Errorf("unexpected tags: %v", ts.Tags)
	}
	// Patterns are normalized (lower-cased, stemmed).
	if ts.Docs[0] != "hello there" {
		t.Errorf("expected normalized doc, got %q", ts.Docs[0])
	}
}
