package usecase

import (
	"context"
	"testing"

	"chatbot-nlp-service/internal/model"
)

func TestClassify_NeverEmpty(t *testing.T) {
	uc := newTestUseCase(t, Config{CacheSize: 8})
	ctx := context.Background()

	for _, msg := range []string{"hello", "what time is it", "zzz qqq vvv", ""} {
		results := uc.classify(ctx, msg)
		if len(results) == 0 {
			t.Errorf("classify(%q) returned no candidates", msg)
		}
		if len(results) > uc.topK {
			t.Errorf("classify(%q) returned %d candidates, top-k is %d", msg, len(results), uc.topK)
		}
	}
}

func TestClassify_FallbackContract(t *testing.T) {
	uc := newTestUseCase(t, Config{Threshold: 0.99})

	// No tag can clear a 0.99 threshold on out-of-vocabulary input, so the
	// result must be exactly the synthetic fallback candidate.
	results := uc.classify(context.Background(), "purple monkey dishwasher")
	if len(results) != 1 {
		t.Fatalf("got %d candidates, want 1", len(results))
	}
	if results[0].Tag != TagFallback {
		t.Errorf("tag = %q, want %q", results[0].Tag, TagFallback)
	}
	if results[0].Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", results[0].Confidence)
	}
}

func TestClassify_CacheNormalizedKey(t *testing.T) {
	uc := newTestUseCase(t, Config{CacheSize: 8})
	ctx := context.Background()

	// Same text modulo case and punctuation normalizes to one cache entry.
	uc.classify(ctx, "What time is it?")
	if uc.classifyCache.Len() != 1 {
		t.Fatalf("cache len = %d, want 1", uc.classifyCache.Len())
	}
	uc.classify(ctx, "what TIME is it")
	if uc.classifyCache.Len() != 1 {
		t.Errorf("cache len = %d after equivalent query, want 1", uc.classifyCache.Len())
	}
}

func TestRespond_UnknownTag(t *testing.T) {
	uc := newTestUseCase(t, Config{})
	if got := uc.respond("no-such-tag", nil, model.SentimentNeutral); got != MsgUnknownTag {
		t.Errorf("respond = %q, want %q", got, MsgUnknownTag)
	}
	if got := uc.respond(TagFallback, nil, model.SentimentNeutral); got != MsgUnknownTag {
		t.Errorf("respond fallback = %q, want %q", got, MsgUnknownTag)
	}
}

func TestDetectSentiment(t *testing.T) {
	cases := []struct {
		text string
		want model.Sentiment
	}{
		{"this is awesome", model.SentimentPositive},
		{"i feel terrible", model.SentimentNegative},
		{"the sky is blue", model.SentimentNeutral},
		{"", model.SentimentNeutral},
	}
	for _, tc := range cases {
		if got := detectSentiment(tc.text); got != tc.want {
			t.Errorf("detectSentiment(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
