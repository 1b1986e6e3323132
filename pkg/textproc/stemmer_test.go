package textproc_test

import (
	"testing"

	"chatbot-nlp-service/pkg/textproc"
)

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Plurals and -ed/-ing
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"cats", "cat"},
		{"feed", "feed"},
		{"agreed", "agre"},
		{"plastered", "plaster"},
		{"motoring", "motor"},
		{"sing", "sing"},
		{"sized", "size"},
		{"hopping", "hop"},
		{"tanned", "tan"},
		{"falling", "fall"},
		{"filing", "file"},
		{"troubled", "troubl"},
		// y -> i
		{"happy", "happi"},
		{"sky", "sky"},
		// Longer suffix chains
		{"relational", "relat"},
		{"conditional", "condit"},
		{"generalization", "gener"},
		// Short words pass through
		{"is", "is"},
		{"me", "me"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := textproc.Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := textproc.Tokenize("Hello, World! What's up? 42")
	want := []string{"hello", "world", "what", "s", "up", "42"}

	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	got := textproc.Normalize("Falling ponies!")
	want := "fall poni"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}
