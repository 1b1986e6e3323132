package usecase

import "testing"

func TestIsMathExpression(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"2 + 2", true},
		{"seven times three", true},
		{"solve my problem", true},
		{"I have 3 cats", true},
		{"x + 1 = 5", true},
		{"What time is it?", false},
		{"hello there", false},
		{"thanks a lot", false},
	}

	for _, tc := range cases {
		if got := isMathExpression(tc.message); got != tc.want {
			t.Errorf("isMathExpression(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestNormalizeMathText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3 multiplied by 4", "3 * 4"},
		{"10 divided by 2", "10 / 2"},
		{"1 plus 2 minus 3", "1 + 2 - 3"},
		{"2 times 2", "2 * 2"},
		{"2 ^ 3", "2 ** 3"},
		{"5 PLUS 5", "5 + 5"},
	}

	for _, tc := range cases {
		if got := normalizeMathText(tc.in); got != tc.want {
			t.Errorf("normalizeMathText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
