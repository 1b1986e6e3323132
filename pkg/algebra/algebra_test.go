package algebra_test

import (
	"errors"
	"testing"

	"chatbot-nlp-service/pkg/algebra"
)

func mustParse(t *testing.T, input string) algebra.Expr {
	t.Helper()
	expr, err := algebra.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return expr
}

func kindOf(t *testing.T, err error) algebra.Kind {
	t.Helper()
	var ae *algebra.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *algebra.Error, got %T: %v", err, err)
	}
	return ae.Kind
}

func TestParseAndString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 2", "4"},
		{"2 * 3 + 1", "7"},
		{"10 / 4", "5/2"},
		{"2.5 + 0.5", "3"},
		{"x + x", "2*x"},
		{"2x + 1", "2*x + 1"},
		{"(x + 1)(x - 1)", "x**2 - 1"},
		{"x**2 + 2x + 1", "x**2 + 2*x + 1"},
		{"-x + 3 - 3", "-x"},
		{"x - x", "0"},
		{"3(x+2)", "3*x + 6"},
		{"2**3", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := mustParse(t, tt.input)
			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  algebra.Kind
	}{
		{"Garbage words", "banana + + *", algebra.KindParse},
		{"Dangling operator", "2 +", algebra.KindParse},
		{"Unbalanced paren", "(x + 1", algebra.KindParse},
		{"Empty", "   ", algebra.KindParse},
		{"Double dot number", "1.2.3", algebra.KindParse},
		{"Division by zero", "1 / 0", algebra.KindSolve},
		{"Division by x", "1 / x", algebra.KindSolve},
		{"Fractional exponent", "x ** (1/2)", algebra.KindSolve},
		{"Negative exponent", "x ** -1", algebra.KindSolve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := algebra.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.input)
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("Parse(%q) error kind = %v, want %v", tt.input, got, tt.kind)
			}
		})
	}
}

func TestSolveLinear(t *testing.T) {
	roots, err := algebra.Solve(mustParse(t, "2x"), mustParse(t, "4"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(roots) != 1 || roots[0] != "2" {
		t.Errorf("roots = %v, want [2]", roots)
	}

	roots, err = algebra.Solve(mustParse(t, "3x + 1"), mustParse(t, "0"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(roots) != 1 || roots[0] != "-1/3" {
		t.Errorf("roots = %v, want [-1/3]", roots)
	}
}

func TestSolveQuadratic(t *testing.T) {
	// x^2 - 5x + 6 = 0 -> roots 2, 3 ascending
	roots, err := algebra.Solve(mustParse(t, "x**2 - 5x + 6"), mustParse(t, "0"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(roots) != 2 || roots[0] != "2" || roots[1] != "3" {
		t.Errorf("roots = %v, want [2 3]", roots)
	}

	// Double root: (x-1)^2 = 0
	roots, err = algebra.Solve(mustParse(t, "x**2 - 2x + 1"), mustParse(t, "0"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(roots) != 1 || roots[0] != "1" {
		t.Errorf("roots = %v, want [1]", roots)
	}
}

func TestSolveFailures(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs string
		kind     algebra.Kind
	}{
		{"No real roots", "x**2 + 1", "0", algebra.KindNoSolution},
		{"X cancels", "x + 1", "x", algebra.KindNoSolution},
		{"Identity", "x", "x", algebra.KindNoSolution},
		{"Cubic", "x**3", "1", algebra.KindSolve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := algebra.Solve(mustParse(t, tt.lhs), mustParse(t, tt.rhs))
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("error kind = %v, want %v", got, tt.kind)
			}
		})
	}
}
