package algebra

import "fmt"

// Kind classifies evaluation failures so callers can distinguish them in
// tests while still mapping every kind to the same user-facing reply.
type Kind int

const (
	// KindParse covers malformed syntax and unknown symbols.
	KindParse Kind = iota
	// KindSolve covers well-formed input the engine cannot handle:
	// division by zero, non-constant divisors, bad exponents, degree > 2.
	KindSolve
	// KindNoSolution covers equations with no real root.
	KindNoSolution
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindSolve:
		return "solve"
	case KindNoSolution:
		return "no solution"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by Parse and Solve.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("algebra %s error: %s", e.Kind, e.Msg)
}

func parseErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...)}
}

func solveErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindSolve, Msg: fmt.Sprintf(format, args...)}
}

func noSolutionErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindNoSolution, Msg: fmt.Sprintf(format, args...)}
}
