package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"chatbot-nlp-service/pkg/algebra"
)

// mathKeywords are verbal markers that route an utterance to the math path.
var mathKeywords = []string{
	"calculate", "solve", "evaluate", "times", "plus", "minus", "multiplied", "divided",
}

// mathSymbolRE matches any character that suggests arithmetic. Digit presence
// alone is enough; false positives on text that merely mentions a number are
// an accepted trade-off of this heuristic.
var mathSymbolRE = regexp.MustCompile(`[0-9+\-*/^()=x]`)

// isMathExpression decides whether an utterance is a math query.
func isMathExpression(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range mathKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return mathSymbolRE.MatchString(text)
}

// mathReplacer substitutes verbal operators with symbols. Multi-word phrases
// come first so "multiplied by" never degrades into a bare "by".
var mathReplacer = strings.NewReplacer(
	"multiplied by", "*",
	"divided by", "/",
	"plus", "+",
	"minus", "-",
	"times", "*",
	"^", "**",
)

func normalizeMathText(text string) string {
	return mathReplacer.Replace(strings.ToLower(text))
}

// evaluateMath normalizes and evaluates a math utterance. Every failure maps
// to the fixed apology string; nothing propagates.
func (uc *implUseCase) evaluateMath(ctx context.Context, text string) string {
	cleaned := normalizeMathText(text)

	if lhsText, rhsText, isEquation := strings.Cut(cleaned, "="); isEquation {
		lhs, err := algebra.Parse(lhsText)
		if err != nil {
			uc.l.Debugf(ctx, "math parse failed: %v", err)
			return MsgMathApology
		}
		rhs, err := algebra.Parse(rhsText)
		if err != nil {
			uc.l.Debugf(ctx, "math parse failed: %v", err)
			return MsgMathApology
		}
		roots, err := algebra.Solve(lhs, rhs)
		if err != nil {
			uc.l.Debugf(ctx, "math solve failed: %v", err)
			return MsgMathApology
		}
		// Multi-root equations report the first root only.
		return "Solved equation: x = " + roots[0]
	}

	expr, err := algebra.Parse(cleaned)
	if err != nil {
		uc.l.Debugf(ctx, "math parse failed: %v", err)
		return MsgMathApology
	}
	if expr.IsConstant() {
		return "Result: " + algebra.FormatRat(expr.Coeff(0))
	}
	return "Result: " + expr.String()
}

// evaluateMathGuarded bounds the evaluator's run time. On expiry the request
// degrades to the apology string instead of hanging.
func (uc *implUseCase) evaluateMathGuarded(ctx context.Context, text string) string {
	if uc.solverTimeout <= 0 {
		return uc.evaluateMath(ctx, text)
	}

	// On expiry the worker is abandoned and runs to completion in the
	// background; the buffered channel lets it finish without blocking, and
	// the degree cap in pkg/algebra bounds how long that can take.
	done := make(chan string, 1)
	go func() {
		done <- uc.evaluateMath(ctx, text)
	}()

	select {
	case reply := <-done:
		return reply
	case <-time.After(uc.solverTimeout):
		uc.l.Warnf(ctx, "math evaluation exceeded %s, degrading to apology", uc.solverTimeout)
		return MsgMathApology
	case <-ctx.Done():
		return MsgMathApology
	}
}
