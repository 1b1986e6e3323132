// Package algebra parses and solves expressions and equations over a single
// variable x using exact rational arithmetic. Expressions reduce to
// polynomials in x; equations solve up to degree two.
package algebra

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// maxDegree bounds polynomial growth so pathological exponent chains cannot
// exhaust memory.
const maxDegree = 64

// Expr is a polynomial in x with rational coefficients, keyed by degree.
// Zero coefficients are never stored.
type Expr struct {
	coeffs map[int]*big.Rat
}

func newExpr() Expr {
	return Expr{coeffs: make(map[int]*big.Rat)}
}

func constant(r *big.Rat) Expr {
	e := newExpr()
	if r.Sign() != 0 {
		e.coeffs[0] = new(big.Rat).Set(r)
	}
	return e
}

func variable() Expr {
	e := newExpr()
	e.coeffs[1] = big.NewRat(1, 1)
	return e
}

// Degree returns the highest degree with a non-zero coefficient; the zero
// polynomial has degree 0.
func (e Expr) Degree() int {
	d := 0
	for deg := range e.coeffs {
		if deg > d {
			d = deg
		}
	}
	return d
}

// IsConstant reports whether x does not appear in the expression.
func (e Expr) IsConstant() bool {
	return e.Degree() == 0
}

// Coeff returns the coefficient at the given degree (zero if absent).
func (e Expr) Coeff(deg int) *big.Rat {
	if c, ok := e.coeffs[deg]; ok {
		return new(big.Rat).Set(c)
	}
	return new(big.Rat)
}

func (e Expr) add(o Expr) Expr {
	out := newExpr()
	for deg, c := range e.coeffs {
		out.coeffs[deg] = new(big.Rat).Set(c)
	}
	for deg, c := range o.coeffs {
		cur, ok := out.coeffs[deg]
		if !ok {
			cur = new(big.Rat)
			out.coeffs[deg] = cur
		}
		cur.Add(cur, c)
		if cur.Sign() == 0 {
			delete(out.coeffs, deg)
		}
	}
	return out
}

func (e Expr) neg() Expr {
	out := newExpr()
	for deg, c := range e.coeffs {
		out.coeffs[deg] = new(big.Rat).Neg(c)
	}
	return out
}

func (e Expr) sub(o Expr) Expr {
	return e.add(o.neg())
}

func (e Expr) mul(o Expr) (Expr, error) {
	out := newExpr()
	for d1, c1 := range e.coeffs {
		for d2, c2 := range o.coeffs {
			deg := d1 + d2
			if deg > maxDegree {
				return Expr{}, solveErrorf("polynomial degree exceeds %d", maxDegree)
			}
			cur, ok := out.coeffs[deg]
			if !ok {
				cur = new(big.Rat)
				out.coeffs[deg] = cur
			}
			cur.Add(cur, new(big.Rat).Mul(c1, c2))
		}
	}
	for deg, c := range out.coeffs {
		if c.Sign() == 0 {
			delete(out.coeffs, deg)
		}
	}
	return out, nil
}

func (e Expr) div(o Expr) (Expr, error) {
	if !o.IsConstant() {
		return Expr{}, solveErrorf("division by an expression containing x is not supported")
	}
	d := o.Coeff(0)
	if d.Sign() == 0 {
		return Expr{}, solveErrorf("division by zero")
	}
	inv := new(big.Rat).Inv(d)
	out := newExpr()
	for deg, c := range e.coeffs {
		out.coeffs[deg] = new(big.Rat).Mul(c, inv)
	}
	return out, nil
}

func (e Expr) pow(exp int) (Expr, error) {
	if exp < 0 {
		return Expr{}, solveErrorf("negative exponents are not supported")
	}
	out := constant(big.NewRat(1, 1))
	base := e
	var err error
	for i := 0; i < exp; i++ {
		out, err = out.mul(base)
		if err != nil {
			return Expr{}, err
		}
	}
	return out, nil
}

// String renders the polynomial in conventional descending-degree form,
// e.g. "x**2 - 2*x + 3" or "5/2".
func (e Expr) String() string {
	if len(e.coeffs) == 0 {
		return "0"
	}

	degrees := make([]int, 0, len(e.coeffs))
	for deg := range e.coeffs {
		degrees = append(degrees, deg)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	var b strings.Builder
	for i, deg := range degrees {
		c := e.coeffs[deg]
		neg := c.Sign() < 0
		abs := new(big.Rat).Abs(c)

		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}

		b.WriteString(monomial(abs, deg))
	}
	return b.String()
}

func monomial(abs *big.Rat, deg int) string {
	one := abs.Cmp(big.NewRat(1, 1)) == 0
	switch {
	case deg == 0:
		return FormatRat(abs)
	case deg == 1 && one:
		return "x"
	case deg == 1:
		return FormatRat(abs) + "*x"
	case one:
		return fmt.Sprintf("x**%d", deg)
	default:
		return fmt.Sprintf("%s*x**%d", FormatRat(abs), deg)
	}
}

// FormatRat renders a rational the way a symbolic engine prints it:
// integers plainly, everything else as num/denom.
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
