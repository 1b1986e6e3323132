package algebra

import (
	"math"
	"math/big"
	"sort"
	"strconv"
)

// Solve finds the real roots of lhs = rhs. Roots are returned in ascending
// order, formatted exactly when rational and as decimals otherwise.
// Equations where x cancels out (or never appears) have no solvable root and
// return a KindNoSolution error; degrees above two return KindSolve.
func Solve(lhs, rhs Expr) ([]string, error) {
	diff := lhs.sub(rhs)

	switch diff.Degree() {
	case 0:
		// Either an identity (0 = 0) or a contradiction; no root to report
		// in both cases.
		return nil, noSolutionErrorf("equation has no variable to solve for")
	case 1:
		return solveLinear(diff)
	case 2:
		return solveQuadratic(diff)
	default:
		return nil, solveErrorf("equations of degree %d are not supported", diff.Degree())
	}
}

func solveLinear(p Expr) ([]string, error) {
	// a*x + b = 0  =>  x = -b/a
	a := p.Coeff(1)
	b := p.Coeff(0)
	root := new(big.Rat).Quo(new(big.Rat).Neg(b), a)
	return []string{FormatRat(root)}, nil
}

func solveQuadratic(p Expr) ([]string, error) {
	a := p.Coeff(2)
	b := p.Coeff(1)
	c := p.Coeff(0)

	// discriminant = b^2 - 4ac
	disc := new(big.Rat).Mul(b, b)
	fourAC := new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c))
	disc.Sub(disc, fourAC)

	switch disc.Sign() {
	case -1:
		return nil, noSolutionErrorf("no real roots")
	case 0:
		root := new(big.Rat).Quo(new(big.Rat).Neg(b), new(big.Rat).Mul(big.NewRat(2, 1), a))
		return []string{FormatRat(root)}, nil
	}

	if sqrtDisc, exact := ratSqrt(disc); exact {
		twoA := new(big.Rat).Mul(big.NewRat(2, 1), a)
		negB := new(big.Rat).Neg(b)
		r1 := new(big.Rat).Quo(new(big.Rat).Sub(negB, sqrtDisc), twoA)
		r2 := new(big.Rat).Quo(new(big.Rat).Add(negB, sqrtDisc), twoA)
		if r1.Cmp(r2) > 0 {
			r1, r2 = r2, r1
		}
		return []string{FormatRat(r1), FormatRat(r2)}, nil
	}

	// Irrational roots: fall back to floating point.
	af, _ := a.Float64()
	bf, _ := b.Float64()
	df, _ := disc.Float64()
	sq := math.Sqrt(df)
	r1 := (-bf - sq) / (2 * af)
	r2 := (-bf + sq) / (2 * af)
	roots := []float64{r1, r2}
	sort.Float64s(roots)
	return []string{formatFloat(roots[0]), formatFloat(roots[1])}, nil
}

// ratSqrt returns the exact rational square root of r when one exists.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	num, exactNum := intSqrt(r.Num())
	if !exactNum {
		return nil, false
	}
	den, exactDen := intSqrt(r.Denom())
	if !exactDen {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func intSqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	square := new(big.Int).Mul(root, root)
	return root, square.Cmp(n) == 0
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
