package algebra

import (
	"math/big"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokVar
	tokPlus
	tokMinus
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	value *big.Rat // set for tokNumber
	text  string
}

type parser struct {
	tokens []token
	pos    int
}

// Parse evaluates a normalized expression string into a polynomial in x.
// Accepted syntax: decimal numbers, the variable x, + - * / ** and
// parentheses. Adjacency implies multiplication ("2x", "3(x+1)").
func Parse(input string) (Expr, error) {
	tokens, err := lex(input)
	if err != nil {
		return Expr{}, err
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseExpr()
	if err != nil {
		return Expr{}, err
	}
	if p.peek().kind != tokEOF {
		return Expr{}, parseErrorf("unexpected %q", p.peek().text)
	}
	return expr, nil
}

func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			seenDot := false
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				if runes[i] == '.' {
					if seenDot {
						return nil, parseErrorf("malformed number near %q", string(runes[start:i+1]))
					}
					seenDot = true
				}
				i++
			}
			text := string(runes[start:i])
			val, ok := new(big.Rat).SetString(text)
			if !ok {
				return nil, parseErrorf("malformed number %q", text)
			}
			tokens = append(tokens, token{kind: tokNumber, value: val, text: text})
		case r == 'x':
			tokens = append(tokens, token{kind: tokVar, text: "x"})
			i++
		case r == '+':
			tokens = append(tokens, token{kind: tokPlus, text: "+"})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokMinus, text: "-"})
			i++
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, token{kind: tokPow, text: "**"})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokMul, text: "*"})
				i++
			}
		case r == '/':
			tokens = append(tokens, token{kind: tokDiv, text: "/"})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")"})
			i++
		default:
			return nil, parseErrorf("unknown symbol %q", string(r))
		}
	}
	tokens = append(tokens, token{kind: tokEOF, text: "end of input"})
	if len(tokens) == 1 {
		return nil, parseErrorf("empty expression")
	}
	return tokens, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// parseExpr := term (('+'|'-') term)*
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return Expr{}, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return Expr{}, err
			}
			left = left.add(right)
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return Expr{}, err
			}
			left = left.sub(right)
		default:
			return left, nil
		}
	}
}

// parseTerm := unary (('*'|'/') unary | <adjacent atom>)*
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Expr{}, err
	}
	for {
		switch p.peek().kind {
		case tokMul:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return Expr{}, err
			}
			left, err = left.mul(right)
			if err != nil {
				return Expr{}, err
			}
		case tokDiv:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return Expr{}, err
			}
			left, err = left.div(right)
			if err != nil {
				return Expr{}, err
			}
		case tokNumber, tokVar, tokLParen:
			// Implicit multiplication: "2x", "3(x+1)", "x(x-1)".
			right, err := p.parsePower()
			if err != nil {
				return Expr{}, err
			}
			left, err = left.mul(right)
			if err != nil {
				return Expr{}, err
			}
		default:
			return left, nil
		}
	}
}

// parseUnary := ('+'|'-')* power
func (p *parser) parseUnary() (Expr, error) {
	negate := false
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
		case tokMinus:
			negate = !negate
			p.next()
		default:
			expr, err := p.parsePower()
			if err != nil {
				return Expr{}, err
			}
			if negate {
				expr = expr.neg()
			}
			return expr, nil
		}
	}
}

// parsePower := atom ('**' unary)?
// Exponents must reduce to non-negative integer constants.
func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return Expr{}, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()

	exponent, err := p.parseUnary()
	if err != nil {
		return Expr{}, err
	}
	if !exponent.IsConstant() {
		return Expr{}, solveErrorf("x in exponent is not supported")
	}
	v := exponent.Coeff(0)
	if !v.IsInt() {
		return Expr{}, solveErrorf("fractional exponents are not supported")
	}
	if !v.Num().IsInt64() {
		return Expr{}, solveErrorf("exponent too large")
	}
	n := v.Num().Int64()
	if n < 0 || n > maxDegree {
		return Expr{}, solveErrorf("exponent %d out of supported range", n)
	}
	return base.pow(int(n))
}

// parseAtom := number | 'x' | '(' expr ')'
func (p *parser) parseAtom() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return constant(t.value), nil
	case tokVar:
		return variable(), nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return Expr{}, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return Expr{}, parseErrorf("expected ) but found %q", closing.text)
		}
		return inner, nil
	default:
		return Expr{}, parseErrorf("unexpected %q", t.text)
	}
}
