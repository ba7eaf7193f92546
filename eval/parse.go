package eval

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	tokEOF tokKind = iota
	tokNumber
	tokOp
	tokLParen
	tokRParen
)

type tokKind int

type token struct {
	kind tokKind
	pos  int
	lit  string
	op   byte    // set for tokOp
	val  float64 // set for tokNumber
}

type lexer struct {
	src string
	pos int
}

// next scans the next token.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, pos: start, lit: "("}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, pos: start, lit: ")"}, nil
	case isOperator(c):
		l.pos++
		return token{kind: tokOp, pos: start, lit: string(c), op: c}, nil
	case isDigit(c) || c == '.':
		return l.number()
	default:
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
}

// number scans a numeric literal.
func (l *lexer) number() (token, error) {
	start, dots := l.pos, 0
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		if l.src[l.pos] == '.' {
			dots++
		}
		l.pos++
	}
	lit := l.src[start:l.pos]
	if dots > 1 {
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("multiple decimal points in %q", lit)}
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("bad number %q", lit)}
	}
	// Out-of-range literals keep their ±Inf value and surface as
	// ErrOverflow after evaluation.
	return token{kind: tokNumber, pos: start, lit: lit, val: v}, nil
}

func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool    { return c >= '0' && c <= '9' }
func isOperator(c byte) bool { return c == '+' || c == '-' || c == '*' || c == '/' }

// node is a validated expression tree.
type node interface {
	eval() (float64, error)
}

type numberLit float64

func (n numberLit) eval() (float64, error) {
	return float64(n), nil
}

type binaryOp struct {
	op          byte
	left, right node
}

func (b *binaryOp) eval() (float64, error) {
	x, err := b.left.eval()
	if err != nil {
		return 0, err
	}
	y, err := b.right.eval()
	if err != nil {
		return 0, err
	}
	switch b.op {
	case '+':
		return x + y, nil
	case '-':
		return x - y, nil
	case '*':
		return x * y, nil
	case '/':
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	default:
		panic("unknown operator")
	}
}

type parser struct {
	lex lexer
	tok token
}

// parse builds the expression tree for src.
func parse(src string) (node, error) {
	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// parseExpr parses addition and subtraction, left to right.
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm(true)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.op == '+' || p.tok.op == '-') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm(false)
		if err != nil {
			return nil, err
		}
		left = &binaryOp{op: op, left: left, right: right}
	}
	return left, nil
}

// parseTerm parses multiplication and division, left to right.
func (p *parser) parseTerm(allowNeg bool) (node, error) {
	left, err := p.parseUnary(allowNeg)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp && (p.tok.op == '*' || p.tok.op == '/') {
		op := p.tok.op
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary(false)
		if err != nil {
			return nil, err
		}
		left = &binaryOp{op: op, left: left, right: right}
	}
	return left, nil
}

// parseUnary accepts a minus sign only at the start of an expression or right
// after an opening parenthesis, binding it to the following primary:
// -2*3 is (-2)*3, while 5*-3 is a syntax error.
func (p *parser) parseUnary(allowNeg bool) (node, error) {
	if allowNeg && p.tok.kind == tokOp && p.tok.op == '-' {
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &binaryOp{op: '-', left: numberLit(0), right: n}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a number or a parenthesized expression.
func (p *parser) parsePrimary() (node, error) {
	switch p.tok.kind {
	case tokNumber:
		n := numberLit(p.tok.val)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, &SyntaxError{Pos: p.tok.pos, Msg: "missing closing parenthesis"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) unexpected() error {
	if p.tok.kind == tokEOF {
		return &SyntaxError{Pos: p.tok.pos, Msg: "unexpected end of expression"}
	}
	return &SyntaxError{Pos: p.tok.pos, Msg: fmt.Sprintf("unexpected %q", p.tok.lit)}
}
