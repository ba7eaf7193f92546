// Package calc implements the input state machine of the calculator. It
// turns a stream of key tokens into a well-formed expression string; the
// string only reaches the evaluator when the equals key is applied.
package calc

import (
	"errors"
	"strings"

	"exprcalc/eval"
)

// Display markers for failed evaluations.
const (
	textError   = "Error"
	textDivZero = "Error: Div/0"
)

// Buffer holds the expression under construction. The text is never empty;
// the no-input state displays "0".
type Buffer struct {
	text       string
	lastResult float64
	fresh      bool
}

// New returns a buffer displaying "0".
func New() *Buffer {
	return &Buffer{text: "0", fresh: true}
}

// Text returns the current display string.
func (b *Buffer) Text() string {
	return b.text
}

// LastResult returns the value of the most recent successful evaluation.
func (b *Buffer) LastResult() float64 {
	return b.lastResult
}

// Fresh reports whether the next digit or decimal point starts a new
// expression instead of appending.
func (b *Buffer) Fresh() bool {
	return b.fresh
}

// Apply processes one input token, mutating the buffer. It never fails:
// inputs that would create a malformed expression are dropped or adjusted.
func (b *Buffer) Apply(t Token) {
	switch t.Kind {
	case KindClear:
		b.text = "0"
		b.lastResult = 0
		b.fresh = true
	case KindDelete:
		if len(b.text) > 1 {
			b.text = b.text[:len(b.text)-1]
		} else {
			b.text = "0"
		}
	case KindEquals:
		b.evaluate()
	case KindOperator:
		b.operator(t.Ch)
	case KindDigit, KindDecimal:
		b.input(t)
	default:
		panic("unknown token kind")
	}
}

// operator appends op. A trailing operator is replaced instead, so the last
// operator typed wins and no two operator characters are ever adjacent.
func (b *Buffer) operator(op byte) {
	if isOperator(b.text[len(b.text)-1]) {
		b.text = b.text[:len(b.text)-1] + string(op)
	} else {
		b.text += string(op)
	}
	b.fresh = false
}

// input handles digit and decimal point tokens.
func (b *Buffer) input(t Token) {
	switch {
	case b.fresh:
		// Start over, discarding the previous result or error marker.
		b.text = string(t.Ch)
	case t.Kind == KindDigit && b.text == "0":
		// Suppress the leading zero.
		b.text = string(t.Ch)
	case t.Kind == KindDecimal && strings.ContainsRune(currentRun(b.text), '.'):
		// One decimal point per number.
		return
	default:
		b.text += string(t.Ch)
	}
	b.fresh = false
}

// evaluate runs the expression through the evaluator and writes the outcome
// back into the buffer. All failures become display markers; nothing escapes.
func (b *Buffer) evaluate() {
	v, err := eval.Evaluate(b.text)
	switch {
	case err == nil:
		b.text = eval.Format(v)
		b.lastResult = v
	case errors.Is(err, eval.ErrEmpty):
		b.text = "0"
	case errors.Is(err, eval.ErrDivisionByZero):
		b.text = textDivZero
	default:
		b.text = textError
	}
	b.fresh = true
}

// SetExpr replaces the whole expression, e.g. from a clipboard paste. The
// text is accepted if it parses; a trailing operator is tolerated so that
// in-progress expressions round-trip. Reports whether the buffer changed.
func (b *Buffer) SetExpr(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || eval.Check(s) != nil {
		return false
	}
	b.text = s
	b.fresh = false
	return true
}

// currentRun returns the numeric run at the end of the expression: the
// substring after the last operator or opening parenthesis.
func currentRun(text string) string {
	if i := strings.LastIndexAny(text, "+-*/("); i >= 0 {
		return text[i+1:]
	}
	return text
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}
