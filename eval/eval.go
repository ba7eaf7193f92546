// Package eval validates and evaluates arithmetic expressions restricted to
// decimal literals, the operators + - * /, and parentheses. It holds no state
// between calls and is safe for concurrent use.
package eval

import (
	"math"
	"strconv"
	"strings"
)

// operators are the binary operator characters of the accepted grammar.
const operators = "+-*/"

// Evaluate computes the value of expr. Trailing operators and whitespace are
// stripped first, so an in-progress expression like "12+" evaluates to 12.
// Failures are reported as ErrEmpty, ErrInvalidSyntax (possibly wrapped in a
// SyntaxError), ErrDivisionByZero or ErrOverflow.
func Evaluate(expr string) (float64, error) {
	expr = strings.TrimRight(expr, operators+" \t")
	if expr == "" {
		return 0, ErrEmpty
	}
	n, err := parse(expr)
	if err != nil {
		return 0, err
	}
	v, err := n.eval()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOverflow
	}
	return v, nil
}

// Check validates expr without computing its value. Like Evaluate, it
// tolerates trailing operators.
func Check(expr string) error {
	expr = strings.TrimRight(expr, operators+" \t")
	if expr == "" {
		return ErrEmpty
	}
	_, err := parse(expr)
	return err
}

// maxSafeInt is the largest float64 magnitude at which every integer is
// still exactly representable.
const maxSafeInt = 1 << 53

// Format renders a result for display. Values that are mathematically
// integers print without a decimal part; everything else uses the shortest
// representation that round-trips.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < maxSafeInt {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
