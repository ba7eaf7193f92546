package eval

import (
	"errors"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"7", 7},
		{"12+3*4", 24},
		{"2.5+2.5", 5},
		{"10-4-3", 3},
		{"20/4/5", 1},
		{"(2+3)*4", 20},
		{"1+2*(3+4)/7", 3},
		{"-3+5", 2},
		{"-2*3", -6},
		{"(-3+2)*2", -2},
		{"-(2+3)", -5},
		{"3+", 3},
		{"12+3*", 15},
		{" 1 + 2 ", 3},
		{".5*2", 1},
		{"0.1+0.2", 0.30000000000000004},
	}
	for _, test := range tests {
		v, err := Evaluate(test.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) error: %v", test.expr, err)
			continue
		}
		if v != test.want {
			t.Errorf("Evaluate(%q) = %v, want %v", test.expr, v, test.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"+-*/", ErrEmpty},
		{"3..5", ErrInvalidSyntax},
		{"1.2.3", ErrInvalidSyntax},
		{"5**3", ErrInvalidSyntax},
		{"2+-3", ErrInvalidSyntax},
		{"5*-3", ErrInvalidSyntax},
		{"--2", ErrInvalidSyntax},
		{"(2+3", ErrInvalidSyntax},
		{"2+3)", ErrInvalidSyntax},
		{"()", ErrInvalidSyntax},
		{"+5", ErrInvalidSyntax},
		{"*5", ErrInvalidSyntax},
		{"/5", ErrInvalidSyntax},
		{"12a", ErrInvalidSyntax},
		{".", ErrInvalidSyntax},
		{"1e5", ErrInvalidSyntax},
		{"10/0", ErrDivisionByZero},
		{"1/0.0", ErrDivisionByZero},
		{"5/(3-3)", ErrDivisionByZero},
	}
	for _, test := range tests {
		_, err := Evaluate(test.expr)
		if !errors.Is(err, test.want) {
			t.Errorf("Evaluate(%q) error = %v, want %v", test.expr, err, test.want)
		}
	}
}

func TestEvaluateOverflow(t *testing.T) {
	big := strings.Repeat("9", 200)
	for _, expr := range []string{big + "*" + big, strings.Repeat("9", 320)} {
		if _, err := Evaluate(expr); !errors.Is(err, ErrOverflow) {
			t.Errorf("Evaluate(%q...) error = %v, want %v", expr[:8], err, ErrOverflow)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Evaluate("12+*3")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a SyntaxError", err)
	}
	if serr.Pos != 3 {
		t.Fatalf("Pos = %d, want 3", serr.Pos)
	}
}

func TestCheck(t *testing.T) {
	for _, expr := range []string{"7", "(2+3)*4", "12+", "1.5"} {
		if err := Check(expr); err != nil {
			t.Errorf("Check(%q) = %v, want nil", expr, err)
		}
	}
	for _, expr := range []string{"", "2+x", "3..5", "(2+3"} {
		if err := Check(expr); err == nil {
			t.Errorf("Check(%q) = nil, want error", expr)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{7, "7"},
		{5, "5"},
		{0, "0"},
		{-3, "-3"},
		{0.5, "0.5"},
		{67.1, "67.1"},
		{0.30000000000000004, "0.30000000000000004"},
		{1e21, "1e+21"},
	}
	for _, test := range tests {
		if got := Format(test.v); got != test.want {
			t.Errorf("Format(%v) = %q, want %q", test.v, got, test.want)
		}
	}
}
