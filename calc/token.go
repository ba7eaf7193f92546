package calc

const (
	KindDigit Kind = iota
	KindDecimal
	KindOperator
	KindClear
	KindDelete
	KindEquals
)

// Kind classifies input tokens.
type Kind int

// Token is one discrete unit of user input.
type Token struct {
	Kind Kind
	Ch   byte // the digit or operator character
}

// Tokens without a character payload.
var (
	Decimal = Token{Kind: KindDecimal, Ch: '.'}
	Clear   = Token{Kind: KindClear}
	Delete  = Token{Kind: KindDelete}
	Equals  = Token{Kind: KindEquals}
)

// Digit returns the token for a digit key.
func Digit(ch byte) Token {
	if ch < '0' || ch > '9' {
		panic("bad digit")
	}
	return Token{Kind: KindDigit, Ch: ch}
}

// Operator returns the token for one of the keys + - * /.
func Operator(ch byte) Token {
	switch ch {
	case '+', '-', '*', '/':
		return Token{Kind: KindOperator, Ch: ch}
	default:
		panic("bad operator")
	}
}

// ParseToken maps a front-end input value ("0"-"9", ".", "+", "-", "*", "/",
// "C", "DEL", "=") to its token.
func ParseToken(s string) (Token, bool) {
	switch s {
	case "C":
		return Clear, true
	case "DEL":
		return Delete, true
	case "=":
		return Equals, true
	case ".":
		return Decimal, true
	}
	if len(s) != 1 {
		return Token{}, false
	}
	switch c := s[0]; {
	case c >= '0' && c <= '9':
		return Digit(c), true
	case c == '+' || c == '-' || c == '*' || c == '/':
		return Operator(c), true
	}
	return Token{}, false
}
