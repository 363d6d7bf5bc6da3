package strtime

// TokenKind distinguishes literal text from directives in a compiled layout.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenDirective
)

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenDirective:
		return "directive"
	default:
		return "unknown"
	}
}

// Token is one element of a compiled layout.
//
// Consecutive literal characters of the same class (digits or non-digits)
// share a token; a change of class always starts a new one.
type Token struct {
	Kind TokenKind
	// Literal is the text of a TokenLiteral.
	Literal string
	// Modifier is one of '-', '_', '^', ':' or 0.
	Modifier byte
	// Directive is set for TokenDirective.
	Directive *Directive
	// ExpandedFrom is the composite directive this token was spliced from.
	ExpandedFrom *Directive
}

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return t.Literal
	}
	if t.Modifier != 0 {
		return "%" + string(t.Modifier) + t.Directive.names[:1]
	}
	return t.Directive.String()
}

// numeric reports whether the token is a directive read as a plain number.
func (t *Token) numeric() bool {
	return t.Kind == TokenDirective && t.Directive.kind == NumericDirective
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
