package strtime

import "slices"

// Layout is a compiled format string. It is immutable and may be shared
// between goroutines.
type Layout struct {
	format string
	tokens []Token
}

// Compile tokenizes format. Composite directives such as %F are expanded in
// place.
func Compile(format string) (*Layout, error) {
	tokens, err := compile(format)
	if err != nil {
		return nil, &ParseError{Format: format, Pos: -1, Err: err}
	}
	return &Layout{format: format, tokens: tokens}, nil
}

// MustCompile is like Compile but panics if format is invalid.
func MustCompile(format string) *Layout {
	l, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the format the layout was compiled from.
func (l *Layout) String() string { return l.format }

// Tokens returns a copy of the compiled token sequence.
func (l *Layout) Tokens() []Token { return slices.Clone(l.tokens) }

func compile(format string) ([]Token, error) {
	if format == "" {
		return nil, ErrEmptyFormat
	}
	var (
		tokens    []Token
		directive bool
		modifier  byte
	)
	for _, r := range format {
		if !directive {
			if r == '%' {
				directive, modifier = true, 0
			} else {
				tokens = appendLiteral(tokens, string(r))
			}
			continue
		}
		switch {
		case r == '%':
			tokens = appendLiteral(tokens, "%")
		case r == 'n':
			tokens = appendLiteral(tokens, "\n")
		case r == 't':
			tokens = appendLiteral(tokens, "\t")
		case modifier == 0 && isModifier(r):
			modifier = byte(r)
			continue
		default:
			d, ok := Lookup(r)
			if !ok {
				spelled := "%" + string(r)
				if modifier != 0 {
					spelled = "%" + string(modifier) + string(r)
				}
				return nil, reasonf(ErrUnknownDirective, "unknown directive %q", spelled)
			}
			if d.kind == CompositeDirective {
				expanded, err := d.expand()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, expanded...)
			} else {
				tokens = append(tokens, Token{Kind: TokenDirective, Modifier: modifier, Directive: d})
			}
		}
		directive, modifier = false, 0
	}
	if directive {
		return nil, ErrUnterminatedDirective
	}
	return tokens, nil
}

func isModifier(r rune) bool {
	return r == '-' || r == '_' || r == '^' || r == ':'
}

// appendLiteral adds s to the trailing literal token when both are of the
// same digit class.
func appendLiteral(tokens []Token, s string) []Token {
	if n := len(tokens); n > 0 {
		last := &tokens[n-1]
		if last.Kind == TokenLiteral && last.ExpandedFrom == nil && isDigit(last.Literal[0]) == isDigit(s[0]) {
			last.Literal += s
			return tokens
		}
	}
	return append(tokens, Token{Kind: TokenLiteral, Literal: s})
}
