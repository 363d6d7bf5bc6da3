package strtime

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons a format string or timestamp was rejected. A *ParseError wraps
// exactly one of these, so callers can test with errors.Is.
var (
	ErrEmptyFormat           = errors.New("empty format string")
	ErrUnterminatedDirective = errors.New("found unterminated directive at the end of the format string")
	ErrUnknownDirective      = errors.New("unknown directive")
	ErrTooShort              = errors.New("timestamp is too short to match the whole format")
	ErrTooLong               = errors.New("timestamp is too long for the given format")
	ErrLiteralMismatch       = errors.New("string literal not matched")
	ErrOutOfBounds           = errors.New("number is out of bounds")
	ErrNegative              = errors.New("number cannot be negative")
	ErrNumber                = errors.New("failed to parse number")
	ErrName                  = errors.New("failed to parse name")
	ErrZoneOffset            = errors.New("failed to parse timezone offset")
	ErrAmbiguousNumber       = errors.New("failed to parse ambiguous number")
	ErrForkLimit             = errors.New("too many attempts to resolve ambiguous numbers")
)

// reasonError carries a detailed message while still matching its sentinel.
type reasonError struct {
	msg  string
	kind error
}

func (e *reasonError) Error() string { return e.msg }
func (e *reasonError) Unwrap() error { return e.kind }

func reasonf(kind error, format string, args ...any) error {
	return &reasonError{msg: fmt.Sprintf(format, args...), kind: kind}
}

// ParseError reports a format string that failed to compile or a timestamp
// that did not match its format.
type ParseError struct {
	Format string
	// Input is the timestamp being parsed. HasInput is false for errors
	// raised while compiling a format.
	Input    string
	HasInput bool
	// Token is the token being processed when the error occurred, if any.
	Token *Token
	// Pos is the byte offset into Input, or -1.
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	switch {
	case e.Token != nil && e.HasInput:
		fmt.Fprintf(&b, "failed to parse token %q", e.Token.String())
		if e.Token.ExpandedFrom != nil {
			fmt.Fprintf(&b, " (expanded from %q)", e.Token.ExpandedFrom.String())
		}
		fmt.Fprintf(&b, " at position [%d] in timestamp %q with format %q", e.Pos, e.Input, e.Format)
	case e.Token != nil:
		fmt.Fprintf(&b, "failed to parse token %q in format %q", e.Token.String(), e.Format)
	default:
		fmt.Fprintf(&b, "failed with format %q", e.Format)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// InputError reports an unusable value passed to the package, such as a
// missing instant or a malformed name table.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

// UnknownZoneError reports a timezone specifier that could not be turned
// into an offset.
type UnknownZoneError struct {
	Zone string
	// Err is the failure reported by the zone database, if one was consulted.
	Err error
}

func (e *UnknownZoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unrecognized timezone option %q: %v", e.Zone, e.Err)
	}
	return fmt.Sprintf("unrecognized timezone option %q", e.Zone)
}

func (e *UnknownZoneError) Unwrap() error { return e.Err }
