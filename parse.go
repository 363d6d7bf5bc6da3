package strtime

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// value is an optional parsed field.
type value struct {
	v  int64
	ok bool
}

func (v *value) set(n int64) { v.v, v.ok = n, true }

// fields accumulates what the directives of a layout have parsed.
type fields struct {
	era, century                    value
	year, yearTwoDigit              value
	isoYear, isoYearTwoDigit        value
	month, day, dayOfYear           value
	isoWeek, sundayWeek, mondayWeek value
	weekday                         value
	hour, minute, second            value
	millisecond, microsecond        value
	meridiem                        value
	offset                          value // minutes east of UTC
	epochSecond, epochMicrosecond   value
}

// state is the parser position within one Parse call. Copying a state
// forks it; only the fork counter is shared between copies.
type state struct {
	layout *Layout
	input  string
	pos    int
	// forkWidth limits the next ambiguous number to this many bytes.
	forkWidth int
	// current is the index of the token being parsed, or -1.
	current int
	cfg     *settings
	forks   *int
	fields  fields
}

// Parse reads s according to the layout and returns the instant it
// denotes. A nil o selects the defaults.
func (l *Layout) Parse(s string, o *Options) (time.Time, error) {
	cfg, err := o.settings()
	if err != nil {
		return time.Time{}, err
	}
	forks := 0
	st := &state{layout: l, input: s, current: -1, cfg: cfg, forks: &forks}
	end, err := st.run(0)
	if err != nil {
		return time.Time{}, err
	}
	return cfg.resolve(&end.fields)
}

// Parse reads s with a one-off format string.
func Parse(s, format string, o *Options) (time.Time, error) {
	l, err := Compile(format)
	if err != nil {
		return time.Time{}, err
	}
	return l.Parse(s, o)
}

func (s *state) fail(reason error) *ParseError {
	e := &ParseError{Format: s.layout.format, Input: s.input, HasInput: true, Pos: s.pos, Err: reason}
	if s.current >= 0 {
		tok := s.layout.tokens[s.current]
		e.Token = &tok
	}
	return e
}

// run parses tokens from index start to the end of the layout.
func (s *state) run(start int) (*state, error) {
	tokens := s.layout.tokens
	for i := start; i < len(tokens); i++ {
		tok := &tokens[i]
		s.current = i
		if s.pos >= len(s.input) {
			return nil, s.fail(ErrTooShort)
		}
		switch {
		case tok.Kind == TokenLiteral:
			if !strings.HasPrefix(s.input[s.pos:], tok.Literal) {
				return nil, s.fail(reasonf(ErrLiteralMismatch, "string literal %q not matched", tok.Literal))
			}
			s.pos += len(tok.Literal)
		case tok.Directive.kind == TextDirective:
			if err := s.parseText(tok); err != nil {
				return nil, err
			}
		case s.ambiguous(i):
			if s.forkWidth == 0 {
				return s.resolveAmbiguous(i)
			}
			n, err := s.number(tok, s.forkWidth)
			if err != nil {
				return nil, err
			}
			tok.Directive.store(&s.fields, n)
			s.forkWidth = 0
		default:
			n, err := s.number(tok, -1)
			if err != nil {
				return nil, err
			}
			tok.Directive.store(&s.fields, n)
		}
	}
	s.current = -1
	if s.pos < len(s.input) {
		return nil, s.fail(reasonf(ErrTooLong, "timestamp is too long for the given format, text remaining %q", s.input[s.pos:]))
	}
	return s, nil
}

// ambiguous reports whether nothing delimits the number of token i from
// what follows it.
func (s *state) ambiguous(i int) bool {
	tokens := s.layout.tokens
	if i+1 >= len(tokens) {
		return false
	}
	next := &tokens[i+1]
	if next.Kind == TokenLiteral {
		return isDigit(next.Literal[0])
	}
	return next.numeric()
}

// resolveAmbiguous tries successive widths for the number of token i and
// returns the first fork that parses the rest of the input completely.
func (s *state) resolveAmbiguous(i int) (*state, error) {
	likely := s.layout.tokens[i].Directive.likely
	var tooShort error
	if likely > 0 {
		end, err := s.fork(i, likely)
		if err == nil || errors.Is(err, ErrForkLimit) {
			return end, err
		}
		if errors.Is(err, ErrTooShort) {
			tooShort = err
		}
	}
	for w := 1; w < len(s.input)-s.pos; w++ {
		if w == likely {
			continue
		}
		end, err := s.fork(i, w)
		if err == nil || errors.Is(err, ErrForkLimit) {
			return end, err
		}
		if errors.Is(err, ErrTooShort) {
			tooShort = err
		}
	}
	if tooShort != nil {
		return nil, tooShort
	}
	return nil, s.fail(ErrAmbiguousNumber)
}

func (s *state) fork(i, width int) (*state, error) {
	*s.forks++
	if *s.forks > s.cfg.maxForks {
		return nil, s.fail(reasonf(ErrForkLimit, "gave up after %d attempts to resolve ambiguous numbers", s.cfg.maxForks))
	}
	f := *s
	f.forkWidth = width
	end, err := f.run(i)
	s.debug("fork",
		slog.String("token", s.layout.tokens[i].String()),
		slog.Int("pos", s.pos),
		slog.Int("width", width),
		slog.Bool("ok", err == nil))
	return end, err
}

func (s *state) debug(msg string, attrs ...slog.Attr) {
	l := s.cfg.logger
	if l == nil || !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// number reads an optionally signed decimal number of at most limit bytes,
// leading spaces included. A negative limit means unlimited.
func (s *state) number(tok *Token, limit int) (int64, error) {
	d := tok.Directive
	negative := s.input[s.pos] == '-'
	if negative {
		if !d.negative {
			return 0, s.fail(reasonf(ErrNegative, "number cannot be negative"))
		}
		s.pos++
	}
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] == ' ' {
		s.pos++
	}
	digits := s.pos
	for s.pos < len(s.input) && (limit < 0 || s.pos-start < limit) && isDigit(s.input[s.pos]) {
		s.pos++
	}
	if s.pos == digits {
		return 0, s.fail(reasonf(ErrNumber, "failed to parse number"))
	}
	n, err := strconv.ParseInt(s.input[digits:s.pos], 10, 64)
	if err != nil {
		return 0, s.fail(reasonf(ErrNumber, "failed to parse number %q", s.input[digits:s.pos]))
	}
	if !d.inBounds(n) {
		return 0, s.fail(reasonf(ErrOutOfBounds, "number [%d] is out of bounds %s", n, d.boundsString()))
	}
	if negative {
		n = -n
	}
	if tok.Modifier == ':' {
		if err := s.ordinalSuffix(n); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// ordinalSuffix consumes whatever the ordinal transform appends to n.
func (s *state) ordinalSuffix(n int64) error {
	num := strconv.FormatInt(n, 10)
	suffix := strings.TrimPrefix(s.cfg.ordinal(int(n)), num)
	size, ok := prefixFold(s.input[s.pos:], suffix)
	if !ok {
		return s.fail(reasonf(ErrName, "ordinal suffix %q not matched", suffix))
	}
	s.pos += size
	return nil
}

func (s *state) parseText(tok *Token) error {
	f := &s.fields
	switch tok.Directive.field {
	case fieldShortWeekday, fieldLongWeekday:
		i, ok := s.matchName(s.cfg.weekdayNames)
		if !ok {
			return s.fail(reasonf(ErrName, "failed to parse weekday name"))
		}
		f.weekday.set(int64(i % 7))
	case fieldShortMonth, fieldLongMonth:
		i, ok := s.matchName(s.cfg.monthNames)
		if !ok {
			return s.fail(reasonf(ErrName, "failed to parse month name"))
		}
		f.month.set(int64(i%12 + 1))
	case fieldMeridiem, fieldMeridiemLower:
		i, ok := s.matchName(s.cfg.meridiems)
		if !ok {
			return s.fail(reasonf(ErrName, "failed to parse AM/PM"))
		}
		f.meridiem.set(int64(i % 2))
	case fieldEra:
		i, ok := s.matchName(s.cfg.eras)
		if !ok {
			return s.fail(reasonf(ErrName, "failed to parse era name"))
		}
		f.era.set(int64(i % 2))
	case fieldZone:
		if i, ok := s.matchName(s.cfg.zoneNameList); ok {
			hours := s.cfg.zoneNames[s.cfg.zoneNameList[i]]
			f.offset.set(int64(math.Floor(60 * hours)))
			return nil
		}
		fallthrough
	case fieldOffset:
		m, err := s.offset()
		if err != nil {
			return err
		}
		f.offset.set(int64(m))
	}
	return nil
}

// matchName consumes the longest candidate found at the cursor, ignoring
// case, and returns its index. Of equally long matches the last one wins.
func (s *state) matchName(candidates []string) (int, bool) {
	best, bestSize := -1, 0
	for i, c := range candidates {
		if c == "" {
			continue
		}
		if size, ok := prefixFold(s.input[s.pos:], c); ok && size >= bestSize {
			best, bestSize = i, size
		}
	}
	if best < 0 {
		return 0, false
	}
	s.pos += bestSize
	return best, true
}

// prefixFold reports whether s starts with prefix under simple case
// folding and returns the number of bytes of s that matched.
func prefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, want := range prefix {
		got, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !equalFold(got, want) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// offset reads ±HHMM or ±HH:MM. A '±' sign is read as '+'.
func (s *state) offset() (int, error) {
	start := s.pos
	sign, size := utf8.DecodeRuneInString(s.input[s.pos:])
	p := s.pos + size
	hours, okHours := twoDigits(s.input, p)
	var minutes int
	var okMinutes bool
	if p+2 < len(s.input) && s.input[p+2] == ':' {
		minutes, okMinutes = twoDigits(s.input, p+3)
		s.pos = min(p+5, len(s.input))
	} else {
		minutes, okMinutes = twoDigits(s.input, p+2)
		s.pos = min(p+4, len(s.input))
	}
	if !okHours || !okMinutes {
		return 0, s.fail(reasonf(ErrZoneOffset, "failed to parse timezone offset from string %q", s.input[start:s.pos]))
	}
	m := 60*hours + minutes
	switch sign {
	case '+', '±':
		return m, nil
	case '-':
		return -m, nil
	}
	return 0, s.fail(reasonf(ErrZoneOffset, "unknown timezone offset sign %q", string(sign)))
}

func twoDigits(s string, i int) (int, bool) {
	if i+2 > len(s) || !isDigit(s[i]) || !isDigit(s[i+1]) {
		return 0, false
	}
	return int(s[i]-'0')*10 + int(s[i+1]-'0'), true
}
