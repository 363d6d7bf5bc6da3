package tzif

import (
	"errors"
	"fmt"
)

// Validate checks d against the consistency rules of RFC 8536 section 3.
// All problems found are reported together.
func Validate(d Data) error {
	var errs []error

	switch d.Version {
	case V1, V2, V3, V4:
	default:
		errs = append(errs, fmt.Errorf("invalid version: %v", d.Version))
	}

	typecnt := len(d.Types)
	if typecnt == 0 {
		errs = append(errs, fmt.Errorf("invalid typecnt: must not be zero"))
	}
	if typecnt > 256 {
		errs = append(errs, fmt.Errorf("invalid typecnt (%d): must not exceed 256", typecnt))
	}
	if n := len(d.UTLocal); n != 0 && n != typecnt {
		errs = append(errs, fmt.Errorf("invalid isutcnt (%d): must be 0 or equal to typecnt (%d)", n, typecnt))
	}
	if n := len(d.StdWall); n != 0 && n != typecnt {
		errs = append(errs, fmt.Errorf("invalid isstdcnt (%d): must be 0 or equal to typecnt (%d)", n, typecnt))
	}
	for i, ut := range d.UTLocal {
		if ut && i < len(d.StdWall) && !d.StdWall[i] {
			errs = append(errs, fmt.Errorf("invalid indicators for type %d: UT time must also be standard time", i))
		}
	}

	if times, types := len(d.Transitions), len(d.TransitionTypes); times != types {
		errs = append(errs, fmt.Errorf("inconsistent transitions: transition times = %d, transition types = %d", times, types))
	}
	for i := 1; i < len(d.Transitions); i++ {
		if d.Transitions[i] <= d.Transitions[i-1] {
			errs = append(errs, fmt.Errorf("invalid transition times: time %d (%d) is not after time %d (%d)", i, d.Transitions[i], i-1, d.Transitions[i-1]))
			break
		}
	}
	for i, idx := range d.TransitionTypes {
		if int(idx) >= typecnt {
			errs = append(errs, fmt.Errorf("invalid transition type %d at index %d: typecnt is %d", idx, i, typecnt))
		}
	}

	if len(d.Designations) == 0 {
		errs = append(errs, fmt.Errorf("invalid charcnt: must not be zero"))
	} else if d.Designations[len(d.Designations)-1] != 0 {
		errs = append(errs, fmt.Errorf("invalid time zone designations: missing null terminator"))
	}
	for i, t := range d.Types {
		if t.Utoff == -1<<31 {
			errs = append(errs, fmt.Errorf("invalid utoff for type %d: must not be -2**31", i))
		}
		if int(t.Idx) >= len(d.Designations) {
			errs = append(errs, fmt.Errorf("invalid designation index %d for type %d: charcnt is %d", t.Idx, i, len(d.Designations)))
		}
	}

	for i := 1; i < len(d.Leaps); i++ {
		if d.Leaps[i].Occurrence <= d.Leaps[i-1].Occurrence {
			errs = append(errs, fmt.Errorf("invalid leap second records: occurrence %d is not after occurrence %d", i, i-1))
			break
		}
	}

	if d.Version == V1 && d.Footer != "" {
		errs = append(errs, fmt.Errorf("invalid footer: v1 files have no footer"))
	}
	if d.Footer != "" {
		if _, err := ParseRule(d.Footer); err != nil {
			errs = append(errs, fmt.Errorf("invalid footer: %w", err))
		}
	}

	return errors.Join(errs...)
}
