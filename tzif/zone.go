package tzif

import (
	"fmt"
	"sort"
)

// Zone answers offset queries for one decoded TZif file.
type Zone struct {
	data Data
	rule *Rule
}

// NewZone validates d and parses its footer.
func NewZone(d Data) (*Zone, error) {
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("invalid tzif data: %w", err)
	}
	z := &Zone{data: d}
	if d.Footer != "" {
		r, err := ParseRule(d.Footer)
		if err != nil {
			return nil, err
		}
		z.rule = &r
	}
	return z, nil
}

// Data returns the decoded file.
func (z *Zone) Data() Data {
	return z.data
}

// Lookup returns the local time type in effect at the Unix time unix.
// Before the first transition the first local time type applies. After the
// last transition the footer rule applies, if there is one.
func (z *Zone) Lookup(unix int64) LocalTime {
	tr := z.data.Transitions
	if len(tr) == 0 || unix < tr[0] {
		if len(tr) == 0 && z.rule != nil {
			return z.rule.Lookup(unix)
		}
		return z.local(0)
	}
	if unix >= tr[len(tr)-1] && z.rule != nil {
		return z.rule.Lookup(unix)
	}
	// Index of the last transition at or before unix.
	i := sort.Search(len(tr), func(i int) bool { return tr[i] > unix }) - 1
	return z.local(int(z.data.TransitionTypes[i]))
}

func (z *Zone) local(i int) LocalTime {
	t := z.data.Types[i]
	return LocalTime{Offset: int(t.Utoff), Abbrev: z.data.Designation(i), DST: t.Dst}
}
