package strtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ZoneDatabase resolves IANA zone names such as "Europe/Berlin".
// Offsets are minutes east of UTC.
type ZoneDatabase interface {
	// OffsetForInstant returns the offset in effect at the instant t.
	OffsetForInstant(zone string, t time.Time) (int, error)
	// OffsetForLocal returns the offset that applies to the wall-clock
	// time wall, whose fields are read as if it were UTC.
	OffsetForLocal(zone string, wall time.Time) (int, error)
}

type zoneKind int

const (
	zoneUTC zoneKind = iota
	zoneFixed
	zoneLocal
	zoneAbbrev
	zoneIANA
)

// Zone selects the offset used when formatting and the offset assumed when
// a parsed timestamp carries none. The zero Zone is UTC.
type Zone struct {
	kind    zoneKind
	minutes int
	name    string
}

// UTC is the zero offset.
var UTC = Zone{}

// FixedZone returns a constant offset of minutes east of UTC.
func FixedZone(minutes int) Zone {
	return Zone{kind: zoneFixed, minutes: minutes}
}

// HoursZone returns a constant offset given in hours, rounded down to the
// minute.
func HoursZone(hours float64) Zone {
	return FixedZone(int(math.Floor(60 * hours)))
}

// LocalZone follows the system timezone.
func LocalZone() Zone {
	return Zone{kind: zoneLocal}
}

// NamedZone interprets name as "local", an Etc/GMT±N zone, an IANA zone
// name or a timezone abbreviation, in that order.
func NamedZone(name string) (Zone, error) {
	switch {
	case name == "local":
		return LocalZone(), nil
	case strings.HasPrefix(name, "Etc/GMT"):
		// POSIX style: Etc/GMT+5 is five hours west of Greenwich.
		rest := strings.TrimPrefix(name, "Etc/GMT")
		if rest == "" {
			return UTC, nil
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Zone{}, &UnknownZoneError{Zone: name}
		}
		return FixedZone(-60 * n), nil
	case strings.Contains(name, "/"):
		return Zone{kind: zoneIANA, name: name}, nil
	case name == "":
		return Zone{}, &UnknownZoneError{Zone: name}
	}
	return Zone{kind: zoneAbbrev, name: name}, nil
}

// ZoneOf converts a dynamic timezone option into a Zone:
//
//   - nil is UTC;
//   - numbers within [-16, 16] are hours, other numbers are minutes;
//   - strings are handled by NamedZone;
//   - a Zone is returned unchanged.
//
// Abbreviations are looked up when the zone is used, so that
// Options.ZoneNames can supply them.
func ZoneOf(v any) (Zone, error) {
	switch x := v.(type) {
	case nil:
		return UTC, nil
	case Zone:
		return x, nil
	case string:
		return NamedZone(x)
	case int:
		return intZone(int64(x)), nil
	case int8:
		return intZone(int64(x)), nil
	case int16:
		return intZone(int64(x)), nil
	case int32:
		return intZone(int64(x)), nil
	case int64:
		return intZone(x), nil
	case uint:
		return intZone(int64(x)), nil
	case uint8:
		return intZone(int64(x)), nil
	case uint16:
		return intZone(int64(x)), nil
	case uint32:
		return intZone(int64(x)), nil
	case float32:
		return floatZone(float64(x))
	case float64:
		return floatZone(x)
	}
	return Zone{}, &UnknownZoneError{Zone: fmt.Sprint(v)}
}

func intZone(n int64) Zone {
	if n >= -16 && n <= 16 {
		return FixedZone(int(60 * n))
	}
	return FixedZone(int(n))
}

func floatZone(f float64) (Zone, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Zone{}, &UnknownZoneError{Zone: strconv.FormatFloat(f, 'g', -1, 64)}
	case f >= -16 && f <= 16:
		return HoursZone(f), nil
	}
	return FixedZone(int(math.Floor(f))), nil
}

func (z Zone) String() string {
	switch z.kind {
	case zoneFixed:
		return writeOffset(z.minutes, true)
	case zoneLocal:
		return "local"
	case zoneAbbrev, zoneIANA:
		return z.name
	}
	return "UTC"
}

// offsetForInstant returns the offset to format t with.
func (s *settings) offsetForInstant(t time.Time) (int, error) {
	z := s.zone
	switch z.kind {
	case zoneFixed:
		return z.minutes, nil
	case zoneLocal:
		_, sec := t.In(time.Local).Zone()
		return int(floorDiv(int64(sec), 60)), nil
	case zoneAbbrev:
		return s.abbrevOffset(z.name)
	case zoneIANA:
		m, err := s.zones.OffsetForInstant(z.name, t)
		if err != nil {
			return 0, &UnknownZoneError{Zone: z.name, Err: err}
		}
		return m, nil
	}
	return 0, nil
}

// offsetForLocal returns the offset of the zone at a wall-clock time.
func (s *settings) offsetForLocal(wall time.Time) (int, error) {
	z := s.zone
	switch z.kind {
	case zoneLocal:
		local := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), time.Local)
		_, sec := local.Zone()
		return int(floorDiv(int64(sec), 60)), nil
	case zoneIANA:
		m, err := s.zones.OffsetForLocal(z.name, wall)
		if err != nil {
			return 0, &UnknownZoneError{Zone: z.name, Err: err}
		}
		return m, nil
	}
	return s.offsetForInstant(wall)
}

func (s *settings) abbrevOffset(name string) (int, error) {
	hours, ok := s.zoneNames[upper(name)]
	if !ok {
		return 0, &UnknownZoneError{Zone: name}
	}
	return int(math.Floor(60 * hours)), nil
}
