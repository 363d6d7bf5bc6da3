// Package tzif reads and writes compiled timezone files in the Time Zone
// Information Format of RFC 8536.
// https://datatracker.ietf.org/doc/html/rfc8536
package tzif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// All multi-octet integers are big-endian two's complement.
var order = binary.BigEndian

// Version identifies the file format. V1 files use 32-bit times and carry
// no footer; V2 and later append a 64-bit copy of the data and a footer.
type Version byte

const (
	V1 Version = 0x00
	V2 Version = '2'
	V3 Version = '3'
	V4 Version = '4'
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V2, V3, V4:
		return "V" + string(v)
	default:
		return fmt.Sprintf("<undefined version (%d)>", v)
	}
}

// Magic starts every TZif header.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// header follows Magic:
//
//	+---------------+---+
//	|  magic    (4) |ver|
//	+---------------+---+---------------------------------------+
//	|           [unused - reserved for future use] (15)         |
//	+---------------+---------------+---------------+-----------+
//	|  isutcnt  (4) |  isstdcnt (4) |  leapcnt  (4) |
//	+---------------+---------------+---------------+
//	|  timecnt  (4) |  typecnt  (4) |  charcnt  (4) |
//	+---------------+---------------+---------------+
type header struct {
	Version  Version
	Reserved [15]byte
	Isutcnt  uint32
	Isstdcnt uint32
	Leapcnt  uint32
	Timecnt  uint32
	Typecnt  uint32
	Charcnt  uint32
}

// blockSize is the length of the data block described by h.
func (h header) blockSize(timeSize int) int64 {
	return int64(h.Timecnt)*int64(timeSize) +
		int64(h.Timecnt) +
		int64(h.Typecnt)*6 +
		int64(h.Charcnt) +
		int64(h.Leapcnt)*int64(timeSize+4) +
		int64(h.Isstdcnt) +
		int64(h.Isutcnt)
}

func readHeader(r io.Reader) (header, error) {
	var h header
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return h, fmt.Errorf("reading magic: %w", err)
	}
	if magic != Magic {
		return h, fmt.Errorf("invalid magic: %q", magic[:])
	}
	if err := binary.Read(r, order, &h); err != nil {
		return h, fmt.Errorf("reading header: %w", err)
	}
	return h, nil
}

func (h header) write(w io.Writer) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	return binary.Write(w, order, h)
}

// LocalTimeType describes one local time type of a zone.
type LocalTimeType struct {
	// Utoff is the offset in seconds east of UTC.
	Utoff int32
	// Dst reports whether the type is daylight saving time.
	Dst bool
	// Idx indexes the type's designation in Data.Designations.
	Idx uint8
}

// LeapSecond is a leap second record.
type LeapSecond struct {
	Occurrence int64
	Correction int32
}

// Data is the content of a TZif file. For V2 and later files it holds the
// 64-bit data block; the V1 block is read but not kept.
type Data struct {
	Version         Version
	Transitions     []int64
	TransitionTypes []uint8
	Types           []LocalTimeType
	// Designations holds NUL-terminated abbreviations such as "CET\x00".
	Designations []byte
	Leaps        []LeapSecond
	StdWall      []bool
	UTLocal      []bool
	// Footer is the POSIX TZ string of V2+ files, without newlines.
	Footer string
}

// Designation returns the abbreviation of local time type i.
func (d Data) Designation(i int) string {
	if i < 0 || i >= len(d.Types) {
		return ""
	}
	b := d.Designations[min(int(d.Types[i].Idx), len(d.Designations)):]
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return string(b)
}

// Decode reads a TZif file.
func Decode(r io.Reader) (Data, error) {
	h, err := readHeader(r)
	if err != nil {
		return Data{}, fmt.Errorf("read v1 header: %w", err)
	}
	if h.Version == V1 {
		d, err := readBlock(r, h, 4)
		if err != nil {
			return d, fmt.Errorf("read v1 data block: %w", err)
		}
		return d, nil
	}

	if _, err := io.CopyN(io.Discard, r, h.blockSize(4)); err != nil {
		return Data{}, fmt.Errorf("skip v1 data block: %w", err)
	}
	h, err = readHeader(r)
	if err != nil {
		return Data{}, fmt.Errorf("read v2 header: %w", err)
	}
	d, err := readBlock(r, h, 8)
	if err != nil {
		return d, fmt.Errorf("read v2 data block: %w", err)
	}
	d.Footer, err = readFooter(r)
	if err != nil {
		return d, fmt.Errorf("read footer: %w", err)
	}
	return d, nil
}

// readBlock reads a data block whose times are timeSize octets wide.
func readBlock(r io.Reader, h header, timeSize int) (Data, error) {
	d := Data{Version: h.Version}
	readTime := func() (int64, error) {
		if timeSize == 4 {
			var t int32
			err := binary.Read(r, order, &t)
			return int64(t), err
		}
		var t int64
		err := binary.Read(r, order, &t)
		return t, err
	}

	d.Transitions = make([]int64, h.Timecnt)
	for i := range d.Transitions {
		t, err := readTime()
		if err != nil {
			return d, fmt.Errorf("reading transition times: %w", err)
		}
		d.Transitions[i] = t
	}
	d.TransitionTypes = make([]uint8, h.Timecnt)
	if _, err := io.ReadFull(r, d.TransitionTypes); err != nil {
		return d, fmt.Errorf("reading transition types: %w", err)
	}
	d.Types = make([]LocalTimeType, h.Typecnt)
	for i := range d.Types {
		var rec struct {
			Utoff int32
			Dst   uint8
			Idx   uint8
		}
		if err := binary.Read(r, order, &rec); err != nil {
			return d, fmt.Errorf("reading local time type records: %w", err)
		}
		d.Types[i] = LocalTimeType{Utoff: rec.Utoff, Dst: rec.Dst != 0, Idx: rec.Idx}
	}
	d.Designations = make([]byte, h.Charcnt)
	if _, err := io.ReadFull(r, d.Designations); err != nil {
		return d, fmt.Errorf("reading time zone designations: %w", err)
	}
	d.Leaps = make([]LeapSecond, h.Leapcnt)
	for i := range d.Leaps {
		occ, err := readTime()
		if err != nil {
			return d, fmt.Errorf("reading leap second records: %w", err)
		}
		var corr int32
		if err := binary.Read(r, order, &corr); err != nil {
			return d, fmt.Errorf("reading leap second records: %w", err)
		}
		d.Leaps[i] = LeapSecond{Occurrence: occ, Correction: corr}
	}
	var err error
	if d.StdWall, err = readIndicators(r, h.Isstdcnt); err != nil {
		return d, fmt.Errorf("reading standard/wall indicators: %w", err)
	}
	if d.UTLocal, err = readIndicators(r, h.Isutcnt); err != nil {
		return d, fmt.Errorf("reading UT/local indicators: %w", err)
	}
	return d, nil
}

func readIndicators(r io.Reader, n uint32) ([]bool, error) {
	raw := make([]byte, n)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	out := make([]bool, n)
	for i, b := range raw {
		out[i] = b != 0
	}
	return out, nil
}

// readFooter reads "\n" TZ-string "\n".
func readFooter(r io.Reader) (string, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", fmt.Errorf("reading footer start: %w", err)
	}
	if b[0] != '\n' {
		return "", fmt.Errorf("footer must start with newline, got %q", b[0])
	}
	var tz []byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", fmt.Errorf("reading TZ string: %w", err)
		}
		if b[0] == '\n' {
			return string(tz), nil
		}
		tz = append(tz, b[0])
	}
}

// Encode writes d as a TZif file. Files of version V2 and later carry a
// V1 block with the same local time types and no transitions, which
// version 1 readers treat as a fixed zone.
func Encode(w io.Writer, d Data) error {
	v1 := header{
		Version: d.Version,
		Typecnt: uint32(len(d.Types)),
		Charcnt: uint32(len(d.Designations)),
	}
	full := header{
		Version:  d.Version,
		Isutcnt:  uint32(len(d.UTLocal)),
		Isstdcnt: uint32(len(d.StdWall)),
		Leapcnt:  uint32(len(d.Leaps)),
		Timecnt:  uint32(len(d.Transitions)),
		Typecnt:  uint32(len(d.Types)),
		Charcnt:  uint32(len(d.Designations)),
	}
	if d.Version == V1 {
		if err := full.write(w); err != nil {
			return fmt.Errorf("write v1 header: %w", err)
		}
		if err := writeBlock(w, d, 4); err != nil {
			return fmt.Errorf("write v1 data block: %w", err)
		}
		return nil
	}

	if err := v1.write(w); err != nil {
		return fmt.Errorf("write v1 header: %w", err)
	}
	if err := writeBlock(w, Data{Types: d.Types, Designations: d.Designations}, 4); err != nil {
		return fmt.Errorf("write v1 data block: %w", err)
	}
	if err := full.write(w); err != nil {
		return fmt.Errorf("write v2 header: %w", err)
	}
	if err := writeBlock(w, d, 8); err != nil {
		return fmt.Errorf("write v2 data block: %w", err)
	}
	if _, err := io.WriteString(w, "\n"+d.Footer+"\n"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeBlock(w io.Writer, d Data, timeSize int) error {
	writeTime := func(t int64) error {
		if timeSize == 4 {
			return binary.Write(w, order, int32(t))
		}
		return binary.Write(w, order, t)
	}
	for _, t := range d.Transitions {
		if err := writeTime(t); err != nil {
			return err
		}
	}
	if _, err := w.Write(d.TransitionTypes); err != nil {
		return err
	}
	for _, t := range d.Types {
		var dst uint8
		if t.Dst {
			dst = 1
		}
		if err := binary.Write(w, order, struct {
			Utoff int32
			Dst   uint8
			Idx   uint8
		}{t.Utoff, dst, t.Idx}); err != nil {
			return err
		}
	}
	if _, err := w.Write(d.Designations); err != nil {
		return err
	}
	for _, l := range d.Leaps {
		if err := writeTime(l.Occurrence); err != nil {
			return err
		}
		if err := binary.Write(w, order, l.Correction); err != nil {
			return err
		}
	}
	for _, ind := range [][]bool{d.StdWall, d.UTLocal} {
		for _, b := range ind {
			var v uint8
			if b {
				v = 1
			}
			if _, err := w.Write([]byte{v}); err != nil {
				return err
			}
		}
	}
	return nil
}
