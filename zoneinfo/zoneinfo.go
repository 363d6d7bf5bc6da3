// Package zoneinfo loads IANA zones from a compiled zoneinfo tree and
// answers UTC offset queries for them.
package zoneinfo

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/ngrash/go-strtime/tzif"
)

// Database is a lazily populated cache of zones read from a zoneinfo
// tree such as /usr/share/zoneinfo. It is safe for concurrent use.
type Database struct {
	// Dir is the root of the zoneinfo tree. It is ignored when FS is set.
	Dir string
	// FS, if set, is read instead of Dir.
	FS fs.FS

	mu    sync.RWMutex
	zones map[string]*tzif.Zone
}

// DefaultDir is used when neither $ZONEINFO nor Database.Dir is set.
const DefaultDir = "/usr/share/zoneinfo"

// Default reads from $ZONEINFO, falling back to DefaultDir.
var Default = &Database{Dir: defaultDir()}

func defaultDir() string {
	if dir := os.Getenv("ZONEINFO"); dir != "" {
		return dir
	}
	return DefaultDir
}

// New returns a database reading from dir.
func New(dir string) *Database {
	return &Database{Dir: dir}
}

func (db *Database) fsys() fs.FS {
	if db.FS != nil {
		return db.FS
	}
	dir := db.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return os.DirFS(dir)
}

// Load returns the zone called name, for example "Europe/Berlin".
func (db *Database) Load(name string) (*tzif.Zone, error) {
	db.mu.RLock()
	z, ok := db.zones[name]
	db.mu.RUnlock()
	if ok {
		return z, nil
	}

	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("invalid zone name %q", name)
	}
	f, err := db.fsys().Open(name)
	if err != nil {
		return nil, fmt.Errorf("open zone %q: %w", name, err)
	}
	defer f.Close()
	d, err := tzif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode zone %q: %w", name, err)
	}
	z, err = tzif.NewZone(d)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", name, err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if db.zones == nil {
		db.zones = make(map[string]*tzif.Zone)
	}
	db.zones[name] = z
	return z, nil
}

// Lookup returns the local time type of zone at t.
func (db *Database) Lookup(zone string, t time.Time) (tzif.LocalTime, error) {
	z, err := db.Load(zone)
	if err != nil {
		return tzif.LocalTime{}, err
	}
	return z.Lookup(t.Unix()), nil
}

// OffsetForInstant returns the offset of zone at t in minutes east of UTC.
func (db *Database) OffsetForInstant(zone string, t time.Time) (int, error) {
	lt, err := db.Lookup(zone, t)
	if err != nil {
		return 0, err
	}
	return minutes(lt.Offset), nil
}

// OffsetForLocal returns the offset in minutes east of UTC that zone has
// when its clocks show the wall time held in wall's UTC components. Wall
// times skipped by a forward transition take the offset after it; repeated
// wall times take the offset before it.
func (db *Database) OffsetForLocal(zone string, wall time.Time) (int, error) {
	z, err := db.Load(zone)
	if err != nil {
		return 0, err
	}
	w := wall.Unix()
	first := z.Lookup(w).Offset
	second := z.Lookup(w - int64(first)).Offset
	return minutes(second), nil
}

func minutes(seconds int) int {
	m := seconds / 60
	if seconds%60 != 0 && seconds < 0 {
		m--
	}
	return m
}
