// Package journal persists observed strokes to SQLite for later inspection.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"interceptd/pkg/interception"
)

const schema = `
CREATE TABLE IF NOT EXISTS strokes (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    at_ns       INTEGER NOT NULL,
    device      INTEGER NOT NULL,
    class       TEXT NOT NULL,
    code        INTEGER,
    state       INTEGER NOT NULL,
    flags       INTEGER,
    rolling     INTEGER,
    x           INTEGER,
    y           INTEGER,
    information INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_strokes_at ON strokes(at_ns);
CREATE INDEX IF NOT EXISTS idx_strokes_device ON strokes(device, at_ns);
`

// Entry is one journaled stroke.
type Entry struct {
	ID          int64
	At          time.Time
	Device      interception.Device
	Class       string // "keyboard" or "mouse"
	Code        uint16
	State       uint16
	Flags       uint16
	Rolling     int16
	X           int32
	Y           int32
	Information uint32
}

// Journal is an append-only stroke log backed by SQLite.
type Journal struct {
	db     *sql.DB
	insert *sql.Stmt
}

// Open creates or opens the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	insert, err := db.Prepare(`
		INSERT INTO strokes (at_ns, device, class, code, state, flags, rolling, x, y, information)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare journal insert: %w", err)
	}

	return &Journal{db: db, insert: insert}, nil
}

// Record appends one stroke observed on device.
func (j *Journal) Record(device interception.Device, s interception.Stroke) error {
	now := time.Now().UnixNano()
	switch s := s.(type) {
	case interception.KeyStroke:
		_, err := j.insert.Exec(now, device, "keyboard",
			uint16(s.Code), uint16(s.State), nil, nil, nil, nil, s.Information)
		if err != nil {
			return fmt.Errorf("journal key stroke: %w", err)
		}
	case interception.MouseStroke:
		_, err := j.insert.Exec(now, device, "mouse",
			nil, uint16(s.State), uint16(s.Flags), s.Rolling, s.X, s.Y, s.Information)
		if err != nil {
			return fmt.Errorf("journal mouse stroke: %w", err)
		}
	}
	return nil
}

// Count returns the number of journaled strokes.
func (j *Journal) Count() (int64, error) {
	var n int64
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM strokes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal strokes: %w", err)
	}
	return n, nil
}

// Tail returns the most recent limit entries, newest first.
func (j *Journal) Tail(limit int) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, at_ns, device, class,
		       COALESCE(code, 0), state, COALESCE(flags, 0),
		       COALESCE(rolling, 0), COALESCE(x, 0), COALESCE(y, 0), information
		FROM strokes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var atNS int64
		if err := rows.Scan(&e.ID, &atNS, &e.Device, &e.Class,
			&e.Code, &e.State, &e.Flags, &e.Rolling, &e.X, &e.Y, &e.Information); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.At = time.Unix(0, atNS)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close flushes and closes the database.
func (j *Journal) Close() error {
	j.insert.Close()
	return j.db.Close()
}
