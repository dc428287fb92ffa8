// Package journal keeps an in-memory SQLite log of what happened during a
// dashboard session. Nothing is written to disk; the log is gone when the
// session ends.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/mindfulmeet/internal/constants"
)

// timeLayout is fixed-width so that timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS score_changes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	at         TEXT    NOT NULL,
	source     TEXT    NOT NULL,
	delta      INTEGER NOT NULL,
	score      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	at         TEXT NOT NULL,
	severity   TEXT NOT NULL,
	text       TEXT NOT NULL
);
`

// Kind distinguishes journal entries.
type Kind string

const (
	KindScore        Kind = "score"
	KindNotification Kind = "notification"
)

// Entry is one line of the recent-activity feed.
type Entry struct {
	At       time.Time
	Kind     Kind
	Text     string
	Delta    int
	Score    int
	Severity constants.Severity
}

// Totals summarises the score changes of the session.
type Totals struct {
	Changes int
	Gained  int
	Lost    int
}

// Net is the sum of all requested deltas.
func (t Totals) Net() int {
	return t.Gained - t.Lost
}

type Store struct {
	db *sql.DB
}

// Open creates a fresh in-memory journal.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// RecordScore appends a score change. delta is the change after clamping.
func (s *Store) RecordScore(at time.Time, source string, delta, score int) error {
	_, err := s.db.Exec(`
		INSERT INTO score_changes (at, source, delta, score)
		VALUES (?, ?, ?, ?)
	`, at.UTC().Format(timeLayout), source, delta, score)
	if err != nil {
		return fmt.Errorf("failed to record score change: %w", err)
	}
	return nil
}

// RecordNotification appends a toast.
func (s *Store) RecordNotification(id string, at time.Time, severity constants.Severity, text string) error {
	_, err := s.db.Exec(`
		INSERT INTO notifications (id, at, severity, text)
		VALUES (?, ?, ?, ?)
	`, id, at.UTC().Format(timeLayout), string(severity), text)
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

// Totals sums every recorded score change.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN delta > 0 THEN delta ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN delta < 0 THEN -delta ELSE 0 END), 0)
		FROM score_changes
	`).Scan(&t.Changes, &t.Gained, &t.Lost)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to total score changes: %w", err)
	}
	return t, nil
}

// Recent returns up to limit entries, newest first. At equal timestamps a
// toast sorts ahead of the score change that caused it.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT at, kind, text, delta, score, severity FROM (
			SELECT at, 'score' AS kind, source AS text, delta, score, '' AS severity, id AS seq, 0 AS src
			FROM score_changes
			UNION ALL
			SELECT at, 'notification', text, 0, 0, severity, rowid, 1
			FROM notifications
		)
		ORDER BY at DESC, src DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var atStr, kind, severity string
		if err := rows.Scan(&atStr, &kind, &e.Text, &e.Delta, &e.Score, &severity); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		at, err := time.Parse(timeLayout, atStr)
		if err != nil {
			return nil, fmt.Errorf("invalid journal timestamp %q: %w", atStr, err)
		}
		e.At = at
		e.Kind = Kind(kind)
		e.Severity = constants.Severity(severity)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
