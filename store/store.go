// Package store keeps solver verdicts in SQLite, one row per
// (written form, reading, kind).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"furiganaalign/furigana"
	"furiganaalign/model"
	"furiganaalign/store/migrations"
)

// ErrNotFound is returned by Get when no verdict is stored for the key.
var ErrNotFound = errors.New("verdict not found")

// Record is one stored verdict. Indexed and Furigana are empty unless the
// entry was solved.
type Record struct {
	Written      string          `json:"written"`
	Reading      string          `json:"reading"`
	Kind         model.Kind      `json:"kind"`
	Status       furigana.Status `json:"status"`
	Indexed      string          `json:"indexed,omitempty"`
	Furigana     string          `json:"furigana,omitempty"`
	Alternatives int             `json:"alternatives"`
	Steps        int             `json:"steps"`
	RunID        string          `json:"run_id,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewRecord converts a solver result into a storable verdict.
func NewRecord(runID string, r furigana.Result) Record {
	rec := Record{
		Written:      r.Entry.Written,
		Reading:      r.Entry.Reading,
		Kind:         r.Entry.Kind,
		Status:       r.Status,
		Alternatives: len(r.Alternatives),
		Steps:        r.Steps,
		RunID:        runID,
	}
	if r.Indexed != nil {
		rec.Indexed = r.Indexed.String()
	}
	if r.Text != nil {
		rec.Furigana = r.Text.Brackets()
	}
	return rec
}

// Store is a SQLite database of verdicts.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the database at path, creating parent directories
// and applying pending migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}
	var ups []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			ups = append(ups, entry.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

// Save inserts or replaces the verdict for the record's key.
func (s *Store) Save(ctx context.Context, r Record) error {
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO furigana (written, reading, kind, status, indexed, furigana, alternatives, steps, run_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(written, reading, kind) DO UPDATE SET
			status = excluded.status,
			indexed = excluded.indexed,
			furigana = excluded.furigana,
			alternatives = excluded.alternatives,
			steps = excluded.steps,
			run_id = excluded.run_id,
			updated_at = excluded.updated_at
	`, r.Written, r.Reading, r.Kind.String(), r.Status.String(), r.Indexed, r.Furigana,
		r.Alternatives, r.Steps, r.RunID, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving verdict: %w", err)
	}
	return nil
}

// Get returns the verdict stored for the key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, written, reading string, kind model.Kind) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT written, reading, kind, status, indexed, furigana, alternatives, steps, run_id, updated_at
		FROM furigana WHERE written = ? AND reading = ? AND kind = ?
	`, written, reading, kind.String())

	var r Record
	var kindText, statusText string
	if err := row.Scan(&r.Written, &r.Reading, &kindText, &statusText, &r.Indexed, &r.Furigana,
		&r.Alternatives, &r.Steps, &r.RunID, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning verdict: %w", err)
	}
	var err error
	if r.Kind, err = model.ParseKind(kindText); err != nil {
		return nil, err
	}
	if r.Status, err = furigana.ParseStatus(statusText); err != nil {
		return nil, err
	}
	return &r, nil
}

// CountByStatus tallies the stored verdicts.
func (s *Store) CountByStatus(ctx context.Context) (map[furigana.Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM furigana GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting verdicts: %w", err)
	}
	defer rows.Close()

	counts := make(map[furigana.Status]int)
	for rows.Next() {
		var statusText string
		var n int
		if err := rows.Scan(&statusText, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		st, err := furigana.ParseStatus(statusText)
		if err != nil {
			return nil, err
		}
		counts[st] = n
	}
	return counts, rows.Err()
}
