package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/kinolist"
	"github.com/google/uuid"
)

// Ext is the file extension of database files.
const Ext = "db"

// Compile-time interface verification.
var _ kinolist.RecordSink = (*Sink)(nil)

// Sink implements kinolist.RecordSink using SQLite.
// Each WriteTable call is stored as a new run; earlier runs are kept.
type Sink struct {
	db *DB

	// Now returns the run timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewSink creates a new Sink.
func NewSink(db *DB) *Sink {
	return &Sink{db: db, Now: time.Now}
}

// WriteTable stores t as a new run in a single transaction.
// Absent fields are stored as NULL.
func (s *Sink) WriteTable(ctx context.Context, t *kinolist.Table) error {
	if t.Name == "" {
		return kinolist.Errorf(kinolist.EINVALID, "table name required")
	}
	for i, r := range t.Records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	runID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, list, layout, created_at)
		VALUES (?, ?, ?, ?)
	`, runID, t.Name, string(t.Layout), s.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO movies (run_id, position, title, year, duration, director, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range t.Records {
		if _, err := stmt.ExecContext(ctx, runID, i,
			r.Title, nullable(r.Year), nullable(r.Duration), nullable(r.Director), nullable(r.DateAdded)); err != nil {
			return fmt.Errorf("insert movie %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// FindTable returns the most recently stored table for list.
// Returns ENOTFOUND if the list was never stored.
func (s *Sink) FindTable(ctx context.Context, list string) (*kinolist.Table, error) {
	var runID, layout string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, layout FROM runs
		WHERE list = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, list).Scan(&runID, &layout)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kinolist.Errorf(kinolist.ENOTFOUND, "list %q not found", list)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, year, duration, director, date_added
		FROM movies
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := &kinolist.Table{Name: list, Layout: kinolist.Layout(layout)}
	for rows.Next() {
		var r kinolist.MovieRecord
		var year, duration, director, dateAdded sql.NullString
		if err := rows.Scan(&r.Title, &year, &duration, &director, &dateAdded); err != nil {
			return nil, err
		}
		r.Year, r.Duration, r.Director, r.DateAdded = year.String, duration.String, director.String, dateAdded.String
		table.Records = append(table.Records, &r)
	}
	return table, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
