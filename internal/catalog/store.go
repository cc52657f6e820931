// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists executed searches in a local SQLite catalog
// so earlier results can be listed and re-rendered.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/genome-engine/pkg/types"
)

const dbFile = "searches.db"

// DefaultListLimit bounds a catalog listing when the caller does not
// choose one.
const DefaultListLimit = 20

// ErrNotFound marks lookups of catalog entries that do not exist.
var ErrNotFound = errors.New("catalog entry not found")

// Store manages the search catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded search.
type Entry struct {
	ID              int64          `json:"id"`
	ExecutedAt      time.Time      `json:"executed_at"`
	RawQuery        string         `json:"raw_query"`
	Query           string         `json:"query"`
	ResultType      string         `json:"result_type"`
	RecordCount     int            `json:"record_count"`
	BioprojectCount int            `json:"bioproject_count"`
	Fields          []string       `json:"fields,omitempty"`
	Records         []types.Record `json:"records,omitempty"`
}

// Open opens or creates the catalog database under cfg.Dir, creating the
// schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating catalog directory")
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			executed_at TEXT NOT NULL,
			raw_query TEXT NOT NULL,
			query TEXT NOT NULL,
			result_type TEXT NOT NULL,
			record_count INTEGER NOT NULL,
			bioproject_count INTEGER NOT NULL,
			fields TEXT,
			records TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_executed_at ON searches(executed_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "executing schema statement")
		}
	}
	return nil
}

// Record appends one executed search to the catalog and returns its ID.
// A zero ExecutedAt is filled with the current time.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	executedAt := e.ExecutedAt
	if executedAt.IsZero() {
		executedAt = time.Now()
	}

	fieldsJSON, err := json.Marshal(e.Fields)
	if err != nil {
		return 0, errors.Wrap(err, "encoding fields")
	}
	recordsJSON, err := json.Marshal(e.Records)
	if err != nil {
		return 0, errors.Wrap(err, "encoding records")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (executed_at, raw_query, query, result_type,
			record_count, bioproject_count, fields, records)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		executedAt.UTC().Format(time.RFC3339Nano),
		e.RawQuery, e.Query, e.ResultType,
		e.RecordCount, e.BioprojectCount,
		string(fieldsJSON), string(recordsJSON),
	)
	if err != nil {
		return 0, errors.Wrap(err, "inserting search")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "reading inserted id")
	}
	return id, nil
}

// List returns the newest entries first, up to limit (DefaultListLimit
// when limit <= 0). The records payload is left out of listings.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, executed_at, raw_query, query, result_type,
			record_count, bioproject_count, fields
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying searches")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var executedAt, fieldsJSON string
		if err := rows.Scan(&e.ID, &executedAt, &e.RawQuery, &e.Query,
			&e.ResultType, &e.RecordCount, &e.BioprojectCount, &fieldsJSON); err != nil {
			return nil, errors.Wrap(err, "scanning search row")
		}
		e.ExecutedAt, e.Fields, err = decodeEntryColumns(executedAt, fieldsJSON)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one catalog entry with its full records payload.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	var e Entry
	var executedAt, fieldsJSON, recordsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, executed_at, raw_query, query, result_type,
			record_count, bioproject_count, fields, records
		 FROM searches WHERE id = ?`, id).
		Scan(&e.ID, &executedAt, &e.RawQuery, &e.Query, &e.ResultType,
			&e.RecordCount, &e.BioprojectCount, &fieldsJSON, &recordsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		nf := errors.Newf("catalog entry %d not found", id)
		nf = errors.WithHint(nf, "Run 'genome-engine history' to list recorded searches")
		return nil, errors.Mark(nf, ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying search")
	}

	e.ExecutedAt, e.Fields, err = decodeEntryColumns(executedAt, fieldsJSON)
	if err != nil {
		return nil, err
	}
	if recordsJSON != "" {
		if err := json.Unmarshal([]byte(recordsJSON), &e.Records); err != nil {
			return nil, errors.Wrapf(err, "decoding records for entry %d", id)
		}
	}
	return &e, nil
}

func decodeEntryColumns(executedAt, fieldsJSON string) (time.Time, []string, error) {
	ts, err := time.Parse(time.RFC3339Nano, executedAt)
	if err != nil {
		return time.Time{}, nil, errors.Wrapf(err, "parsing timestamp %q", executedAt)
	}
	var fields []string
	if fieldsJSON != "" {
		if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
			return time.Time{}, nil, errors.Wrap(err, "decoding fields")
		}
	}
	return ts, fields, nil
}
