// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/leolani/emissor-data/migrations"
)

// sqliteIndex persists entries in a local SQLite database, so element
// lookups survive service restarts.
type sqliteIndex struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// NewSQLiteIndex opens (or creates) the SQLite database at dsn and applies
// the embedded schema migrations.
func NewSQLiteIndex(dsn string) (ElementIndex, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create index dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open index database: %w", err)
	}

	if err := migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newSQLiteIndex(db), nil
}

func newSQLiteIndex(db *sql.DB) *sqliteIndex {
	return &sqliteIndex{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (s *sqliteIndex) Put(ctx context.Context, entry Entry) error {
	query, args, err := s.builder.
		Insert("elements").
		Columns("element_id", "signal_id", "scenario_id").
		Values(entry.ElementID, entry.SignalID, entry.ScenarioID).
		Suffix("ON CONFLICT(element_id) DO UPDATE SET signal_id = excluded.signal_id, scenario_id = excluded.scenario_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build index insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("store index entry %q: %w", entry.ElementID, err)
	}

	return nil
}

func (s *sqliteIndex) Resolve(ctx context.Context, elementID string) (Entry, error) {
	query, args, err := s.builder.
		Select("element_id", "signal_id", "scenario_id").
		From("elements").
		Where(sq.Eq{"element_id": elementID}).
		ToSql()
	if err != nil {
		return Entry{}, fmt.Errorf("build index select: %w", err)
	}

	var entry Entry
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&entry.ElementID, &entry.SignalID, &entry.ScenarioID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrElementNotFound
		}
		return Entry{}, fmt.Errorf("resolve element %q: %w", elementID, err)
	}

	return entry, nil
}

func (s *sqliteIndex) Close() error {
	return s.db.Close()
}
