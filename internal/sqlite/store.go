// Package sqlite implements the embedded-store backend of the
// DataService contract over a single-table SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/steepworks/steeper/pkg/types"
)

// Schema DDL for the teas table. Steep times are stored in their
// "hh:mm:ss" text form; names are unique across the store.
const createTeas = `CREATE TABLE IF NOT EXISTS teas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    steep_time TEXT NOT NULL,
    brew_temp INTEGER NOT NULL
);`

// Seed row inserted exactly once per fresh store.
const (
	seedName     = "Earl Grey"
	seedSteep    = types.DefaultSteepTime
	seedBrewTemp = types.DefaultBrewTemp
)

// Compile-time interface check.
var _ types.DataService[*types.TeaVariety] = (*Store)(nil)

// Store is the embedded backend. Initialize binds it to a database file
// path; every operation then opens a connection scoped to that single
// call, relying on SQLite's own file locking for cross-call
// serialization. There is no shared handle to outlive the store file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates an uninitialized embedded store; call Initialize
// with a database file path before issuing operations.
func NewStore() *Store {
	return &Store{}
}

// Initialize creates the teas table at the given file path if absent
// and seeds the "Earl Grey" default row if the table is empty. Returns
// an ArgumentError for an empty locator. After a successful call,
// further calls are a no-op regardless of locator.
func (s *Store) Initialize(ctx context.Context, locator string) error {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return &types.ArgumentError{Param: "locator", Message: "database path must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path != "" {
		return nil
	}

	db, err := sql.Open("sqlite", locator)
	if err != nil {
		return storageErr("opening database", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTeas); err != nil {
		return storageErr("creating teas table", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM teas").Scan(&count); err != nil {
		return storageErr("counting teas", err)
	}
	if count == 0 {
		_, err := db.ExecContext(ctx,
			"INSERT INTO teas (name, steep_time, brew_temp) VALUES (?, ?, ?)",
			seedName, seedSteep.String(), seedBrewTemp,
		)
		if err != nil {
			return storageErr("seeding default tea", err)
		}
	}

	s.path = locator
	return nil
}

// List returns every stored variety in insertion order.
func (s *Store) List(ctx context.Context) ([]*types.TeaVariety, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, steep_time, brew_temp FROM teas ORDER BY id")
	if err != nil {
		return nil, storageErr("querying teas", err)
	}
	defer rows.Close()

	var teas []*types.TeaVariety
	for rows.Next() {
		tea, err := hydrateTea(rows)
		if err != nil {
			return nil, err
		}
		teas = append(teas, tea)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating teas", err)
	}
	return teas, nil
}

// FindByID returns the variety with the given id, or ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id int64) (*types.TeaVariety, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx,
		"SELECT id, name, steep_time, brew_temp FROM teas WHERE id = ?", id)
	tea, err := hydrateTea(row)
	if errors.Is(err, types.ErrNotFound) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tea, nil
}

// Add validates the variety and inserts it, returning it with the
// store-assigned id populated.
func (s *Store) Add(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	if err := tea.Validate(); err != nil {
		return nil, err
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		"INSERT INTO teas (name, steep_time, brew_temp) VALUES (?, ?, ?)",
		tea.Name, tea.SteepTime.String(), tea.BrewTemp,
	)
	if err != nil {
		return nil, storageErr(fmt.Sprintf("inserting tea %q", tea.Name), err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("reading inserted id", err)
	}
	tea.ID = id
	return tea, nil
}

// Update validates the variety and overwrites the stored row with the
// same id. The variety must already carry a positive id.
func (s *Store) Update(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	if err := checkID(tea.ID); err != nil {
		return nil, err
	}
	if err := tea.Validate(); err != nil {
		return nil, err
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		"UPDATE teas SET name = ?, steep_time = ?, brew_temp = ? WHERE id = ?",
		tea.Name, tea.SteepTime.String(), tea.BrewTemp, tea.ID,
	)
	if err != nil {
		return nil, storageErr(fmt.Sprintf("updating tea %d", tea.ID), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, storageErr("reading affected rows", err)
	}
	if n == 0 {
		return nil, types.ErrNotFound
	}
	return tea, nil
}

// Delete validates the variety and removes its row. The row count guard
// and the delete run inside one transaction: deleting the last
// remaining variety fails with ErrLastVariety and leaves the table
// untouched, even under concurrent deleters.
func (s *Store) Delete(ctx context.Context, tea *types.TeaVariety) (bool, error) {
	if err := checkID(tea.ID); err != nil {
		return false, err
	}
	if err := tea.Validate(); err != nil {
		return false, err
	}

	db, err := s.open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM teas").Scan(&count); err != nil {
		return false, storageErr("counting teas", err)
	}
	if count <= 1 {
		return false, types.ErrLastVariety
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM teas WHERE id = ?", tea.ID)
	if err != nil {
		return false, storageErr(fmt.Sprintf("deleting tea %d", tea.ID), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("reading affected rows", err)
	}
	if n == 0 {
		return false, types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return false, storageErr("committing delete", err)
	}
	return true, nil
}

// open returns a call-scoped connection to the bound database file.
// The caller must close it before returning.
func (s *Store) open() (*sql.DB, error) {
	s.mu.Lock()
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return nil, &types.ArgumentError{Param: "locator", Message: "store is not initialized"}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storageErr("opening database", err)
	}
	return db, nil
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateTea scans one teas row into a TeaVariety.
func hydrateTea(row scanner) (*types.TeaVariety, error) {
	var (
		tea   types.TeaVariety
		steep string
	)
	if err := row.Scan(&tea.ID, &tea.Name, &steep, &tea.BrewTemp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, storageErr("scanning tea row", err)
	}

	st, err := types.ParseSteepTime(steep)
	if err != nil {
		return nil, fmt.Errorf("stored steep time: %w", err)
	}
	tea.SteepTime = st
	return &tea, nil
}

// checkID rejects non-positive identifiers before any I/O.
func checkID(id int64) error {
	if id <= 0 {
		return &types.ArgumentError{Param: "id", Message: "identifier must be positive"}
	}
	return nil
}

// storageErr wraps a driver failure as a StorageError, preserving the
// engine's primary and extended result codes when available. The
// driver's error type carries the extended code; the primary code is
// its low byte.
func storageErr(message string, err error) error {
	se := &types.StorageError{Message: message, Err: err}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		se.ExtendedCode = coded.Code()
		se.Code = coded.Code() & 0xff
	}
	return se
}
