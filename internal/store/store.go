// Package store persists primekit computation results in a local SQLite
// database: a factorization cache keyed by target integer and a history of
// CLI runs. The store is a cache beside the pure algorithms in pkg/primes;
// losing it loses nothing that cannot be recomputed.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "primekit.db"

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store implements the result store on SQLite.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// New creates a new Store instance. The store is not attached; call Attach
// with a Config to open the database.
func New() *Store {
	return &Store{}
}

// Attach opens the store described by config. Creates DataDir if it does
// not exist and applies the schema idempotently, so existing cached results
// survive across attaches.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database and releases resources. Idempotent: multiple
// calls succeed. After Detach, store operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.attached = false
	return err
}
