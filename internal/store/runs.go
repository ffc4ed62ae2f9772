package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run kinds recorded by the CLI.
const (
	RunKindSieve  = "sieve"
	RunKindNth    = "nth"
	RunKindFactor = "factor"
)

// validRunKinds is the set of recognized run kind values.
var validRunKinds = map[string]bool{
	RunKindSieve:  true,
	RunKindNth:    true,
	RunKindFactor: true,
}

// ErrUnknownRunKind is returned when a run kind is not recognized.
var ErrUnknownRunKind = errors.New("unknown run kind")

// timeFormat is RFC 3339 with fixed-width nanoseconds so that stored
// timestamps sort chronologically as strings.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one recorded computation.
type Run struct {
	RunID     string        // UUID v7, generated on record.
	Kind      string        // One of the RunKind constants.
	Input     string        // Operation input as given on the command line.
	Result    string        // Short result summary.
	Elapsed   time.Duration // Wall time of the computation.
	CreatedAt time.Time     // Timestamp of the record.
}

// RecordRun appends a run to the history and returns its generated ID.
// Returns ErrUnknownRunKind for a kind outside the RunKind constants.
func (s *Store) RecordRun(kind, input, result string, elapsed time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return "", ErrStoreDetached
	}
	if !validRunKinds[kind] {
		return "", ErrUnknownRunKind
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating run ID: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO runs (run_id, kind, input, result, elapsed_us, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id.String(), kind, input, result,
		elapsed.Microseconds(), time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return "", fmt.Errorf("recording %s run: %w", kind, err)
	}
	return id.String(), nil
}

// ListRuns returns recorded runs, newest first. An empty kind matches every
// kind; limit <= 0 means no limit.
func (s *Store) ListRuns(kind string, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrStoreDetached
	}
	if kind != "" && !validRunKinds[kind] {
		return nil, ErrUnknownRunKind
	}
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited.
	}

	rows, err := s.db.Query(
		"SELECT run_id, kind, input, result, elapsed_us, created_at FROM runs WHERE (? = '' OR kind = ?) ORDER BY created_at DESC, run_id DESC LIMIT ?",
		kind, kind, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			elapsedUS int64
			createdAt string
		)
		if err := rows.Scan(&r.RunID, &r.Kind, &r.Input, &r.Result, &elapsedUS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Elapsed = time.Duration(elapsedUS) * time.Microsecond
		r.CreatedAt, err = time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
