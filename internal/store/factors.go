package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/primekit/pkg/primes"
)

// PutFactorization caches the factorization of target, replacing any
// previous entry for the same target. Factors are stored as JSON so the
// cached value round-trips exactly.
func (s *Store) PutFactorization(target int64, factors []primes.Factor) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return ErrStoreDetached
	}

	encoded, err := json.Marshal(factors)
	if err != nil {
		return fmt.Errorf("encoding factors: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO factorizations (target, factors, computed_at) VALUES (?, ?, ?)",
		target, string(encoded), time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("caching factorization of %d: %w", target, err)
	}
	return nil
}

// GetFactorization returns the cached factorization of target. The second
// return value reports whether an entry was present.
func (s *Store) GetFactorization(target int64) ([]primes.Factor, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, false, ErrStoreDetached
	}

	var encoded string
	err := s.db.QueryRow(
		"SELECT factors FROM factorizations WHERE target = ?", target,
	).Scan(&encoded)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading factorization of %d: %w", target, err)
	}

	var factors []primes.Factor
	if err := json.Unmarshal([]byte(encoded), &factors); err != nil {
		return nil, false, fmt.Errorf("decoding factors for %d: %w", target, err)
	}
	return factors, true, nil
}
