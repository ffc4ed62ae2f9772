package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRecordRunGeneratesUUIDv7(t *testing.T) {
	s := newAttachedStore(t)

	id, err := s.RecordRun(RunKindFactor, "360", "2^3 * 3^2 * 5", 120*time.Microsecond)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("run ID version = %d, want 7", parsed.Version())
	}
}

func TestRecordRunUnknownKind(t *testing.T) {
	s := newAttachedStore(t)

	if _, err := s.RecordRun("primality", "13", "prime", 0); !errors.Is(err, ErrUnknownRunKind) {
		t.Fatalf("expected ErrUnknownRunKind, got %v", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newAttachedStore(t)

	inputs := []string{"100", "200", "300"}
	for _, in := range inputs {
		if _, err := s.RecordRun(RunKindSieve, in, "ok", time.Millisecond); err != nil {
			t.Fatalf("RecordRun(%s) failed: %v", in, err)
		}
	}

	runs, err := s.ListRuns(RunKindSieve, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != len(inputs) {
		t.Fatalf("ListRuns returned %d runs, want %d", len(runs), len(inputs))
	}
	// Newest first: inputs in reverse insertion order. UUID v7 IDs break
	// ties between identical timestamps.
	for i, want := range []string{"300", "200", "100"} {
		if runs[i].Input != want {
			t.Errorf("runs[%d].Input = %q, want %q", i, runs[i].Input, want)
		}
	}
}

func TestListRunsFiltersByKind(t *testing.T) {
	s := newAttachedStore(t)

	if _, err := s.RecordRun(RunKindSieve, "100", "25 primes", time.Millisecond); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if _, err := s.RecordRun(RunKindFactor, "360", "2^3 * 3^2 * 5", time.Millisecond); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := s.ListRuns(RunKindFactor, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns(factor) returned %d runs, want 1", len(runs))
	}
	if runs[0].Kind != RunKindFactor || runs[0].Input != "360" {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	all, err := s.ListRuns("", 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListRuns(all) returned %d runs, want 2", len(all))
	}
}

func TestListRunsLimit(t *testing.T) {
	s := newAttachedStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.RecordRun(RunKindNth, "10", "29", 0); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	runs, err := s.ListRuns(RunKindNth, 3)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns with limit 3 returned %d runs", len(runs))
	}
}

func TestListRunsUnknownKind(t *testing.T) {
	s := newAttachedStore(t)

	if _, err := s.ListRuns("primality", 0); !errors.Is(err, ErrUnknownRunKind) {
		t.Fatalf("expected ErrUnknownRunKind, got %v", err)
	}
}

func TestRunRoundTripFields(t *testing.T) {
	s := newAttachedStore(t)

	elapsed := 1500 * time.Microsecond
	id, err := s.RecordRun(RunKindFactor, "5000", "2^3 * 5^4", elapsed)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := s.ListRuns(RunKindFactor, 1)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns returned %d runs, want 1", len(runs))
	}

	r := runs[0]
	if r.RunID != id {
		t.Errorf("RunID = %q, want %q", r.RunID, id)
	}
	if r.Result != "2^3 * 5^4" {
		t.Errorf("Result = %q", r.Result)
	}
	if r.Elapsed != elapsed {
		t.Errorf("Elapsed = %v, want %v", r.Elapsed, elapsed)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}
