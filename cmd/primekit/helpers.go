// Shared helpers for primekit subcommands: argument parsing, store access
// and output formatting.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/primekit/internal/store"
	"github.com/mesh-intelligence/primekit/pkg/primes"
)

// errStoreDisabled marks a command that cannot run under --no-store.
// The caller can correct it, so it exits as a user error.
var errStoreDisabled = errors.New("store is disabled")

// parseIntArg parses a command-line integer argument. Unparseable or
// out-of-range values wrap the given sentinel so they exit as user errors.
func parseIntArg(raw, name string, sentinel error) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a valid integer: %w", name, raw, sentinel)
	}
	return v, nil
}

// openStore attaches the result store using the resolved configuration.
// Returns (nil, nil) when --no-store is set; callers must handle a nil store.
func openStore() (*store.Store, error) {
	if flagNoStore {
		return nil, nil
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	s := store.New()
	config := store.Config{Backend: defaultBackend, DataDir: dataDir}
	if err := s.Attach(config); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return s, nil
}

// recordRun appends a run to the store's history. History is best-effort:
// a store failure warns on stderr instead of failing a computation that
// already succeeded.
func recordRun(s *store.Store, kind, input, result string, elapsed time.Duration) {
	if s == nil {
		return
	}
	if _, err := s.RecordRun(kind, input, result, elapsed); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording %s run: %v\n", kind, err)
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// formatFactors renders a factor multiset as "2^3 * 3^2 * 5".
// The empty multiset (the factorization of 1) renders as "1".
func formatFactors(factors []primes.Factor) string {
	if len(factors) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		if f.Exponent == 1 {
			parts = append(parts, strconv.FormatInt(f.Prime, 10))
		} else {
			parts = append(parts, fmt.Sprintf("%d^%d", f.Prime, f.Exponent))
		}
	}
	return strings.Join(parts, " * ")
}

// formatPrimes renders a prime list as a single space-separated line.
func formatPrimes(ps []int64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.FormatInt(p, 10)
	}
	return strings.Join(parts, " ")
}
