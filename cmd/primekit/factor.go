// Factor command computes prime factorizations, with a store-backed cache.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/store"
	"github.com/mesh-intelligence/primekit/pkg/primes"
)

var factorCmd = &cobra.Command{
	Use:   "factor <m>",
	Short: "Factor an integer into primes",
	Long: `Factor decomposes a positive integer into prime factors by wheel-assisted
trial division, printing (prime, exponent) pairs in ascending order. Results
are cached in the local store; a repeated target is served from the cache.

Example:
  primekit factor 360
  primekit factor 600851475143 --no-store`,
	Args: cobra.ExactArgs(1),
	RunE: runFactor,
}

// factorOutput is the JSON shape of a factorization run.
type factorOutput struct {
	Target  int64           `json:"target"`
	Factors []primes.Factor `json:"factors"`
	Cached  bool            `json:"cached"`
}

func runFactor(cmd *cobra.Command, args []string) error {
	target, err := parseIntArg(args[0], "target", primes.ErrInvalidTarget)
	if err != nil {
		return err
	}
	// Reject invalid targets before touching the store so the cache never
	// holds entries for inputs the library refuses.
	if target < 1 {
		return fmt.Errorf("cannot factor %d: %w", target, primes.ErrInvalidTarget)
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		s = nil
	}
	if s != nil {
		defer s.Detach()
	}

	var (
		factors []primes.Factor
		cached  bool
	)
	if s != nil {
		factors, cached, err = s.GetFactorization(target)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			cached = false
		}
	}

	if !cached {
		start := time.Now()
		factors, err = primes.Factorize(target)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		if s != nil {
			if err := s.PutFactorization(target, factors); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			recordRun(s, store.RunKindFactor, args[0], formatFactors(factors), elapsed)
		}
	}

	if flagJSON {
		return printJSON(factorOutput{Target: target, Factors: factors, Cached: cached})
	}

	fmt.Printf("%d = %s", target, formatFactors(factors))
	if cached {
		fmt.Print("  (cached)")
	}
	fmt.Println()
	return nil
}
