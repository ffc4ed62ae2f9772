// Nth command estimates the value of the nth prime.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/store"
	"github.com/mesh-intelligence/primekit/pkg/primes"
)

var nthCmd = &cobra.Command{
	Use:   "nth <n>",
	Short: "Estimate the value of the nth prime",
	Long: `Nth prints a closed-form estimate of the nth prime (1-indexed: n=1 is 2)
together with inclusive lower and upper bounds, without enumerating primes.
The estimate is heuristic, not exact; sieve up to the upper bound when the
exact value is needed.

Example:
  primekit nth 1000000`,
	Args: cobra.ExactArgs(1),
	RunE: runNth,
}

// nthOutput is the JSON shape of an estimate run.
type nthOutput struct {
	Index    int64   `json:"index"`
	Estimate float64 `json:"estimate"`
	Lower    int64   `json:"lower"`
	Upper    int64   `json:"upper"`
}

func runNth(cmd *cobra.Command, args []string) error {
	n, err := parseIntArg(args[0], "index", primes.ErrInvalidIndex)
	if err != nil {
		return err
	}

	start := time.Now()
	est, err := primes.EstimateNthPrime(n)
	if err != nil {
		return err
	}
	lo, hi, err := primes.NthPrimeBounds(n)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if s, err := openStore(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	} else if s != nil {
		defer s.Detach()
		recordRun(s, store.RunKindNth, args[0], fmt.Sprintf("estimate %.0f in [%d, %d]", est, lo, hi), elapsed)
	}

	if flagJSON {
		return printJSON(nthOutput{Index: n, Estimate: est, Lower: lo, Upper: hi})
	}

	fmt.Printf("prime %d is between %d and %d (estimate %.1f)\n", n, lo, hi, est)
	return nil
}
