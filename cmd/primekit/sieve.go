// Sieve command enumerates primes up to a bound.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/primekit/internal/store"
	"github.com/mesh-intelligence/primekit/pkg/primes"
)

var sieveCountOnly bool

var sieveCmd = &cobra.Command{
	Use:   "sieve <bound>",
	Short: "List all primes up to an inclusive bound",
	Long: `Sieve enumerates every prime p with 2 <= p <= bound using a sieve of
Eratosthenes. The bound is inclusive: "primekit sieve 29" includes 29.
Bounds below 2 yield no primes.

Example:
  primekit sieve 30
  primekit sieve 1000000 --count`,
	Args: cobra.ExactArgs(1),
	RunE: runSieve,
}

func init() {
	sieveCmd.Flags().BoolVar(&sieveCountOnly, "count", false, "print only the number of primes found")
}

// sieveOutput is the JSON shape of a sieve run. Primes is a pointer so the
// key is gated on --count rather than on emptiness: a bound below 2 still
// yields "primes": [].
type sieveOutput struct {
	Bound  int64    `json:"bound"`
	Count  int      `json:"count"`
	Primes *[]int64 `json:"primes,omitempty"`
}

func runSieve(cmd *cobra.Command, args []string) error {
	bound, err := parseIntArg(args[0], "bound", primes.ErrInvalidTarget)
	if err != nil {
		return err
	}

	start := time.Now()
	ps, err := primes.PrimesUpTo(bound)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if s, err := openStore(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	} else if s != nil {
		defer s.Detach()
		recordRun(s, store.RunKindSieve, args[0], fmt.Sprintf("%d primes", len(ps)), elapsed)
	}

	if flagJSON {
		out := sieveOutput{Bound: bound, Count: len(ps)}
		if !sieveCountOnly {
			if ps == nil {
				ps = []int64{}
			}
			out.Primes = &ps
		}
		return printJSON(out)
	}

	if sieveCountOnly {
		fmt.Println(len(ps))
		return nil
	}
	fmt.Println(formatPrimes(ps))
	return nil
}
