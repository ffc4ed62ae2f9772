// Package main provides the primekit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/primekit/pkg/primes"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "primekit:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: invalid input is the caller's fault,
// everything else is a system failure.
func exitCode(err error) int {
	for _, sentinel := range []error{
		primes.ErrInvalidIndex,
		primes.ErrInvalidTarget,
		primes.ErrInvalidBasis,
		primes.ErrBoundTooLarge,
		primes.ErrWheelTooLarge,
		primes.ErrIndexTooLarge,
		errStoreDisabled,
	} {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}
