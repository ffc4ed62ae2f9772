package primes

import (
	"fmt"
	"math"
)

// NthPrimeBounds returns an inclusive lower and upper bound on the value of
// the nth prime (1-indexed: n=1 brackets 2 exactly). The bounds follow the
// asymptotic x = n*(ln n + ln ln n), with the small-n cases where the
// asymptotic estimate is unreliable pinned to known values.
// Returns ErrInvalidIndex when n < 1, and ErrIndexTooLarge when the upper
// bound would not fit in int64.
//
// Reference: Dusart, "The kth prime is greater than k(ln k + ln ln k - 1)
// for k >= 2", Math. Comp. 68 (1999).
func NthPrimeBounds(n int64) (lo, hi int64, err error) {
	if n < 1 {
		return 0, 0, ErrInvalidIndex
	}
	if n == 1 {
		return 2, 2, nil
	}

	x := nthPrimeAsymptote(n)
	// An out-of-range float-to-int conversion is implementation-defined;
	// fail explicitly instead of returning a garbage bracket.
	if x >= float64(math.MaxInt64) {
		return 0, 0, ErrIndexTooLarge
	}
	lo = int64(math.Ceil(x)) - n
	if n >= 6 {
		hi = int64(math.Floor(x))
	} else {
		// The 5th prime is 11; the asymptote undershoots below n=6.
		hi = 11
	}
	return lo, hi, nil
}

// EstimateNthPrime returns a heuristic point estimate of the nth prime
// (1-indexed). The estimate is not exact: for n >= 6 it lies within roughly
// 20% of the true value, and it is exact only for n=1. Callers needing the
// exact nth prime should sieve up to the upper bound from NthPrimeBounds.
// Returns ErrInvalidIndex when n < 1.
func EstimateNthPrime(n int64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidIndex
	}
	if n == 1 {
		return 2, nil
	}
	return nthPrimeAsymptote(n), nil
}

// nthPrimeAsymptote evaluates n*(ln n + ln ln n). Callers guarantee n >= 2.
func nthPrimeAsymptote(n int64) float64 {
	f := float64(n)
	return f * (math.Log(f) + math.Log(math.Log(f)))
}

// FirstPrimes returns the first count primes in ascending order, by sieving
// up to the estimated value of the count-th prime.
// Returns ErrInvalidIndex when count < 1, and ErrBoundTooLarge when the
// required sieve would exceed MaxSieveBound.
func FirstPrimes(count int64) ([]int64, error) {
	_, hi, err := NthPrimeBounds(count)
	if err != nil {
		return nil, err
	}
	s, err := BuildSieve(hi)
	if err != nil {
		return nil, err
	}
	ps := s.Primes()
	if int64(len(ps)) < count {
		return nil, fmt.Errorf("sieve to %d found %d primes, want %d", hi, len(ps), count)
	}
	return ps[:count], nil
}
