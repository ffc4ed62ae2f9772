package primes

// PrimesBetween returns all primes p with lo <= p <= hi in ascending order.
// Both ends are inclusive. An empty or sub-2 window yields an empty slice.
// A hi above MaxSieveBound returns ErrBoundTooLarge.
//
// Only a base sieve up to sqrt(hi) plus the window itself are allocated, so
// callers can enumerate a large range by sharding it into independent
// windows and merging the results in order.
func PrimesBetween(lo, hi int64) ([]int64, error) {
	if hi > MaxSieveBound {
		return nil, ErrBoundTooLarge
	}
	if lo < 2 {
		lo = 2
	}
	if hi < lo {
		return []int64{}, nil
	}

	base, err := BuildSieve(isqrt(hi))
	if err != nil {
		return nil, err
	}

	window := make([]bool, hi-lo+1)
	for i := range window {
		window[i] = true
	}

	for _, p := range base.Primes() {
		// First multiple of p inside the window, never p itself.
		first := ((lo + p - 1) / p) * p
		if first < p*p {
			first = p * p
		}
		for k := first; k <= hi; k += p {
			window[k-lo] = false
		}
	}

	result := make([]int64, 0)
	for i, isPrime := range window {
		if isPrime {
			result = append(result, lo+int64(i))
		}
	}
	return result, nil
}

// isqrt returns the integer square root of n by Newton iteration,
// avoiding float rounding near perfect squares.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	guess := n
	next := (guess + 1) / 2
	for next < guess {
		guess = next
		next = (guess + n/guess) / 2
	}
	return guess
}
