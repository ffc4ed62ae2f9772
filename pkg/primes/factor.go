package primes

// Factor is one term of a prime factorization: Prime raised to Exponent.
type Factor struct {
	Prime    int64 `json:"prime"`
	Exponent int   `json:"exponent"`
}

// Factorize returns the prime factorization of n as (prime, exponent) pairs
// in ascending order of prime, using the shared DefaultWheel. The product
// of Prime^Exponent over the result equals n; when n is prime the result is
// [(n, 1)]; Factorize(1) is empty.
// Returns ErrInvalidTarget when n < 1: factorization is defined only for
// positive integers.
func Factorize(n int64) ([]Factor, error) {
	return FactorizeWith(n, DefaultWheel())
}

// FactorizeWith is Factorize with a caller-supplied wheel, allowing the
// basis size to be tuned against the magnitude of typical inputs.
func FactorizeWith(n int64, w *Wheel) ([]Factor, error) {
	if n < 1 {
		return nil, ErrInvalidTarget
	}

	factors := []Factor{}
	rem := n
	it := w.Divisors()
	for {
		k := it.Next()
		// k*k > rem, written to stay inside int64.
		if k > rem/k {
			break
		}
		if rem%k != 0 {
			continue
		}
		exp := 0
		for rem%k == 0 {
			rem /= k
			exp++
		}
		factors = append(factors, Factor{Prime: k, Exponent: exp})
	}
	if rem > 1 {
		// The remaining cofactor has no divisor at or below its square
		// root, so it is prime.
		factors = append(factors, Factor{Prime: rem, Exponent: 1})
	}
	return factors, nil
}
