package primes

import "math"

// MaxSieveBound is the largest bound BuildSieve accepts. The sieve allocates
// one mark per integer, so the limit keeps a single sieve under 2 GiB.
const MaxSieveBound = math.MaxInt32

// Sieve holds primality marks for every integer in [0, bound].
// A Sieve is immutable once built.
type Sieve struct {
	bound int64
	marks []bool // marks[i] is true when i is prime
}

// BuildSieve builds a sieve of Eratosthenes over [0, bound]. The upper bound
// is inclusive: BuildSieve(30) decides primality for 30 itself. Bounds below
// 2 (including negative bounds) yield a sieve containing no primes. Bounds
// above MaxSieveBound return ErrBoundTooLarge.
//
// Runs in O(bound log log bound) time and O(bound) space.
func BuildSieve(bound int64) (*Sieve, error) {
	if bound > MaxSieveBound {
		return nil, ErrBoundTooLarge
	}

	size := bound + 1
	if size < 0 {
		size = 0
	}

	marks := make([]bool, size)
	for i := int64(2); i < size; i++ {
		marks[i] = true
	}

	root := int64(math.Sqrt(float64(max(bound, 0))))
	for i := int64(2); i <= root; i++ {
		if !marks[i] {
			continue
		}
		for j := i * i; j <= bound; j += i {
			marks[j] = false
		}
	}

	return &Sieve{bound: bound, marks: marks}, nil
}

// Bound returns the inclusive upper bound the sieve was built with.
func (s *Sieve) Bound() int64 {
	return s.bound
}

// IsPrime reports whether n is prime. Returns false for any n outside
// [0, bound].
func (s *Sieve) IsPrime(n int64) bool {
	if n < 0 || n >= int64(len(s.marks)) {
		return false
	}
	return s.marks[n]
}

// Primes returns the primes in [2, bound] in ascending order.
// The returned slice is freshly allocated on every call.
func (s *Sieve) Primes() []int64 {
	result := make([]int64, 0, s.Count())
	for i := int64(2); i < int64(len(s.marks)); i++ {
		if s.marks[i] {
			result = append(result, i)
		}
	}
	return result
}

// Count returns the number of primes in [2, bound].
func (s *Sieve) Count() int {
	count := 0
	for _, m := range s.marks {
		if m {
			count++
		}
	}
	return count
}

// PrimesUpTo returns all primes p with 2 <= p <= bound in ascending order.
// It is shorthand for building a sieve and collecting its primes.
func PrimesUpTo(bound int64) ([]int64, error) {
	s, err := BuildSieve(bound)
	if err != nil {
		return nil, err
	}
	return s.Primes(), nil
}
