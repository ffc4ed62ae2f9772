package primes

import "sync"

// MaxWheelBasis is the largest basis size NewWheel accepts. The wheel
// tabulates one mark per integer in a full period, and the period of the
// first 9 primes already exceeds 200 million entries.
const MaxWheelBasis = 8

// Wheel generates trial divisors that are coprime to a basis of small
// primes, skipping candidates that are trivially composite. A wheel with
// basis {2,3,5} visits only 8 of every 30 integers. The wheel never skips
// a prime: every prime is either in the basis or lands on a spoke.
//
// A Wheel is immutable once built and safe for concurrent use.
type Wheel struct {
	basis      []int64
	period     int64
	firstSpoke int64
	increments []int64
}

// NewWheel builds a wheel whose basis is the first basisSize primes.
// Returns ErrInvalidBasis when basisSize < 1 and ErrWheelTooLarge when
// basisSize > MaxWheelBasis.
func NewWheel(basisSize int) (*Wheel, error) {
	if basisSize < 1 {
		return nil, ErrInvalidBasis
	}
	if basisSize > MaxWheelBasis {
		return nil, ErrWheelTooLarge
	}

	basis, err := FirstPrimes(int64(basisSize))
	if err != nil {
		return nil, err
	}

	w := &Wheel{basis: basis, period: 1}
	for _, p := range basis {
		w.period *= p
	}

	// Mark one full period past the basis; the surviving positions are the
	// spokes, and the gaps between them repeat every period thereafter.
	basisEnd := basis[len(basis)-1] + 1
	firstRoundEnd := w.period + 2
	marks := make([]bool, firstRoundEnd)
	for i := range marks {
		marks[i] = true
	}
	for _, p := range basis {
		start := p * p
		if start < basisEnd {
			start = basisEnd
		}
		for k := start; k < firstRoundEnd; k += p {
			marks[k] = false
		}
	}

	prev := int64(-1)
	for k := basisEnd; k < firstRoundEnd; k++ {
		if !marks[k] {
			continue
		}
		if prev < 0 {
			w.firstSpoke = k
		} else {
			w.increments = append(w.increments, k-prev)
		}
		prev = k
	}
	// Wrap-around increment from the last spoke back to the first spoke of
	// the next period.
	w.increments = append(w.increments, w.firstSpoke+w.period-prev)

	return w, nil
}

var defaultWheel = sync.OnceValue(func() *Wheel {
	w, err := NewWheel(4)
	if err != nil {
		panic("primes: building default wheel: " + err.Error())
	}
	return w
})

// DefaultWheel returns the shared wheel with basis {2,3,5,7} (period 210)
// used by Factorize. It is built once on first use.
func DefaultWheel() *Wheel {
	return defaultWheel()
}

// Basis returns a copy of the wheel's basis primes in ascending order.
func (w *Wheel) Basis() []int64 {
	out := make([]int64, len(w.basis))
	copy(out, w.basis)
	return out
}

// Period returns the wheel's cycle length, the product of its basis primes.
func (w *Wheel) Period() int64 {
	return w.period
}

// Ratio returns the fraction of integers the wheel visits per period.
// Lower is better: the basis-{2,3,5} wheel visits 8/30 of all integers.
func (w *Wheel) Ratio() float64 {
	return float64(len(w.increments)) / float64(w.period)
}

// Divisors returns an iterator over trial-division candidates: first the
// basis primes in order, then the spokes of every successive period. The
// stream is unbounded; callers decide when to stop.
func (w *Wheel) Divisors() *DivisorIter {
	return &DivisorIter{wheel: w}
}

// DivisorIter walks a Wheel's divisor stream. Each iterator carries its own
// position; a single iterator must not be shared across goroutines.
type DivisorIter struct {
	wheel   *Wheel
	basisAt int
	spoke   int64
	incAt   int
	started bool
}

// Next returns the next trial-division candidate.
func (it *DivisorIter) Next() int64 {
	w := it.wheel
	if it.basisAt < len(w.basis) {
		p := w.basis[it.basisAt]
		it.basisAt++
		return p
	}
	if !it.started {
		it.started = true
		it.spoke = w.firstSpoke
		return it.spoke
	}
	it.spoke += w.increments[it.incAt]
	it.incAt = (it.incAt + 1) % len(w.increments)
	return it.spoke
}
