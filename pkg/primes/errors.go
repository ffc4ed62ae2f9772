package primes

import "errors"

// Input validation errors. Every operation either succeeds with a
// well-formed result or fails immediately with one of these sentinels.
var (
	ErrInvalidIndex  = errors.New("index must be a positive integer")
	ErrInvalidTarget = errors.New("target must be a positive integer")
	ErrInvalidBasis  = errors.New("wheel basis must contain at least one prime")
)

// Size-limit errors. Inputs beyond these limits would overflow the int64
// working range or allocate unreasonable amounts of memory; the operation
// fails explicitly instead.
var (
	ErrBoundTooLarge = errors.New("sieve bound exceeds MaxSieveBound")
	ErrWheelTooLarge = errors.New("wheel basis size exceeds MaxWheelBasis")
	ErrIndexTooLarge = errors.New("index is too large to bound in int64")
)
