// Package primes implements basic prime-number algorithms: a sieve of
// Eratosthenes, a closed-form estimator for the nth prime, and wheel
// factorization. All operations are pure and re-entrant; identical inputs
// always produce identical results.
package primes
