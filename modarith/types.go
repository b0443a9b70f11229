// Package modarith: sentinel error set.
// All public functions in this package return ONLY these sentinels (optionally
// wrapped with context via fmt.Errorf("...: %w", ErrX)); tests match them with
// errors.Is. None of the public surface panics on user-triggered conditions.

package modarith

import "errors"

// Sentinel errors returned by the modarith package.
var (
	// ErrBadModulus indicates that a supplied modulus is smaller than 2.
	// Residue arithmetic is meaningless modulo 0 or 1, and negative moduli
	// are always a caller bug.
	ErrBadModulus = errors.New("modarith: modulus must be at least 2")

	// ErrNoInverse indicates that gcd(a, m) ≠ 1, so a has no multiplicative
	// inverse modulo m.
	ErrNoInverse = errors.New("modarith: no modular inverse exists")

	// ErrNotCoprime indicates that the two CRT moduli share a common factor,
	// so no CRT basis (and no unique combined residue) exists.
	ErrNotCoprime = errors.New("modarith: moduli are not coprime")
)

// MinModulus is the smallest modulus accepted by ModInverse, CRTBasis and CRT.
const MinModulus = 2
