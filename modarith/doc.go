// Package modarith provides the small-integer number-theory kernels behind
// Hill cipher key inversion: the extended Euclidean algorithm, modular
// inverses, positive-remainder normalization, and two-modulus Chinese
// Remainder recombination with generically derived basis coefficients.
//
// All functions are pure, deterministic, and operate on machine ints: every
// value in this repository is bounded by a 3×3 determinant of entries < 26
// (|det| < 6·25³), so arbitrary-precision arithmetic is unnecessary.
//
// Errors (sentinel):
//
//	– ErrBadModulus  if a modulus smaller than 2 is supplied.
//	– ErrNoInverse   if gcd(a, m) ≠ 1, so no modular inverse exists.
//	– ErrNotCoprime  if CRT moduli share a factor and no basis exists.
//
// Example usage:
//
//	inv, err := modarith.ModInverse(7, 26) // inv = 15, since 7·15 ≡ 1 (mod 26)
//	x, err := modarith.CRT(1, 2, 5, 13)    // x = 5, the residue mod 26
package modarith
