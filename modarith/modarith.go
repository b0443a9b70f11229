package modarith

import "fmt"

// ExtendedGCD computes g = gcd(a, b) together with Bézout coefficients x, y
// such that a·x + b·y = g.
//
// The recursion follows the classic schoolbook form:
//
//	gcd(a, 0) = a with (x, y) = (1, 0)
//	gcd(a, b) = gcd(b, a mod b), coefficients rotated back on return.
//
// Inputs may be negative; in that case g carries the sign of the trailing
// nonzero argument (gcd(-4, 0) = -4), exactly like truncating-division
// implementations. Callers that need modular semantics normalize through
// PositiveMod first, so no normalization is applied here.
//
// Complexity: O(log min(|a|, |b|)) time, O(log min(|a|, |b|)) stack.
func ExtendedGCD(a, b int) (g, x, y int) {
	// Base case: gcd(a, 0) = a, witnessed by a·1 + 0·0.
	if b == 0 {
		return a, 1, 0
	}

	// Recurse on (b, a mod b), then rotate coefficients back one level:
	// if b·x1 + (a mod b)·y1 = g, then a·y1 + b·(x1 - (a/b)·y1) = g.
	g, x1, y1 := ExtendedGCD(b, a%b)

	return g, y1, x1 - (a/b)*y1
}

// PositiveMod returns the canonical representative of v in [0, m), correcting
// for the negative remainders Go's truncating % produces on negative v.
// m must be positive; this is a precondition, not a validated input, because
// every caller in this module passes a package constant.
func PositiveMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// ModInverse returns x in [0, m) with a·x ≡ 1 (mod m).
//
// a is normalized into [0, m) before the Euclidean run, so negative inputs
// (raw determinants, cofactors) are fine.
//
// Errors:
//
//	– ErrBadModulus if m < MinModulus.
//	– ErrNoInverse  if gcd(a, m) ≠ 1 (wrapped with the offending pair).
func ModInverse(a, m int) (int, error) {
	if m < MinModulus {
		return 0, fmt.Errorf("%w: got %d", ErrBadModulus, m)
	}

	g, x, _ := ExtendedGCD(PositiveMod(a, m), m)
	if g != 1 {
		return 0, fmt.Errorf("%w: %d modulo %d (gcd %d)", ErrNoInverse, a, m, g)
	}

	return PositiveMod(x, m), nil
}

// CRTBasis derives the pair of basis coefficients (bm, bn) modulo m·n with
//
//	bm ≡ 1 (mod m), bm ≡ 0 (mod n)
//	bn ≡ 0 (mod m), bn ≡ 1 (mod n)
//
// from the Bézout identity u·m + v·n = 1: bm = v·n and bn = u·m, each
// normalized into [0, m·n). For the Hill alphabet factorization (2, 13) the
// derived pair is exactly (13, 14); nothing is hard-coded, so the same
// routine serves any coprime factorization of a composite modulus.
//
// Errors:
//
//	– ErrBadModulus if either modulus is < MinModulus.
//	– ErrNotCoprime if gcd(m, n) ≠ 1 (wrapped with the offending pair).
func CRTBasis(m, n int) (bm, bn int, err error) {
	// 1) Validate moduli.
	if m < MinModulus || n < MinModulus {
		return 0, 0, fmt.Errorf("%w: got (%d, %d)", ErrBadModulus, m, n)
	}

	// 2) Bézout: u·m + v·n = g. The basis exists iff g == 1.
	g, u, v := ExtendedGCD(m, n)
	if g != 1 {
		return 0, 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotCoprime, m, n, g)
	}

	// 3) v·n ≡ 1 (mod m) and ≡ 0 (mod n); u·m is the mirror image.
	mn := m * n

	return PositiveMod(v*n, mn), PositiveMod(u*m, mn), nil
}

// CRT combines residues rm (mod m) and rn (mod n) into the unique residue
// modulo m·n congruent to both, for coprime moduli:
//
//	x = bm·(rm mod m) + bn·(rn mod n)  (mod m·n)
//
// where (bm, bn) come from CRTBasis. Residue inputs are normalized, so raw
// (possibly negative) values are accepted.
//
// Errors: those of CRTBasis (ErrBadModulus, ErrNotCoprime).
func CRT(rm, m, rn, n int) (int, error) {
	bm, bn, err := CRTBasis(m, n)
	if err != nil {
		return 0, err
	}

	return PositiveMod(bm*PositiveMod(rm, m)+bn*PositiveMod(rn, n), m*n), nil
}
