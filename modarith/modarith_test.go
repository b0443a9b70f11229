package modarith_test

import (
	"testing"

	"github.com/katalvlaran/hillcrt/modarith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtendedGCD_BezoutIdentity verifies a·x + b·y = g over a mixed sweep,
// including negative operands and zero.
func TestExtendedGCD_BezoutIdentity(t *testing.T) {
	cases := [][2]int{
		{240, 46}, {46, 240}, {13, 2}, {2, 13}, {26, 15},
		{-30, 12}, {30, -12}, {-17, -5}, {7, 0}, {0, 7}, {1, 1},
	}
	for _, c := range cases {
		g, x, y := modarith.ExtendedGCD(c[0], c[1])
		assert.Equal(t, g, c[0]*x+c[1]*y, "Bezout identity must hold for (%d, %d)", c[0], c[1])
	}
}

// TestExtendedGCD_KnownValues pins gcd results for classic pairs.
func TestExtendedGCD_KnownValues(t *testing.T) {
	g, _, _ := modarith.ExtendedGCD(240, 46)
	assert.Equal(t, 2, g, "gcd(240,46)")

	g, _, _ = modarith.ExtendedGCD(2, 13)
	assert.Equal(t, 1, g, "2 and 13 are coprime")
}

// TestPositiveMod_NegativeValues verifies that negative inputs land in [0, m).
func TestPositiveMod_NegativeValues(t *testing.T) {
	assert.Equal(t, 25, modarith.PositiveMod(-1, 26), "-1 mod 26")
	assert.Equal(t, 0, modarith.PositiveMod(-26, 26), "-26 mod 26")
	assert.Equal(t, 12, modarith.PositiveMod(-1, 13), "-1 mod 13")
	assert.Equal(t, 1, modarith.PositiveMod(27, 26), "27 mod 26")
	assert.Equal(t, 0, modarith.PositiveMod(0, 2), "0 mod 2")
}

// TestModInverse_KnownValues checks inverses against hand-computed products.
func TestModInverse_KnownValues(t *testing.T) {
	inv, err := modarith.ModInverse(7, 26)
	require.NoError(t, err)
	assert.Equal(t, 15, inv, "7·15 = 105 ≡ 1 (mod 26)")

	inv, err = modarith.ModInverse(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, inv, "1 is self-inverse mod 2")

	// Every nonzero residue is invertible under the prime modulus 13.
	for a := 1; a < 13; a++ {
		inv, err = modarith.ModInverse(a, 13)
		require.NoError(t, err, "residue %d must be invertible mod 13", a)
		assert.Equal(t, 1, modarith.PositiveMod(a*inv, 13), "a·inv ≡ 1 for a=%d", a)
	}
}

// TestModInverse_NegativeInput verifies normalization of negative a before
// the Euclidean run (raw determinants may be negative).
func TestModInverse_NegativeInput(t *testing.T) {
	inv, err := modarith.ModInverse(-19, 26) // -19 ≡ 7 (mod 26)
	require.NoError(t, err)
	assert.Equal(t, 15, inv, "inverse of -19 equals inverse of 7 mod 26")
}

// TestModInverse_Absent verifies ErrNoInverse when gcd(a, m) ≠ 1.
func TestModInverse_Absent(t *testing.T) {
	_, err := modarith.ModInverse(13, 26)
	assert.ErrorIs(t, err, modarith.ErrNoInverse, "13 shares a factor with 26")

	_, err = modarith.ModInverse(0, 2)
	assert.ErrorIs(t, err, modarith.ErrNoInverse, "0 is never invertible")
}

// TestModInverse_BadModulus verifies ErrBadModulus for m < 2.
func TestModInverse_BadModulus(t *testing.T) {
	for _, m := range []int{1, 0, -5} {
		_, err := modarith.ModInverse(3, m)
		assert.ErrorIs(t, err, modarith.ErrBadModulus, "modulus %d must be rejected", m)
	}
}

// TestCRTBasis_HillFactorization pins the derived basis for 26 = 2·13 to the
// classic precomputed pair (13, 14): 13 ≡ 1 (mod 2), ≡ 0 (mod 13);
// 14 ≡ 0 (mod 2), ≡ 1 (mod 13).
func TestCRTBasis_HillFactorization(t *testing.T) {
	bm, bn, err := modarith.CRTBasis(2, 13)
	require.NoError(t, err)
	assert.Equal(t, 13, bm, "basis coefficient for the mod-2 residue")
	assert.Equal(t, 14, bn, "basis coefficient for the mod-13 residue")
}

// TestCRTBasis_Properties verifies the defining congruences on other coprime
// pairs, so the derivation is generic rather than tuned to (2, 13).
func TestCRTBasis_Properties(t *testing.T) {
	pairs := [][2]int{{2, 13}, {3, 5}, {4, 9}, {5, 7}, {8, 15}}
	for _, p := range pairs {
		m, n := p[0], p[1]
		bm, bn, err := modarith.CRTBasis(m, n)
		require.NoError(t, err, "basis must exist for coprime (%d, %d)", m, n)
		assert.Equal(t, 1, modarith.PositiveMod(bm, m), "bm ≡ 1 (mod %d)", m)
		assert.Equal(t, 0, modarith.PositiveMod(bm, n), "bm ≡ 0 (mod %d)", n)
		assert.Equal(t, 0, modarith.PositiveMod(bn, m), "bn ≡ 0 (mod %d)", m)
		assert.Equal(t, 1, modarith.PositiveMod(bn, n), "bn ≡ 1 (mod %d)", n)
	}
}

// TestCRTBasis_NotCoprime verifies ErrNotCoprime for shared factors.
func TestCRTBasis_NotCoprime(t *testing.T) {
	_, _, err := modarith.CRTBasis(4, 6)
	assert.ErrorIs(t, err, modarith.ErrNotCoprime, "gcd(4,6)=2 must be rejected")
}

// TestCRT_Exhaustive26 checks every residue mod 26 against its own
// decomposition: CRT(x mod 2, 2, x mod 13, 13) must reproduce x.
func TestCRT_Exhaustive26(t *testing.T) {
	for x := 0; x < 26; x++ {
		got, err := modarith.CRT(x%2, 2, x%13, 13)
		require.NoError(t, err)
		assert.Equal(t, x, got, "recombination must invert decomposition for x=%d", x)
	}
}

// TestCRT_NegativeResidues verifies that raw (unnormalized) residues are
// accepted and normalized internally.
func TestCRT_NegativeResidues(t *testing.T) {
	got, err := modarith.CRT(-1, 2, -1, 13) // ≡ (1 mod 2, 12 mod 13) → 25
	require.NoError(t, err)
	assert.Equal(t, 25, got, "negative residues normalize before combining")
}
