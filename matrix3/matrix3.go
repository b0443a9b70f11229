// SPDX-License-Identifier: MIT

package matrix3

import "github.com/katalvlaran/hillcrt/modarith"

// Size is the fixed dimension of every matrix and vector in this package.
const Size = 3

// Matrix3 is a 3×3 integer matrix, row-major, passed and returned by value.
type Matrix3 [Size][Size]int

// Vec3 is an ordered integer triple, one cipher block's worth of values.
type Vec3 [Size]int

// Identity returns the 3×3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Det returns the raw integer determinant via cofactor expansion along the
// first row. No modular reduction is applied: the CRT inverter reduces the
// same determinant under two different moduli, so reducing here would lose
// information.
func (m Matrix3) Det() int {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Adjugate returns the transpose of the cofactor matrix. Each cofactor is a
// signed 2×2 minor determinant with the usual alternating sign pattern.
// Entries are raw signed integers; callers reduce them modularly.
func (m Matrix3) Adjugate() Matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	// Cofactors C[r][c] of m, row by row.
	c00, c01, c02 := e*i-f*h, -(d*i - f*g), d*h-e*g
	c10, c11, c12 := -(b*i - c*h), a*i-c*g, -(a*h - b*g)
	c20, c21, c22 := b*f-c*e, -(a*f - c*d), a*e-b*d

	// adj(m) = cof(m)ᵀ.
	return Matrix3{
		{c00, c10, c20},
		{c01, c11, c21},
		{c02, c12, c22},
	}
}

// Mod returns m with every entry normalized into [0, mod).
// mod must be positive (precondition; all callers pass package constants).
func (m Matrix3) Mod(mod int) Matrix3 {
	var out Matrix3
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = modarith.PositiveMod(m[r][c], mod)
		}
	}

	return out
}

// ScaleMod returns m with every entry multiplied by scalar and reduced into
// [0, mod). Entries are normalized before multiplication so that negative
// intermediates behave identically to their canonical residues.
func (m Matrix3) ScaleMod(scalar, mod int) Matrix3 {
	s := modarith.PositiveMod(scalar, mod)

	var out Matrix3
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = modarith.PositiveMod(modarith.PositiveMod(m[r][c], mod)*s, mod)
		}
	}

	return out
}

// MulVec returns the matrix–vector product m·v with every component reduced
// into [0, mod). This is the per-block transform of the Hill cipher.
func (m Matrix3) MulVec(v Vec3, mod int) Vec3 {
	var out Vec3
	for r := 0; r < Size; r++ {
		sum := 0
		for c := 0; c < Size; c++ {
			sum += m[r][c] * v[c]
		}
		out[r] = modarith.PositiveMod(sum, mod)
	}

	return out
}

// Mul returns the matrix product m·o with every entry reduced into [0, mod).
// Used to verify the inversion invariant K·K⁻¹ ≡ I (mod 26).
func (m Matrix3) Mul(o Matrix3, mod int) Matrix3 {
	var out Matrix3
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sum := 0
			for k := 0; k < Size; k++ {
				sum += m[r][k] * o[k][c]
			}
			out[r][c] = modarith.PositiveMod(sum, mod)
		}
	}

	return out
}
