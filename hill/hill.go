package hill

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcrt/matrix3"
	"github.com/katalvlaran/hillcrt/modarith"
)

// Sanitize strips every non-alphabetic character from text and uppercases
// the survivors, yielding a pure letter sequence. The result may be empty.
// Both keys and ciphertext go through this exact extraction, so "g y-b n!"
// and "GYBN" are interchangeable everywhere.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, ch := range text {
		switch {
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte(byte(ch))
		case ch >= 'a' && ch <= 'z':
			b.WriteByte(byte(ch - 'a' + 'A'))
		}
	}

	return b.String()
}

// ParseKey builds the 3×3 key matrix from raw user input.
//
// Non-letters are stripped and the rest uppercased (Sanitize); exactly
// KeyLength letters must remain or ErrKeyLength is returned. Letters fill
// the matrix row-major: characters 0–2 become row 0, 3–5 row 1, 6–8 row 2.
//
// Note: a 10-letter input such as "HILLCIPHER" is rejected outright, never
// silently truncated to 9.
func ParseKey(raw string) (matrix3.Matrix3, error) {
	cleaned := Sanitize(raw)
	if len(cleaned) != KeyLength {
		return matrix3.Matrix3{}, fmt.Errorf("%w: got %d", ErrKeyLength, len(cleaned))
	}

	var key matrix3.Matrix3
	for i := 0; i < KeyLength; i++ {
		key[i/matrix3.Size][i%matrix3.Size] = int(cleaned[i] - 'A')
	}

	return key, nil
}

// InvertKey computes the inverse of key modulo 26 via CRT over 26 = 2·13.
//
// Algorithm:
//  1. Compute the raw integer determinant and adjugate once, unreduced.
//  2. Reduce the determinant modulo 2 and modulo 13 separately; a zero
//     residue means the matrix is not invertible mod 26; fail immediately,
//     naming the offending modulus, before any CRT work.
//  3. Invert each determinant residue under its own modulus. Both moduli are
//     prime, so after step 2 an inverse must exist; its absence is surfaced
//     as ErrInverseAbsent (an internal fault, checked defensively).
//  4. Reduce the adjugate modulo 2 and modulo 13 independently, scale each
//     by the matching determinant inverse: two full partial inverses, each
//     valid only under its own modulus.
//  5. Recombine element-wise: x = bm·r2 + bn·r13 (mod 26), with the basis
//     pair (bm, bn) derived generically from the Bézout coefficients of
//     (2, 13); it resolves to (13, 14).
//
// The result has every entry in [0, 26) and satisfies
// key.Mul(inv, 26) == matrix3.Identity().
//
// Errors:
//
//	– ErrKeyNotInvertibleMod2   if det ≡ 0 (mod 2).
//	– ErrKeyNotInvertibleMod13  if det ≡ 0 (mod 13).
//	– ErrInverseAbsent          defensive; indicates an internal fault.
//
// Complexity: O(1) time and space (fixed 3×3).
func InvertKey(key matrix3.Matrix3) (matrix3.Matrix3, error) {
	// 1) Raw determinant and adjugate, computed once, never reduced here.
	det := key.Det()
	adj := key.Adjugate()

	// 2) Coprimality with 26, factor by factor. Order matches the moduli.
	det2 := modarith.PositiveMod(det, Mod2)
	if det2 == 0 {
		return matrix3.Matrix3{}, fmt.Errorf("%w: det = %d", ErrKeyNotInvertibleMod2, det)
	}
	det13 := modarith.PositiveMod(det, Mod13)
	if det13 == 0 {
		return matrix3.Matrix3{}, fmt.Errorf("%w: det = %d", ErrKeyNotInvertibleMod13, det)
	}

	// 3) Determinant inverses under each prime factor.
	detInv2, err := modarith.ModInverse(det2, Mod2)
	if err != nil {
		return matrix3.Matrix3{}, fmt.Errorf("%w: modulus %d: %v", ErrInverseAbsent, Mod2, err)
	}
	detInv13, err := modarith.ModInverse(det13, Mod13)
	if err != nil {
		return matrix3.Matrix3{}, fmt.Errorf("%w: modulus %d: %v", ErrInverseAbsent, Mod13, err)
	}

	// 4) Partial inverses: inv_p = det⁻¹ · adj (mod p), for p ∈ {2, 13}.
	inv2 := adj.Mod(Mod2).ScaleMod(detInv2, Mod2)
	inv13 := adj.Mod(Mod13).ScaleMod(detInv13, Mod13)

	// 5) Element-wise CRT recombination. The basis is derived, not assumed;
	//    CRTBasis(2, 13) cannot fail after the prime moduli passed step 3,
	//    but the error is still propagated rather than discarded.
	bm, bn, err := modarith.CRTBasis(Mod2, Mod13)
	if err != nil {
		return matrix3.Matrix3{}, fmt.Errorf("%w: %v", ErrInverseAbsent, err)
	}

	var inv matrix3.Matrix3
	for r := 0; r < matrix3.Size; r++ {
		for c := 0; c < matrix3.Size; c++ {
			inv[r][c] = modarith.PositiveMod(bm*inv2[r][c]+bn*inv13[r][c], AlphabetSize)
		}
	}

	return inv, nil
}

// Decrypt applies the inverse key to ciphertext and returns the plaintext.
//
// The input is sanitized (non-letters stripped, rest uppercased), right-
// padded with the padding letter to a multiple of BlockSize, partitioned
// into consecutive triples in original order, and each triple is multiplied
// by inv modulo 26 and mapped back to letters. Block order is preserved;
// padding letters are decrypted like real ciphertext and never trimmed.
//
// Decrypt cannot fail: an input that sanitizes to "" yields "" (no blocks,
// no padding). The output length is the cleaned input length rounded up to
// the next multiple of BlockSize.
func Decrypt(ciphertext string, inv matrix3.Matrix3, opts ...Option) string {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Letter extraction; an empty survivor set short-circuits to "".
	clean := Sanitize(ciphertext)
	if clean == "" {
		return ""
	}

	// 3) Right-pad to a whole number of blocks (0, 1 or 2 letters).
	if rem := len(clean) % BlockSize; rem != 0 {
		clean += strings.Repeat(string(cfg.Padding), BlockSize-rem)
	}

	// 4) Per-block transform, consecutive non-overlapping triples in order.
	var b strings.Builder
	b.Grow(len(clean))
	for i := 0; i < len(clean); i += BlockSize {
		var block matrix3.Vec3
		for j := 0; j < BlockSize; j++ {
			block[j] = int(clean[i+j] - 'A')
		}
		plain := inv.MulVec(block, AlphabetSize)
		for j := 0; j < BlockSize; j++ {
			b.WriteByte(Alphabet[plain[j]])
		}
	}

	return b.String()
}

// DecryptWithKey is the one-call pipeline: ParseKey → InvertKey → Decrypt.
// It is what the CLI invokes; library callers that decrypt several messages
// under one key should invert once and call Decrypt directly.
//
// Errors: those of ParseKey and InvertKey. On error the plaintext is "" and
// no partial output is produced.
func DecryptWithKey(rawKey, ciphertext string, opts ...Option) (string, error) {
	key, err := ParseKey(rawKey)
	if err != nil {
		return "", err
	}

	inv, err := InvertKey(key)
	if err != nil {
		return "", err
	}

	return Decrypt(ciphertext, inv, opts...), nil
}
