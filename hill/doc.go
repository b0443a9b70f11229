// Package hill decrypts 3×3 Hill cipher messages over the Latin alphabet.
//
// The key matrix is inverted modulo 26 by the Chinese Remainder Theorem:
// since 26 = 2·13 with coprime prime factors, the inverse is computed
// independently modulo 2 and modulo 13 (adjugate times determinant-inverse
// under each modulus) and the two partial inverses are recombined
// element-wise into the inverse modulo 26.
//
// Pipeline:
//
//	raw key ──ParseKey──▶ Matrix3 ──InvertKey──▶ inverse Matrix3
//	raw text ──Sanitize──▶ letters ──Decrypt(inverse)──▶ plaintext
//
// Guarantees:
//
//   - InvertKey(K) satisfies K.Mul(inv, 26) == matrix3.Identity().
//   - Decrypt never fails: empty cleaned input yields "", short trailing
//     blocks are right-padded (default 'X') and the padding is decrypted
//     like any other letter, never trimmed from the output.
//   - Everything is pure and deterministic; there is no hidden state.
//
// Errors (sentinel):
//
//	– ErrKeyLength              if the key has ≠ 9 letters after stripping.
//	– ErrKeyNotInvertibleMod2   if det(K) ≡ 0 (mod 2).
//	– ErrKeyNotInvertibleMod13  if det(K) ≡ 0 (mod 13).
//	– ErrInverseAbsent          defensive; an internal fault, never bad input.
//
// Example usage:
//
//	plain, err := hill.DecryptWithKey("GYBNQKURP", "POH")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plain) // ACT
package hill
