// Package hillcrt decrypts 3×3 Hill cipher messages by inverting the key
// matrix modulo 26 through the Chinese Remainder Theorem.
//
// 🚀 What is hillcrt?
//
//	A small, deterministic library (plus a thin CLI) built around one idea:
//	26 = 2 · 13, so a key matrix is inverted modulo 2 and modulo 13
//	independently, and the two partial inverses are recombined element-wise
//	via CRT into the inverse modulo 26.
//
// ✨ Why this layout?
//
//   - Pure value types: fixed 3×3 matrices, no allocation in the hot path
//   - Sentinel errors: every failure kind is a distinct errors.Is target
//   - No mutable globals: alphabet and moduli are package constants
//   - Deterministic: same key + same ciphertext always yields the same plaintext
//
// Under the hood, everything is organized under three subpackages:
//
//	modarith/ — extended Euclid, modular inverses, positive mod, generic CRT
//	matrix3/  — fixed 3×3 matrix algebra: determinant, adjugate, modular ops
//	hill/     — key parsing, CRT key inversion, block decoding
//
// The cmd/hillcrt binary wires the three together behind cobra flags and
// interactive prompts; it adds nothing algorithmic.
//
// Quick example:
//
//	inv, err := hill.InvertKey(key)   // key: matrix3.Matrix3 from hill.ParseKey
//	if err != nil { ... }             // not invertible mod 2 or mod 13
//	plain := hill.Decrypt("POH", inv) // "ACT" for the key GYBNQKURP
//
// Dive into each package's doc.go for the contracts, error taxonomy and
// worked examples.
package hillcrt
