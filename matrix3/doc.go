// SPDX-License-Identifier: MIT

// Package matrix3 implements fixed-size 3×3 integer matrix algebra for
// modular block ciphers.
//
// The package deliberately uses compile-time-sized value types
// ([3][3]int, [3]int) instead of dynamically sized containers:
//
//   - Bounds safety: every index is known valid at compile time.
//   - Zero allocation: matrices and vectors are copied by value; the hot
//     arithmetic path never touches the heap.
//   - Determinism: all loops run in fixed row→column order.
//
// Entries may hold negative intermediates (raw determinants, cofactors);
// the modular operations (Mod, ScaleMod, MulVec, Mul) normalize every
// result into [0, mod) via modarith.PositiveMod. Det and Adjugate are the
// two deliberately unreduced operations: the CRT inverter needs the raw
// integer values so it can reduce them under two different moduli.
//
// All methods are pure; no receiver is ever mutated.
package matrix3
