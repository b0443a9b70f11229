// Package hill: constants, sentinel errors and functional options.
// The alphabet and moduli live here as package constants; no mutable global
// state exists anywhere in the package.

package hill

import "errors"

// Cipher alphabet and its CRT factorization. AlphabetSize = Mod2 · Mod13 with
// coprime (prime) factors, which is exactly what the CRT inverter relies on.
const (
	// Alphabet is the cipher alphabet; a letter's value is its index.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// AlphabetSize is the working modulus of every cipher operation.
	AlphabetSize = 26

	// Mod2 and Mod13 are the coprime prime factors of AlphabetSize.
	Mod2  = 2
	Mod13 = 13

	// BlockSize is the cipher block length in letters (fixed 3×3 key).
	BlockSize = 3

	// KeyLength is the exact number of letters a key must contain, row-major.
	KeyLength = 9

	// DefaultPadding right-pads a short trailing block.
	DefaultPadding = byte('X')
)

// Sentinel errors returned by the hill package.
var (
	// ErrKeyLength indicates that the key did not contain exactly KeyLength
	// alphabetic characters after stripping non-letters. No matrix is built.
	ErrKeyLength = errors.New("hill: key must contain exactly 9 alphabetic characters")

	// ErrKeyNotInvertibleMod2 indicates det(K) ≡ 0 (mod 2): the key matrix
	// has no inverse modulo 26 and decryption cannot proceed.
	ErrKeyNotInvertibleMod2 = errors.New("hill: key determinant is 0 modulo 2, matrix not invertible mod 26")

	// ErrKeyNotInvertibleMod13 indicates det(K) ≡ 0 (mod 13), the other way
	// coprimality with 26 can fail. Reported separately from the mod-2 case
	// so callers know which factor vanished.
	ErrKeyNotInvertibleMod13 = errors.New("hill: key determinant is 0 modulo 13, matrix not invertible mod 26")

	// ErrInverseAbsent signals that a determinant residue had no modular
	// inverse even though its nonzero-ness was already checked under a prime
	// modulus. This is an internal logic fault, not bad user input; it is
	// surfaced rather than swallowed so a bug cannot decrypt garbage.
	ErrInverseAbsent = errors.New("hill: determinant residue has no modular inverse")
)

// Options configures decryption.
//
// Padding – letter appended to a short trailing block (must be 'A'..'Z').
//
//	Default is DefaultPadding ('X'). Padding letters pass through
//	the block transform like real ciphertext and are never trimmed
//	from the returned plaintext.
type Options struct {
	Padding byte // Right-padding letter for the final short block
}

// Option represents a functional option for configuring decryption.
type Option func(*Options)

// WithPadding sets the padding letter for short trailing blocks.
// The letter must be an uppercase 'A'..'Z'; anything else panics, since a
// non-alphabet padding byte is a programmer error, not a runtime condition.
func WithPadding(letter byte) Option {
	return func(o *Options) {
		if letter < 'A' || letter > 'Z' {
			panic("hill: padding letter must be in 'A'..'Z'")
		}
		o.Padding = letter
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Padding = 'X', matching the classic Hill cipher convention.
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding}
}
