package hill_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hillcrt/hill"
)

// BenchmarkInvertKey measures a full CRT inversion (determinant, adjugate,
// two partial inverses, recombination) of the classic key.
func BenchmarkInvertKey(b *testing.B) {
	key, err := hill.ParseKey("GYBNQKURP")
	if err != nil {
		b.Fatalf("ParseKey failed: %v", err)
	}

	b.ResetTimer() // ignore parsing
	for i := 0; i < b.N; i++ {
		if _, err = hill.InvertKey(key); err != nil {
			b.Fatalf("InvertKey failed: %v", err)
		}
	}
}

// BenchmarkDecrypt measures block decoding throughput on a 3000-letter text.
func BenchmarkDecrypt(b *testing.B) {
	key, err := hill.ParseKey("GYBNQKURP")
	if err != nil {
		b.Fatalf("ParseKey failed: %v", err)
	}
	inv, err := hill.InvertKey(key)
	if err != nil {
		b.Fatalf("InvertKey failed: %v", err)
	}
	text := strings.Repeat("POH", 1000)

	b.ResetTimer() // ignore key setup
	for i := 0; i < b.N; i++ {
		_ = hill.Decrypt(text, inv)
	}
}
