package linearmap

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// referenceHash follows the textbook definition with arbitrary precision:
// v += code_point * w, w *= 10, then floor(v / 10) mod capacity.
func referenceHash(key string, capacity uint64) uint64 {
	var (
		v   = new(big.Int)
		w   = big.NewInt(10)
		ten = big.NewInt(10)
	)

	for _, c := range key {
		v.Add(v, new(big.Int).Mul(big.NewInt(int64(c)), w))
		w.Mul(w, ten)
	}

	v.Quo(v, ten)

	return v.Mod(v, new(big.Int).SetUint64(capacity)).Uint64()
}

func TestPositionalHash(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		capacity uint64
		want     uint64
	}{
		{name: "Empty key", key: "", capacity: 1115, want: 0},
		{name: "Single char", key: "a", capacity: 5, want: 2},
		{name: "Single char collision", key: "f", capacity: 5, want: 2},
		{name: "Two chars", key: "ab", capacity: 1115, want: 1077},
		{name: "Three chars", key: "abc", capacity: 1115, want: 942},
		{name: "Capacity of one", key: "anything", capacity: 1, want: 0},
		{name: "Non-ASCII code point", key: "é", capacity: 1000, want: 233},
		{name: "Invalid UTF-8", key: "\xff", capacity: 1115, want: 863},
		{name: "Invalid UTF-8 between chars", key: "a\xffb", capacity: 1115, want: 687},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PositionalHash(tt.key, tt.capacity))
		})
	}
}

func TestPositionalHash_Deterministic(t *testing.T) {
	for _, key := range []string{"", "apple", "Zebra", "naïve café"} {
		require.Equal(t, PositionalHash(key, 1115), PositionalHash(key, 1115), "key %q", key)
	}
}

func TestPositionalHash_InvalidUTF8(t *testing.T) {
	tests := []struct {
		invalid string
		valid   string
	}{
		{"\xff", "\uFFFD"},
		{"a\xffb", "a\uFFFDb"},
		{"\xc3", "\uFFFD"},
		{"word\xe2\x82", "word\uFFFD\uFFFD"},
	}

	for _, tt := range tests {
		for _, capacity := range []uint64{1115, math.MaxUint64} {
			require.Equalf(t, PositionalHash(tt.valid, capacity), PositionalHash(tt.invalid, capacity),
				"%q must hash like %q", tt.invalid, tt.valid)
			require.Equal(t, referenceHash(tt.valid, capacity), PositionalHash(tt.invalid, capacity))
		}
	}
}

func TestPositionalHash_MatchesReference(t *testing.T) {
	keys := []string{
		"a",
		"abandon",
		"Abbreviation",
		"antidisestablishmentarianism",
		strings.Repeat("z", 200),
		"日本語のキー",
	}

	capacities := []uint64{
		2,
		7,
		1115,
		1 << 20,
		math.MaxUint32 + 15,
		math.MaxUint64,
	}

	for _, key := range keys {
		for _, capacity := range capacities {
			want := referenceHash(key, capacity)
			got := PositionalHash(key, capacity)

			require.Equalf(t, want, got, "PositionalHash(%q, %d) = %d, want %d", key, capacity, got, want)
			require.Less(t, got, capacity)
		}
	}
}
