package linearmap

import "math/bits"

// HashFunc maps a key to a start index in [0, capacity).
// The table reduces the result modulo capacity once more, so a custom
// function returning larger values is still safe.
type HashFunc func(key string, capacity uint64) uint64

// PositionalHash weights every code point of the key by a growing power of
// ten (1, 10, 100, ...) and reduces the sum modulo capacity.
//
// It is equal to floor(v/10) mod capacity, where v accumulates
// code_point(c) * 10^(i+1): since v is always a multiple of ten the division
// just shifts every weight down by one power. The sum is evaluated modulo
// capacity step by step, so keys of any length never overflow.
func PositionalHash(key string, capacity uint64) uint64 {
	if capacity == 1 {
		return 0
	}

	var (
		sum    uint64
		weight = uint64(1)
	)

	for _, c := range key {
		sum = addMod(sum, mulMod(uint64(c)%capacity, weight, capacity), capacity)
		weight = mulMod(weight, 10%capacity, capacity)
	}

	return sum
}

// a and b must already be reduced modulo m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// a and b must already be reduced modulo m.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	return bits.Rem64(carry, sum, m)
}
