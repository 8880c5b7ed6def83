// Package bitutil provides small bit-level helpers shared by the
// algorithm packages in this repository.
package bitutil

import (
	"math/bits"
	"strings"
)

// MostSignificantBit returns the index of the most significant set bit.
// It returns -1 for x == 0.
func MostSignificantBit(x uint64) int {
	if x == 0 {
		return -1
	}
	// 63 - bits.LeadingZeros64(x) behaves identically to
	// 63 - __builtin_clzll(x)
	return 63 - bits.LeadingZeros64(x)
}

// OnesMask returns a value with the width lowest bits set.
// width outside [0, 64] is clamped to that range.
func OnesMask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// IsPowerOfTwo reports whether x has exactly one set bit.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// FormatBinary renders n in base 2 without leading zeros, "0" for zero.
//
// The digits are produced most significant first by recursing on n/2 and
// emitting n%2 on the way back up.
func FormatBinary(n uint64) string {
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(MostSignificantBit(n) + 1)
	appendBinary(&sb, n)
	return sb.String()
}

func appendBinary(sb *strings.Builder, n uint64) {
	if n == 0 {
		return
	}
	appendBinary(sb, n/2)
	sb.WriteByte(byte('0' + n%2))
}
