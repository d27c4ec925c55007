// SPDX-License-Identifier: MIT

// Package approx - bit dumps for debugging rounding behaviour.
// Floats are split into sign, exponent and mantissa groups; integers into bytes.

package approx

import (
	"math"
	"strings"
)

// Bits32 renders the IEEE-754 bits of v as "s eeeeeeee mmm…" (1+8+23).
func Bits32(v float32) string {
	return dumpBits(uint64(math.Float32bits(v)), 32, []int{1, 9})
}

// Bits64 renders the IEEE-754 bits of v as "s eeeeeeeeeee mmm…" (1+11+52).
func Bits64(v float64) string {
	return dumpBits(math.Float64bits(v), 64, []int{1, 12})
}

// BitsU32 renders v MSB first in space-separated bytes.
func BitsU32(v uint32) string {
	return dumpBits(uint64(v), 32, []int{8, 16, 24})
}

// BitsI32 renders the two's-complement bits of v MSB first in bytes.
func BitsI32(v int32) string {
	return BitsU32(uint32(v))
}

// dumpBits writes the low n bits of v MSB first, inserting a space before
// every bit position listed in breaks.
func dumpBits(v uint64, n int, breaks []int) string {
	var b strings.Builder
	b.Grow(n + len(breaks))
	next := 0
	for i := 0; i < n; i++ {
		if next < len(breaks) && breaks[next] == i {
			b.WriteByte(' ')
			next++
		}
		if v&(1<<(n-1-i)) == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}

	return b.String()
}
