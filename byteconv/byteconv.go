// Package byteconv converts 8-bit unsigned integers to and from their
// textual representation under a conventions profile. Formatting and parsing
// are pure functions; the only shared state they may touch is the
// process-wide conventions snapshot, which is read atomically per call.
package byteconv

import (
	"github.com/zeebo/xxh3"
)

const (
	// MinValue is the smallest representable value.
	MinValue uint8 = 0
	// MaxValue is the largest representable value.
	MaxValue uint8 = 255
)

// Compare returns 0 if the two values are equal, -1 if the first value is
// smaller and 1 if the first value is larger.
func Compare(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal checks whether the two values are equal.
func Equal(a, b uint8) bool {
	return a == b
}

// Sum64 returns a stable 64-bit hash of the given value.
func Sum64(value uint8) uint64 {
	return xxh3.Hash([]byte{value})
}
