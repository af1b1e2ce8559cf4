package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
)

// RandUint32 returns a random value between 0 and 0xFFFFFFFF.
func RandUint32(src io.Reader) uint32 {
	b := make([]byte, 4)
	if _, err := src.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(b)
}

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64(src io.Reader) uint64 {
	b := make([]byte, 8)
	if _, err := src.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Uint64n returns a uniformly distributed uint64 in [0, n) without modulo
// bias. Draws are masked to the smallest power-of-two bound covering n and
// rejected until one falls below n. Panics if n == 0.
func Uint64n(src io.Reader, n uint64) uint64 {
	if n == 0 {
		panic("sampling: invalid upper bound 0")
	}
	if n&(n-1) == 0 {
		// n is a power of two, the mask alone is exact
		return RandUint64(src) & (n - 1)
	}
	mask := ^uint64(0) >> bits.LeadingZeros64(n-1)
	for {
		if v := RandUint64(src) & mask; v < n {
			return v
		}
	}
}

// Uint32n returns a uniformly distributed uint32 in [0, n) without modulo
// bias. Panics if n == 0.
func Uint32n(src io.Reader, n uint32) uint32 {
	if n == 0 {
		panic("sampling: invalid upper bound 0")
	}
	if n&(n-1) == 0 {
		return RandUint32(src) & (n - 1)
	}
	mask := ^uint32(0) >> bits.LeadingZeros32(n-1)
	for {
		if v := RandUint32(src) & mask; v < n {
			return v
		}
	}
}

// Int32n returns a uniformly distributed int32 in [low, high).
// Panics if low >= high.
func Int32n(src io.Reader, low, high int32) int32 {
	if low >= high {
		panic(fmt.Sprintf("sampling: invalid interval [%d, %d)", low, high))
	}
	span := uint64(int64(high) - int64(low))
	return low + int32(Uint64n(src, span))
}

// Int64n returns a uniformly distributed int64 in [low, high).
// Panics if low >= high.
func Int64n(src io.Reader, low, high int64) int64 {
	if low >= high {
		panic(fmt.Sprintf("sampling: invalid interval [%d, %d)", low, high))
	}
	// Two's complement subtraction yields the correct span even when the
	// interval straddles zero or covers most of the int64 domain.
	span := uint64(high) - uint64(low)
	return low + int64(Uint64n(src, span))
}
