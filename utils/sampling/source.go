// Package sampling implements cryptographically secure sources of random
// bytes and uniformly distributed integers.
package sampling

import (
	"crypto/rand"
	"io"
)

// Source is an interface for cryptographically secure randomness. It extends
// io.Reader, which fills the given slice with unpredictable bytes, with
// primitives returning integers uniformly distributed over a half-open
// interval. A failure of the underlying entropy reader is fatal: without
// entropy no safe value can be produced, so implementations panic instead of
// degrading.
type Source interface {
	io.Reader

	// Int32n returns a uniformly distributed int32 in [low, high).
	Int32n(low, high int32) int32

	// Int64n returns a uniformly distributed int64 in [low, high).
	Int64n(low, high int64) int64
}

// SystemSource draws from the platform CSPRNG (crypto/rand).
type SystemSource struct {
}

// NewSystemSource returns a new SystemSource. It is safe for concurrent use.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// Read fills p with random bytes from the platform CSPRNG.
func (s *SystemSource) Read(p []byte) (n int, err error) {
	return rand.Read(p)
}

// Int32n returns a uniformly distributed int32 in [low, high).
func (s *SystemSource) Int32n(low, high int32) int32 {
	return Int32n(s, low, high)
}

// Int64n returns a uniformly distributed int64 in [low, high).
func (s *SystemSource) Int64n(low, high int64) int64 {
	return Int64n(s, low, high)
}
