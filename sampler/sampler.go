// Package sampler implements a cryptographically secure provider of uniform
// random values over several numeric domains: bytes, 32- and 64-bit
// integers, floating-point and fixed-precision decimal fractions. On top of
// the primitive draws it offers bounded-range sampling over arbitrary
// [min, max] windows, random selection with replacement and unbiased
// shuffling, all drawing from an injectable sampling.Source.
package sampler

import (
	"fmt"
	"math/big"

	"github.com/quantale/sortition/utils/bignum"
	"github.com/quantale/sortition/utils/sampling"
)

// retryBudget bounds the rejection loop of the ranged float and decimal
// samplers. When it is exhausted the sampler falls back to an exact integer
// draw over the rounded bounds, so every call terminates with an in-range
// value.
const retryBudget = 1000

// unitResolution is the granularity of the unit fraction draw: fractions
// are multiples of 1/100 in (0, 1].
const unitResolution = 100

// Sampler draws uniform random values from a sampling.Source. It holds no
// mutable state of its own and is safe for concurrent use whenever its
// source is.
type Sampler struct {
	src sampling.Source
}

// New returns a Sampler backed by the platform CSPRNG.
func New() *Sampler {
	return NewSampler(sampling.NewSystemSource())
}

// NewSampler returns a Sampler drawing from src.
func NewSampler(src sampling.Source) *Sampler {
	return &Sampler{src: src}
}

// Byte returns a single uniformly random byte.
func (s *Sampler) Byte() byte {
	var b [1]byte
	s.mustRead(b[:])
	return b[0]
}

// Bytes returns n uniformly random bytes.
func (s *Sampler) Bytes(n int) []byte {
	b := make([]byte, n)
	s.mustRead(b)
	return b
}

// Uint32 returns a uniformly random uint32 over the full domain.
func (s *Sampler) Uint32() uint32 {
	return sampling.RandUint32(s.src)
}

// Uint64 returns a uniformly random uint64 over the full domain.
func (s *Sampler) Uint64() uint64 {
	return sampling.RandUint64(s.src)
}

// Int32 returns a uniformly distributed int32 in [min, maxExclusive).
// Returns ErrInvalidRange if the interval is empty or reversed.
func (s *Sampler) Int32(min, maxExclusive int32) (int32, error) {
	if min >= maxExclusive {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, maxExclusive)
	}
	return s.src.Int32n(min, maxExclusive), nil
}

// Int64 returns a uniformly distributed int64 in [min, maxExclusive).
// Returns ErrInvalidRange if the interval is empty or reversed.
func (s *Sampler) Int64(min, maxExclusive int64) (int64, error) {
	if min >= maxExclusive {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, maxExclusive)
	}
	return s.src.Int64n(min, maxExclusive), nil
}

// UnitFloat64 returns a uniform fraction in (0.0, 1.0].
//
// The draw has a resolution of 1/100: results are always multiples of 0.01.
// This is a coarse uniform fraction, not a full-precision float; callers
// needing finer granularity should draw integers and scale themselves.
func (s *Sampler) UnitFloat64() float64 {
	return float64(s.src.Int64n(1, unitResolution+1)) / float64(unitResolution)
}

// UnitDecimal returns a uniform fraction in (0, 1] with the same 1/100
// resolution as UnitFloat64, but computed with decimal division semantics at
// bignum.DecimalPrec bits, so decimal consumers see no binary-fraction
// rounding artifacts.
func (s *Sampler) UnitDecimal() *big.Float {
	k := s.src.Int64n(1, unitResolution+1)
	return new(big.Float).SetPrec(bignum.DecimalPrec).Quo(bignum.NewDecimal(k), bignum.NewDecimal(unitResolution))
}

func (s *Sampler) mustRead(p []byte) {
	if _, err := s.src.Read(p); err != nil {
		panic(err)
	}
}
