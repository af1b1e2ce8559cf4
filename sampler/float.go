package sampler

import (
	"fmt"
	"math"
)

// Float64 returns a random value scaled by max: a uniform unit fraction in
// (0, 1] multiplied by max, so the result carries the sign of max and lies
// between 0 (exclusive) and max.
//
// If max is exactly zero, the fraction is instead scaled by the smallest
// value of the float64 domain, -math.MaxFloat64, yielding a large negative
// value.
func (s *Sampler) Float64(max float64) float64 {
	if max == 0 {
		return s.UnitFloat64() * -math.MaxFloat64
	}
	return s.UnitFloat64() * max
}

// Float64Range returns a value v with min <= v <= max, or ErrInvalidRange if
// min > max.
//
// Candidates are produced by rejection sampling: each draw scales the unit
// fraction by -math.MaxFloat64 when min is negative, or by max otherwise,
// and is accepted when it lands inside [min, max]. The natural spread of a
// draw is dictated by the scale factor, so for narrow target ranges the loop
// may never converge; after retryBudget draws without acceptance the sampler
// falls back to an exact integer draw over [round(min), round(max)]. Retry
// exhaustion is therefore never an error: every call terminates with a
// value.
func (s *Sampler) Float64Range(min, max float64) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	for i := 0; i < retryBudget; i++ {
		var v float64
		if min < 0 {
			v = s.UnitFloat64() * -math.MaxFloat64
		} else {
			v = s.Float64(max)
		}
		if min <= v && v <= max {
			return v, nil
		}
	}
	lo := fallbackBound(min)
	hi := fallbackBound(max)
	return float64(s.src.Int64n(lo, hi+1)), nil
}

// fallbackBound rounds x to the nearest integer, clamped into
// [MinInt64, MaxInt64-1] so that the inclusive fallback draw [lo, hi] stays
// inside the integer sampler's domain and hi+1 cannot overflow.
func fallbackBound(x float64) int64 {
	r := math.Round(x)
	if r >= math.MaxInt64 {
		return math.MaxInt64 - 1
	}
	if r <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(r)
}
