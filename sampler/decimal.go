package sampler

import (
	"fmt"
	"math"
	"math/big"

	"github.com/quantale/sortition/utils/bignum"
)

// Decimal returns a random decimal value scaled by max: a uniform unit
// fraction in (0, 1] multiplied by max under decimal arithmetic, so the
// result carries the sign of max. The input is never mutated.
//
// If max is exactly zero, the fraction is instead scaled by the smallest
// value of the decimal domain, bignum.MinDecimal, mirroring the float64
// behavior.
func (s *Sampler) Decimal(max *big.Float) *big.Float {
	if max.Sign() == 0 {
		return decMul(s.UnitDecimal(), bignum.MinDecimal())
	}
	return decMul(s.UnitDecimal(), max)
}

// DecimalRange returns a decimal value v with min <= v <= max, or
// ErrInvalidRange if min > max. Neither input is mutated.
//
// The sampling strategy is identical to Float64Range, parameterized by
// decimal arithmetic: rejection sampling with candidates scaled by
// bignum.MinDecimal when min is negative or by max otherwise, and an exact
// integer fallback over [round(min), round(max)] once retryBudget draws have
// been rejected.
func (s *Sampler) DecimalRange(min, max *big.Float) (*big.Float, error) {
	if min.Cmp(max) > 0 {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrInvalidRange, min.Text('g', 12), max.Text('g', 12))
	}
	for i := 0; i < retryBudget; i++ {
		var v *big.Float
		if min.Sign() < 0 {
			v = decMul(s.UnitDecimal(), bignum.MinDecimal())
		} else {
			v = s.Decimal(max)
		}
		if min.Cmp(v) <= 0 && v.Cmp(max) <= 0 {
			return v, nil
		}
	}
	// Bounds beyond the int64 domain saturate; pull them below MaxInt64 so
	// that the inclusive draw [lo, hi] cannot overflow on hi+1.
	lo, _ := bignum.Round(min).Int64()
	hi, _ := bignum.Round(max).Int64()
	if lo == math.MaxInt64 {
		lo = math.MaxInt64 - 1
	}
	if hi == math.MaxInt64 {
		hi = math.MaxInt64 - 1
	}
	return bignum.NewDecimal(s.src.Int64n(lo, hi+1)), nil
}

func decMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bignum.DecimalPrec).Mul(a, b)
}
