// Package bignum provides fixed-precision decimal arithmetic for the decimal
// sampling domain, built on big.Float.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// DecimalPrec is the precision, in bits, at which all decimal values are
// carried. 128 bits comfortably covers the 96-bit significand of the decimal
// domain.
const DecimalPrec = 128

// minDecimal is -(2^96 - 1), the smallest value of the decimal domain.
const minDecimal = "-79228162514264337593543950335"

// NewDecimal creates a new big.Float element with DecimalPrec bits of
// precision. Valid types for x are: int, int64, uint, uint64, float64,
// string, *big.Int or *big.Float.
func NewDecimal(x interface{}) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(DecimalPrec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case string:
		if _, ok := y.SetString(x); !ok {
			panic(fmt.Errorf("invalid decimal string: %q", x))
		}
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, string, *big.Int or *big.Float but is %T", x))
	}

	return
}

// MinDecimal returns the smallest representable value of the decimal domain,
// -(2^96 - 1).
func MinDecimal() *big.Float {
	return NewDecimal(minDecimal)
}

// Round returns round(x), rounding halves away from zero.
func Round(x *big.Float) (r *big.Float) {
	r = new(big.Float).Set(x)
	if r.Cmp(new(big.Float)) >= 0 {
		r.Add(r, new(big.Float).SetFloat64(0.5))
	} else {
		r.Sub(r, new(big.Float).SetFloat64(0.5))
	}

	tmp := new(big.Int)
	r.Int(tmp)
	r.SetInt(tmp)
	return
}

// PowOfTen returns 10^n with DecimalPrec bits of precision.
func PowOfTen(n int) *big.Float {
	return bigfloat.Pow(NewDecimal(10), NewDecimal(n))
}

// Quantize returns x rounded to the given number of decimal places.
func Quantize(x *big.Float, places int) *big.Float {
	scale := PowOfTen(places)
	r := new(big.Float).SetPrec(DecimalPrec).Mul(x, scale)
	return r.Quo(Round(r), scale)
}
