package fixed

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// Decimals7 scale of rates, utilization, shares and token amounts
	Decimals7 int32 = 7
	// Decimals12 scale of the b/d token index rates
	Decimals12 int32 = 12
)

var (
	// Scalar7 1.0 at 7 decimals, must not be mutated
	Scalar7 = big.NewInt(10_000_000)
	// Scalar12 1.0 at 12 decimals, must not be mutated
	Scalar12 = big.NewInt(1_000_000_000_000)

	one       = big.NewInt(1)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(one, 127))
)

// ArithmeticError is raised (as a panic) when a value leaves the signed
// 128-bit range or a division by zero is attempted. It is never recovered
// inside this module.
type ArithmeticError struct {
	Op     string
	Reason string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("fixed: %s: %s", e.Op, e.Reason)
}

type rounding int

const (
	roundFloor rounding = iota
	roundCeil
)

// New fixed point integer from raw units
func New(v int64) *big.Int {
	return big.NewInt(v)
}

// Scalar returns 10^decimals
func Scalar(decimals int32) *big.Int {
	switch decimals {
	case Decimals7:
		return new(big.Int).Set(Scalar7)
	case Decimals12:
		return new(big.Int).Set(Scalar12)
	}

	if decimals < 0 {
		panic(&ArithmeticError{Op: "scalar", Reason: "negative decimals"})
	}

	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// MulFloor a*b/scalar rounded toward negative infinity
func MulFloor(a, b, scalar *big.Int) *big.Int {
	return mulDiv("mul_floor", a, b, scalar, roundFloor)
}

// MulCeil a*b/scalar rounded toward positive infinity
func MulCeil(a, b, scalar *big.Int) *big.Int {
	return mulDiv("mul_ceil", a, b, scalar, roundCeil)
}

// DivFloor a*scalar/b rounded toward negative infinity
func DivFloor(a, b, scalar *big.Int) *big.Int {
	return mulDiv("div_floor", a, scalar, b, roundFloor)
}

// DivCeil a*scalar/b rounded toward positive infinity
func DivCeil(a, b, scalar *big.Int) *big.Int {
	return mulDiv("div_ceil", a, scalar, b, roundCeil)
}

// MulDivFloor x*y/denominator rounded toward negative infinity
func MulDivFloor(x, y, denominator *big.Int) *big.Int {
	return mulDiv("mul_div_floor", x, y, denominator, roundFloor)
}

// MulDivCeil x*y/denominator rounded toward positive infinity
func MulDivCeil(x, y, denominator *big.Int) *big.Int {
	return mulDiv("mul_div_ceil", x, y, denominator, roundCeil)
}

func mulDiv(op string, x, y, denominator *big.Int, mode rounding) *big.Int {
	d := orZero(denominator)
	if d.Sign() == 0 {
		panic(&ArithmeticError{Op: op, Reason: "division by zero"})
	}

	product := new(big.Int).Mul(orZero(x), orZero(y))
	mustFit(op, product)

	q, r := new(big.Int).QuoRem(product, d, new(big.Int))
	if r.Sign() != 0 {
		// QuoRem truncates toward zero
		negative := (product.Sign() < 0) != (d.Sign() < 0)
		switch {
		case mode == roundFloor && negative:
			q.Sub(q, one)
		case mode == roundCeil && !negative:
			q.Add(q, one)
		}
	}

	mustFit(op, q)
	return q
}

// Mul checked a*b without rescaling, for scaling by plain integers
func Mul(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(orZero(a), orZero(b))
	mustFit("mul", product)
	return product
}

// Add checked a+b
func Add(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(orZero(a), orZero(b))
	mustFit("add", sum)
	return sum
}

// Sub checked a-b
func Sub(a, b *big.Int) *big.Int {
	diff := new(big.Int).Sub(orZero(a), orZero(b))
	mustFit("sub", diff)
	return diff
}

// Min returns a copy of the smaller value
func Min(a, b *big.Int) *big.Int {
	if orZero(a).Cmp(orZero(b)) <= 0 {
		return new(big.Int).Set(orZero(a))
	}
	return new(big.Int).Set(orZero(b))
}

// Max returns a copy of the larger value
func Max(a, b *big.Int) *big.Int {
	if orZero(a).Cmp(orZero(b)) >= 0 {
		return new(big.Int).Set(orZero(a))
	}
	return new(big.Int).Set(orZero(b))
}

// Clamp bounds v into [lo, hi]
func Clamp(v, lo, hi *big.Int) *big.Int {
	return Min(Max(v, lo), hi)
}

// ToFixed converts a float into a fixed point integer with the given
// decimals, rounding half away from zero.
func ToFixed(v float64, decimals int32) *big.Int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(&ArithmeticError{Op: "to_fixed", Reason: fmt.Sprintf("%v is not finite", v)})
	}

	out := decimal.NewFromFloat(v).Shift(decimals).Round(0).BigInt()
	mustFit("to_fixed", out)
	return out
}

// ToFloat converts a fixed point integer into a float. The result is an
// approximation and must only be used for display.
func ToFloat(v *big.Int, decimals int32) float64 {
	f, _ := ToDecimal(v, decimals).Float64()
	return f
}

// FromDecimal converts a decimal into a fixed point integer, flooring any
// digits beyond the scale.
func FromDecimal(d decimal.Decimal, decimals int32) *big.Int {
	out := d.Shift(decimals).Floor().BigInt()
	mustFit("from_decimal", out)
	return out
}

// ToDecimal exact decimal representation of a fixed point integer
func ToDecimal(v *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(orZero(v), -decimals)
}

func mustFit(op string, v *big.Int) {
	if v.Cmp(maxInt128) > 0 || v.Cmp(minInt128) < 0 {
		panic(&ArithmeticError{Op: op, Reason: "overflows 128 bits"})
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
