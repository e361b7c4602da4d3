package blend

import (
	"blend/pkg/fixed"
	"math"
	"math/big"

	"github.com/sirupsen/logrus"
)

const (
	// SupplyCompoundingPeriods suppliers compound weekly
	SupplyCompoundingPeriods = 52
	// BorrowCompoundingPeriods borrowers compound daily
	BorrowCompoundingPeriods = 365
)

// ConvertAPRtoAPY apy = (1 + apr/n)^n - 1
//
// Display only, computed on floats. APR above the rate ceiling is capped
// before exponentiation; a negative apr or a non-positive period count yields
// zero, which callers must read as unavailable.
func ConvertAPRtoAPY(apr float64, periods int) float64 {
	if periods <= 0 || apr < 0 || math.IsNaN(apr) {
		logrus.WithFields(logrus.Fields{
			"apr":     apr,
			"periods": periods,
		}).Warnln("convert apr to apy: invalid input")
		return 0
	}

	if maxAPR := fixed.ToFloat(MaxAPR, fixed.Decimals7); apr > maxAPR {
		apr = maxAPR
	}

	n := float64(periods)
	return math.Expm1(n * math.Log1p(apr/n))
}

// SupplyAPY weekly compounded supply apy
func SupplyAPY(apr float64) float64 {
	return ConvertAPRtoAPY(apr, SupplyCompoundingPeriods)
}

// BorrowAPY daily compounded borrow apy
func BorrowAPY(apr float64) float64 {
	return ConvertAPRtoAPY(apr, BorrowCompoundingPeriods)
}

// CalcSupplyAPR rate earned by suppliers
//
// supply_capture = (1 - backstop_take_rate) * cur_util
// supply_apr = cur_ir * supply_capture
//
// Both steps round down so suppliers are never over credited. Inputs outside
// [0, 1] yield zero, which callers must read as unavailable.
func CalcSupplyAPR(curIr, curUtil, backstopTakeRate *big.Int) *big.Int {
	inputs := []struct {
		name  string
		value *big.Int
	}{
		{"cur_ir", curIr},
		{"cur_util", curUtil},
		{"backstop_take_rate", backstopTakeRate},
	}

	for _, in := range inputs {
		if in.value == nil || in.value.Sign() < 0 || in.value.Cmp(fixed.Scalar7) > 0 {
			logrus.WithField(in.name, in.value).Warnln("calc supply apr: input out of range")
			return new(big.Int)
		}
	}

	supplyCapture := fixed.MulFloor(fixed.Sub(fixed.Scalar7, backstopTakeRate), curUtil, fixed.Scalar7)
	supplyAPR := fixed.MulFloor(curIr, supplyCapture, fixed.Scalar7)
	return fixed.Min(supplyAPR, MaxAPR)
}
