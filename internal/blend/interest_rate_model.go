package blend

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
)

var (
	// SecondsPerYear seconds per year
	SecondsPerYear = big.NewInt(31_536_000)
	// EmergencyUtilization utilization where the third slope starts, 0.95
	EmergencyUtilization = big.NewInt(9_500_000)
	// EmergencyBand width of the third slope, 0.05
	EmergencyBand = big.NewInt(500_000)
	// MaxAPR global ceiling for computed rates, 1000%
	MaxAPR = big.NewInt(100_000_000)
	// MinRateModifier the reactive modifier never decays below 1.0
	MinRateModifier = big.NewInt(10_000_000)
	// MaxRateModifier the reactive modifier never grows above 10.0
	MaxRateModifier = big.NewInt(100_000_000)
)

// CalcKinkedInterestRate borrow rate of a reserve for the given utilization
//
// u <= target:        rate = (u/target * r_one + r_base) * ir_mod
// target < u <= 0.95: rate = ((u-target)/(0.95-target) * r_two + r_one + r_base) * ir_mod
// u > 0.95:           rate = (u-0.95)/0.05 * r_three + ir_mod * (r_two + r_one + r_base)
//
// Every step rounds down and the result is clamped to MaxAPR.
func CalcKinkedInterestRate(utilization *big.Int, cfg *core.InterestRateConfig) (*big.Int, error) {
	if utilization == nil || utilization.Sign() < 0 || utilization.Cmp(fixed.Scalar7) > 0 {
		return nil, core.ErrInvalidUtilization
	}

	if result := ValidateInterestRateConfig(cfg); !result.IsValid {
		return nil, core.ErrInvalidRateConfig
	}

	target := cfg.TargetUtilization
	var rate *big.Int

	switch {
	case utilization.Cmp(target) <= 0:
		utilScalar := fixed.DivFloor(utilization, target, fixed.Scalar7)
		baseRate := fixed.Add(fixed.MulFloor(utilScalar, cfg.ROne, fixed.Scalar7), cfg.RBase)
		rate = fixed.MulFloor(baseRate, cfg.InterestRateModifier, fixed.Scalar7)
	case utilization.Cmp(EmergencyUtilization) <= 0:
		utilScalar := fixed.DivFloor(
			fixed.Sub(utilization, target),
			fixed.Sub(EmergencyUtilization, target),
			fixed.Scalar7,
		)
		baseRate := fixed.Add(fixed.MulFloor(utilScalar, cfg.RTwo, fixed.Scalar7), fixed.Add(cfg.ROne, cfg.RBase))
		rate = fixed.MulFloor(baseRate, cfg.InterestRateModifier, fixed.Scalar7)
	default:
		utilScalar := fixed.DivFloor(fixed.Sub(utilization, EmergencyUtilization), EmergencyBand, fixed.Scalar7)
		extraRate := fixed.MulFloor(utilScalar, cfg.RThree, fixed.Scalar7)
		intersection := fixed.MulFloor(
			cfg.InterestRateModifier,
			fixed.Add(cfg.RTwo, fixed.Add(cfg.ROne, cfg.RBase)),
			fixed.Scalar7,
		)
		rate = fixed.Add(extraRate, intersection)
	}

	return fixed.Min(rate, MaxAPR), nil
}

// CalcBorrowAPR annualized borrow rate, bounded to [0, MaxAPR]
func CalcBorrowAPR(curIr *big.Int) *big.Int {
	return fixed.Clamp(curIr, new(big.Int), MaxAPR)
}
