package blend

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
)

// InitialModifier modifier a reserve starts tracking with, the configured
// value or 1x when unset
func InitialModifier(cfg *core.InterestRateConfig) *big.Int {
	if cfg == nil || cfg.InterestRateModifier == nil || cfg.InterestRateModifier.Sign() <= 0 {
		return new(big.Int).Set(fixed.Scalar7)
	}

	return new(big.Int).Set(cfg.InterestRateModifier)
}

// CalcNextModifier moves the reactive modifier toward the direction that pulls
// utilization back to its target.
//
// u > target: ir_mod += (u-target)/(1-target) * reactivity * dt, rounded down, capped at MaxRateModifier
// u < target: ir_mod -= (target-u)/target * reactivity * dt, rounded up, floored at MinRateModifier
//
// A modifier already outside the bounds is never pushed further out and is
// never snapped back by a step moving the other way.
func CalcNextModifier(current, utilization *big.Int, cfg *core.InterestRateConfig, deltaSeconds int64) *big.Int {
	target := cfg.TargetUtilization
	dt := big.NewInt(deltaSeconds)

	switch utilization.Cmp(target) {
	case 1:
		utilDif := fixed.DivFloor(
			fixed.Sub(utilization, target),
			fixed.Sub(fixed.Scalar7, target),
			fixed.Scalar7,
		)
		rateDif := fixed.MulFloor(fixed.Mul(utilDif, dt), cfg.Reactivity, fixed.Scalar7)
		next := fixed.Add(current, rateDif)
		if next.Cmp(MaxRateModifier) > 0 {
			return fixed.Max(current, MaxRateModifier)
		}
		return next
	case -1:
		utilDif := fixed.DivFloor(fixed.Sub(target, utilization), target, fixed.Scalar7)
		rateDif := fixed.MulCeil(fixed.Mul(utilDif, dt), cfg.Reactivity, fixed.Scalar7)
		next := fixed.Sub(current, rateDif)
		if next.Cmp(MinRateModifier) < 0 {
			return fixed.Min(current, MinRateModifier)
		}
		return next
	}

	return new(big.Int).Set(current)
}
