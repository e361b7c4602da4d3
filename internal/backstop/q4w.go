package backstop

import (
	"blend/core"
	"blend/pkg/fixed"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// CalcQ4WDelay recommended queue for withdrawal delay for the backstop
//
// The base delay is doubled above the high utilization mark and extended by
// half again when the backstop is close to its minimum threshold; both
// extensions stack. An emergency backstop always gets the maximum delay.
// The result never drops below the base and never exceeds the maximum.
func CalcQ4WDelay(pool *core.BackstopPool, policy core.BackstopPolicy) *core.Q4WRecommendation {
	rec := &core.Q4WRecommendation{
		Delay:   policy.Q4WBaseDelay,
		Reasons: []string{},
	}

	if pool.Status == core.BackstopStatusEmergency {
		rec.Delay = policy.Q4WMaxDelay
		rec.Reasons = append(rec.Reasons, "backstop is in emergency status")
		return rec
	}

	delay := decimal.NewFromInt(int64(policy.Q4WBaseDelay))

	util := pool.Utilization()
	if util.Cmp(fixed.ToFixed(policy.HighUtilization, fixed.Decimals7)) > 0 {
		delay = delay.Mul(decimal.NewFromFloat(policy.HighUtilizationFactor))
		rec.Reasons = append(rec.Reasons, fmt.Sprintf(
			"utilization %s is above %v",
			fixed.ToDecimal(util, fixed.Decimals7), policy.HighUtilization,
		))
	}

	buffer := fixed.MulFloor(pool.MinThreshold, fixed.ToFixed(policy.LowBufferRatio, fixed.Decimals7), fixed.Scalar7)
	if fixed.Max(pool.TotalBackstopTokens, new(big.Int)).Cmp(buffer) < 0 {
		delay = delay.Mul(decimal.NewFromFloat(policy.LowBufferFactor))
		rec.Reasons = append(rec.Reasons, fmt.Sprintf(
			"backstop tokens are below %vx the min threshold",
			policy.LowBufferRatio,
		))
	}

	d := time.Duration(delay.IntPart())
	if d < policy.Q4WBaseDelay {
		d = policy.Q4WBaseDelay
	}
	if d > policy.Q4WMaxDelay {
		d = policy.Q4WMaxDelay
		rec.Reasons = append(rec.Reasons, "capped at the maximum delay")
	}

	rec.Delay = d
	return rec
}
