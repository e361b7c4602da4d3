package backstop

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
)

// AssessWithdrawalImpact classifies how far a queued withdrawal would push the
// backstop toward its minimum threshold.
//
// remaining < min                    critical
// remaining < min * (1 + medium)     medium
// remaining < min * (1 + low)        low
// otherwise                          none
//
// Withdrawals no longer in the queue do not move the balance.
func AssessWithdrawalImpact(w *core.QueuedWithdrawal, pool *core.BackstopPool, policy core.BackstopPolicy) *core.WithdrawalImpact {
	total := fixed.Max(pool.TotalBackstopTokens, new(big.Int))
	minThreshold := fixed.Max(pool.MinThreshold, new(big.Int))

	amount := new(big.Int)
	if w.Status == core.QueuedWithdrawalStatusQueued {
		amount = fixed.Clamp(w.BackstopTokenAmount, new(big.Int), total)
	}

	impact := &core.WithdrawalImpact{
		WithdrawalID:    w.ID,
		RemainingTokens: fixed.Sub(total, amount),
		MinThreshold:    minThreshold,
		ShareWithdrawn:  new(big.Int),
		Severity:        core.WithdrawalSeverityNone,
	}

	if total.Sign() > 0 {
		impact.ShareWithdrawn = fixed.DivCeil(amount, total, fixed.Scalar7)
	}

	mediumLine := marginLine(minThreshold, policy.MediumSeverityMargin)
	lowLine := marginLine(minThreshold, policy.LowSeverityMargin)

	switch remaining := impact.RemainingTokens; {
	case remaining.Cmp(minThreshold) < 0:
		impact.Severity = core.WithdrawalSeverityCritical
	case remaining.Cmp(mediumLine) < 0:
		impact.Severity = core.WithdrawalSeverityMedium
	case remaining.Cmp(lowLine) < 0:
		impact.Severity = core.WithdrawalSeverityLow
	}

	return impact
}

// min * (1 + margin), rounded up so the line is never below the true margin
func marginLine(minThreshold *big.Int, margin float64) *big.Int {
	factor := fixed.Add(fixed.Scalar7, fixed.ToFixed(margin, fixed.Decimals7))
	return fixed.MulCeil(minThreshold, factor, fixed.Scalar7)
}
