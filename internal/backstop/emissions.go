package backstop

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
	"time"
)

// CalcEmissionsAccrual projects the emissions a backstop depositor has
// accrued since the last claim
//
// newly_accrued = emissions_per_second * elapsed * balance / total_backstop_tokens
//
// Accrual stops at the end of the schedule and the total never exceeds the
// unclaimed allocation. Rounds down, the protocol never over pays.
func CalcEmissionsAccrual(user *core.UserEmissionsState, emissions *core.EmissionsData, pool *core.BackstopPool, now time.Time) *core.EmissionsAccrual {
	accrued := fixed.Max(user.AccruedEmissions, new(big.Int))

	out := &core.EmissionsAccrual{
		UserAddress:  user.UserAddress,
		UserShare:    new(big.Int),
		NewlyAccrued: new(big.Int),
		TotalAccrued: accrued,
	}

	end := now
	if !emissions.EndTime.IsZero() && emissions.EndTime.Before(now) {
		end = emissions.EndTime
		out.CappedByEnd = true
	}

	elapsed := end.Sub(user.LastClaimTime)
	if elapsed < 0 {
		elapsed = 0
	}
	out.Elapsed = elapsed

	total := pool.TotalBackstopTokens
	balance := user.BackstopTokenBalance
	if total == nil || total.Sign() <= 0 || balance == nil || balance.Sign() <= 0 {
		return out
	}

	// no depositor holds more than the whole backstop
	balance = fixed.Min(balance, total)
	out.UserShare = fixed.DivFloor(balance, total, fixed.Scalar7)

	seconds := big.NewInt(int64(elapsed / time.Second))
	newly := fixed.MulDivFloor(fixed.Mul(emissions.EmissionsPerSecond, seconds), balance, total)

	remaining := fixed.Max(fixed.Sub(emissions.TotalAllocated, emissions.TotalClaimed), new(big.Int))
	totalAccrued := fixed.Add(accrued, newly)
	if totalAccrued.Cmp(remaining) > 0 {
		totalAccrued = remaining
		out.CappedBySupply = true
	}

	out.TotalAccrued = totalAccrued
	out.NewlyAccrued = fixed.Max(fixed.Sub(totalAccrued, accrued), new(big.Int))
	return out
}
