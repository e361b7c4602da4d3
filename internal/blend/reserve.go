package blend

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
)

// TotalSupply underlying supplied to the reserve, b_supply * b_rate rounded down
func TotalSupply(r *core.ReserveSnapshot) *big.Int {
	return fixed.MulFloor(r.BSupply, r.BRate, fixed.Scalar12)
}

// TotalLiabilities underlying owed to the reserve, d_supply * d_rate rounded up
func TotalLiabilities(r *core.ReserveSnapshot) *big.Int {
	return fixed.MulCeil(r.DSupply, r.DRate, fixed.Scalar12)
}

// Utilization liabilities over supply at 7 decimals, rounded up. An empty
// reserve has zero utilization.
func Utilization(totalSupply, totalLiabilities *big.Int) *big.Int {
	if totalSupply == nil || totalSupply.Sign() <= 0 || totalLiabilities == nil || totalLiabilities.Sign() <= 0 {
		return new(big.Int)
	}

	return fixed.DivCeil(totalLiabilities, totalSupply, fixed.Scalar7)
}

// ReserveUtilization utilization of a reserve snapshot
func ReserveUtilization(r *core.ReserveSnapshot) *big.Int {
	return Utilization(TotalSupply(r), TotalLiabilities(r))
}

// AccrueDebtRate projects the d rate forward by deltaSeconds at the borrow
// rate curIr. Debt grows, so the accrual rounds up.
//
// accrual = 1 + cur_ir * dt / seconds_per_year (12 decimals)
// d_rate' = d_rate * accrual
func AccrueDebtRate(dRate, curIr *big.Int, deltaSeconds int64) *big.Int {
	if deltaSeconds <= 0 || curIr == nil || curIr.Sign() == 0 {
		return new(big.Int).Set(dRate)
	}

	// 7 -> 12 decimals
	rate12 := fixed.Mul(curIr, big.NewInt(100_000))
	growth := fixed.MulDivCeil(rate12, big.NewInt(deltaSeconds), SecondsPerYear)
	accrual := fixed.Add(fixed.Scalar12, growth)
	return fixed.MulCeil(dRate, accrual, fixed.Scalar12)
}
