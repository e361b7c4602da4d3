package backstop

import (
	"blend/core"
	"blend/internal/blend"
	"blend/pkg/fixed"
	"math/big"

	"github.com/shopspring/decimal"
)

// ReserveInterest borrow side of a reserve valued in USD
type ReserveInterest struct {
	AssetID        string
	LiabilitiesUSD decimal.Decimal
	// annual borrow rate, 7 decimals
	BorrowAPR *big.Int
}

// NewReserveInterest values the liabilities of a reserve with an oracle price
func NewReserveInterest(r *core.ReserveSnapshot, borrowAPR *big.Int, priceUSD decimal.Decimal) ReserveInterest {
	liabilities := fixed.ToDecimal(blend.TotalLiabilities(r), r.Decimals)

	return ReserveInterest{
		AssetID:        r.AssetID,
		LiabilitiesUSD: liabilities.Mul(priceUSD),
		BorrowAPR:      borrowAPR,
	}
}

// CalcBackstopAPR share of the borrow interest captured by the backstop,
// relative to its value
//
// apr = sum(liabilities * borrow_apr) * take_rate / backstop_value
//
// An empty backstop has no meaningful yield and reports zero.
func CalcBackstopAPR(reserves []ReserveInterest, takeRate *big.Int, totalValueUSD decimal.Decimal) decimal.Decimal {
	if !totalValueUSD.IsPositive() {
		return decimal.Zero
	}

	interest := decimal.Zero
	for _, r := range reserves {
		interest = interest.Add(r.LiabilitiesUSD.Mul(fixed.ToDecimal(r.BorrowAPR, fixed.Decimals7)))
	}

	return interest.
		Mul(fixed.ToDecimal(takeRate, fixed.Decimals7)).
		Div(totalValueUSD)
}

// CalcEmissionsAPR yearly emissions value relative to the backstop value
//
// apr = emissions_per_second * seconds_per_year * token_price / backstop_value
func CalcEmissionsAPR(emissions *core.EmissionsData, totalValueUSD decimal.Decimal) decimal.Decimal {
	if emissions == nil || !totalValueUSD.IsPositive() {
		return decimal.Zero
	}

	perYear := fixed.ToDecimal(fixed.Mul(emissions.EmissionsPerSecond, blend.SecondsPerYear), fixed.Decimals7)
	return perYear.Mul(emissions.TokenPriceUSD).Div(totalValueUSD)
}
