package blend

import (
	"blend/core"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReserve() *core.ReserveSnapshot {
	return &core.ReserveSnapshot{
		AssetID:  "USDC",
		Symbol:   "USDC",
		Decimals: 7,
		Config:   *testConfig(),
		BRate:    big.NewInt(1_100_000_000_000),
		DRate:    big.NewInt(1_200_000_000_000),
		BSupply:  big.NewInt(10_000_000_000),
		DSupply:  big.NewInt(5_000_000_000),
	}
}

func TestReserveTotals(t *testing.T) {
	r := testReserve()

	assert.Equal(t, int64(11_000_000_000), TotalSupply(r).Int64())
	assert.Equal(t, int64(6_000_000_000), TotalLiabilities(r).Int64())

	// 6000 / 11000 = 0.54545454.. rounded up
	assert.Equal(t, int64(5_454_546), ReserveUtilization(r).Int64())
}

func TestTotalsRounding(t *testing.T) {
	r := testReserve()
	r.BSupply = big.NewInt(3)
	r.DSupply = big.NewInt(3)
	r.BRate = big.NewInt(1_000_000_000_001)
	r.DRate = big.NewInt(1_000_000_000_001)

	// supply is an entitlement, liabilities are owed
	assert.Equal(t, int64(3), TotalSupply(r).Int64())
	assert.Equal(t, int64(4), TotalLiabilities(r).Int64())
}

func TestUtilizationEmpty(t *testing.T) {
	assert.Equal(t, 0, Utilization(big.NewInt(0), big.NewInt(10)).Sign())
	assert.Equal(t, 0, Utilization(big.NewInt(10), big.NewInt(0)).Sign())
	assert.Equal(t, 0, Utilization(nil, nil).Sign())
	assert.Equal(t, int64(10_000_000), Utilization(big.NewInt(10), big.NewInt(10)).Int64())
}

func TestAccrueDebtRate(t *testing.T) {
	dRate := big.NewInt(1_000_000_000_000)

	// 10% for a full year
	next := AccrueDebtRate(dRate, big.NewInt(1_000_000), SecondsPerYear.Int64())
	assert.Equal(t, int64(1_100_000_000_000), next.Int64())

	assert.Equal(t, dRate.Int64(), AccrueDebtRate(dRate, big.NewInt(1_000_000), 0).Int64())
	assert.Equal(t, dRate.Int64(), AccrueDebtRate(dRate, big.NewInt(0), 100).Int64())

	// a single second still grows the debt
	next = AccrueDebtRate(dRate, big.NewInt(1), 1)
	assert.Equal(t, 1, next.Cmp(dRate))
}

func TestReserveRateEndToEnd(t *testing.T) {
	r := testReserve()
	util := ReserveUtilization(r)

	rate, err := CalcKinkedInterestRate(util, &r.Config)
	require.NoError(t, err)

	supply := CalcSupplyAPR(rate, util, big.NewInt(1_000_000))
	assert.Equal(t, 1, rate.Cmp(supply))
	assert.Equal(t, 1, supply.Sign())
}
