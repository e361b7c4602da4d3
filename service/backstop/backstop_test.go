package backstop

import (
	"blend/core"
	"blend/service/market"
	"blend/service/oracle"
	"blend/store/ratemodifier"
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(10_000_000))
}

func testPool() *core.PoolSnapshot {
	return &core.PoolSnapshot{
		PoolID: "pool",
		Reserves: []*core.ReserveSnapshot{
			{
				AssetID:  "usdc",
				Decimals: 7,
				Config: core.InterestRateConfig{
					TargetUtilization:    big.NewInt(7_500_000),
					RBase:                big.NewInt(100_000),
					ROne:                 big.NewInt(500_000),
					RTwo:                 big.NewInt(5_000_000),
					RThree:               big.NewInt(15_000_000),
					Reactivity:           big.NewInt(200),
					InterestRateModifier: big.NewInt(10_000_000),
				},
				BRate:   big.NewInt(1_000_000_000_000),
				DRate:   big.NewInt(1_000_000_000_000),
				BSupply: tokens(100_000),
				DSupply: tokens(70_000),
			},
		},
		Backstop: &core.BackstopPool{
			PoolID:              "pool",
			MinThreshold:        tokens(500),
			MaxCapacity:         tokens(1000),
			TakeRate:            big.NewInt(2_000_000),
			TotalBackstopTokens: tokens(700),
			TotalLpTokens:       tokens(350),
			TotalValueUSD:       decimal.NewFromInt(10_000),
			Status:              core.BackstopStatusActive,
		},
		Emissions: &core.EmissionsData{
			EmissionsPerSecond: big.NewInt(1_000_000),
			TotalAllocated:     tokens(1_000_000),
			TotalClaimed:       new(big.Int),
			TokenPriceUSD:      decimal.RequireFromString("0.01"),
		},
		Auctions: []*core.AuctionData{
			{
				ID:              "a1",
				AuctionType:     core.AuctionTypeInterest,
				StartingBid:     decimal.NewFromInt(100),
				ReservePrice:    decimal.NewFromInt(110),
				MinBidIncrement: decimal.NewFromInt(1),
				StartTime:       t0,
				Duration:        time.Hour,
			},
		},
		Withdrawals: []*core.QueuedWithdrawal{
			{ID: "w1", BackstopTokenAmount: tokens(300), Status: core.QueuedWithdrawalStatusQueued},
		},
		Prices: []*core.PriceTicker{
			{AssetID: "usdc", Price: decimal.NewFromInt(1)},
		},
	}
}

func newService() core.IBackstopService {
	marketSrv := market.New(ratemodifier.New(func() time.Time { return t0 }))
	return New(core.BackstopPolicy{}, marketSrv, oracle.New(core.PriceOracle{}))
}

func TestSummary(t *testing.T) {
	s := newService()

	summary, err := s.Summary(context.Background(), testPool(), t0)
	require.NoError(t, err)

	assert.Equal(t, "7000000", summary.Utilization.String())
	assert.Equal(t, tokens(300).String(), summary.AvailableCapacity.String())
	assert.Equal(t, "20000000", summary.ExchangeRate.String())
	assert.True(t, summary.BackstopAPR.IsPositive())
	// 0.1 * 31536000 * 0.01 / 10000
	assert.Equal(t, "3.1536", summary.EmissionsAPR.String())
	assert.Equal(t, 7*24*time.Hour, summary.Q4W.Delay)
}

func TestSummaryWithoutPrices(t *testing.T) {
	pool := testPool()
	pool.Prices = nil

	summary, err := newService().Summary(context.Background(), pool, t0)
	require.NoError(t, err)
	assert.True(t, summary.BackstopAPR.IsZero())
}

func TestSummaryWithoutBackstop(t *testing.T) {
	pool := testPool()
	pool.Backstop = nil

	_, err := newService().Summary(context.Background(), pool, t0)
	assert.ErrorIs(t, err, core.ErrBackstopNotFound)
}

func TestWithdrawalImpact(t *testing.T) {
	s := newService()

	impact, err := s.WithdrawalImpact(context.Background(), testPool(), "w1")
	require.NoError(t, err)
	assert.Equal(t, core.WithdrawalSeverityCritical, impact.Severity)

	_, err = s.WithdrawalImpact(context.Background(), testPool(), "w2")
	assert.ErrorIs(t, err, core.ErrWithdrawalNotFound)
}

func TestEmissionsAccrual(t *testing.T) {
	user := &core.UserEmissionsState{
		UserAddress:          "user",
		BackstopTokenBalance: tokens(70),
		LastClaimTime:        t0,
	}

	a, err := newService().EmissionsAccrual(context.Background(), testPool(), user, t0.Add(time.Hour))
	require.NoError(t, err)
	// 0.1 per second * 3600 * 10%
	assert.Equal(t, "360000000", a.NewlyAccrued.String())

	pool := testPool()
	pool.Emissions = nil
	a, err = newService().EmissionsAccrual(context.Background(), pool, user, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "0", a.NewlyAccrued.String())
}

func TestValidateBid(t *testing.T) {
	s := newService()

	v, err := s.ValidateBid(context.Background(), testPool(), "a1", "bidder", decimal.NewFromInt(120), t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, v.IsValid)

	v, err = s.ValidateBid(context.Background(), testPool(), "a1", "bidder", decimal.NewFromInt(105), t0.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, v.IsValid)

	_, err = s.ValidateBid(context.Background(), testPool(), "a2", "bidder", decimal.NewFromInt(120), t0)
	assert.ErrorIs(t, err, core.ErrAuctionNotFound)
}

func TestAuctionParameters(t *testing.T) {
	p, err := newService().AuctionParameters(context.Background(), core.AuctionTypeLiquidation, core.UrgencyMedium, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, "160", p.StartingBid.String())
	assert.Equal(t, 24*time.Hour, p.Duration)
}
