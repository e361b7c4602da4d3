package backstop

import (
	"blend/core"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAuctionParameters(t *testing.T) {
	policy := DefaultPolicy()
	value := decimal.NewFromInt(1000)

	t.Run("bad debt high", func(t *testing.T) {
		p, err := DeriveAuctionParameters(core.AuctionTypeBadDebt, core.UrgencyHigh, value, policy)
		require.NoError(t, err)

		assert.Equal(t, "500", p.StartingBid.String())
		assert.Equal(t, "550", p.ReservePrice.String())
		assert.Equal(t, "10", p.MinBidIncrement.String())
		assert.Equal(t, time.Hour, p.Duration)
	})

	t.Run("reserve capped at the asset value", func(t *testing.T) {
		p, err := DeriveAuctionParameters(core.AuctionTypeInterest, core.UrgencyLow, value, policy)
		require.NoError(t, err)

		assert.Equal(t, "950", p.StartingBid.String())
		assert.True(t, p.ReservePrice.Equal(value))
		assert.Equal(t, 7*24*time.Hour, p.Duration)
	})

	t.Run("bad debt high is the most aggressive", func(t *testing.T) {
		target, err := DeriveAuctionParameters(core.AuctionTypeBadDebt, core.UrgencyHigh, value, policy)
		require.NoError(t, err)

		for _, at := range core.AuctionTypes {
			for _, u := range core.Urgencies {
				p, err := DeriveAuctionParameters(at, u, value, policy)
				require.NoError(t, err)

				assert.True(t, target.StartingBidMultiplier.LessThanOrEqual(p.StartingBidMultiplier), "%s/%s", at, u)
				assert.LessOrEqual(t, target.Duration, p.Duration, "%s/%s", at, u)
			}
		}
	})

	t.Run("more urgent is never longer", func(t *testing.T) {
		for _, at := range core.AuctionTypes {
			var prev *core.AuctionParameters
			for _, u := range core.Urgencies {
				p, err := DeriveAuctionParameters(at, u, value, policy)
				require.NoError(t, err)

				if prev != nil {
					assert.LessOrEqual(t, p.Duration, prev.Duration)
					assert.True(t, p.StartingBidMultiplier.LessThanOrEqual(prev.StartingBidMultiplier))
				}
				prev = p
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := DeriveAuctionParameters(core.AuctionTypeBadDebt, core.UrgencyHigh, decimal.NewFromInt(-1), policy)
		assert.ErrorIs(t, err, core.ErrInvalidAmount)

		_, err = DeriveAuctionParameters("dutch", core.UrgencyHigh, value, policy)
		assert.Error(t, err)

		_, err = DeriveAuctionParameters(core.AuctionTypeBadDebt, "whenever", value, policy)
		assert.Error(t, err)
	})
}

func testAuction(now time.Time) *core.AuctionData {
	return &core.AuctionData{
		ID:              "a1",
		AuctionType:     core.AuctionTypeBadDebt,
		Creator:         "creator",
		StartingBid:     decimal.NewFromInt(500),
		ReservePrice:    decimal.NewFromInt(550),
		MinBidIncrement: decimal.NewFromInt(10),
		StartTime:       now.Add(-time.Hour),
		Duration:        2 * time.Hour,
	}
}

func TestValidateBid(t *testing.T) {
	policy := DefaultPolicy()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "bidder", decimal.NewFromInt(600), now, policy)
		assert.True(t, v.IsValid)
		assert.Empty(t, v.Issues)
		assert.Empty(t, v.Warnings)
	})

	t.Run("below reserve", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "bidder", decimal.NewFromInt(520), now, policy)
		assert.False(t, v.IsValid)
		assert.Len(t, v.Issues, 1)
	})

	t.Run("below the increment", func(t *testing.T) {
		a := testAuction(now)
		a.CurrentBid = decimal.NewFromInt(600)

		v := ValidateBid(a, "bidder", decimal.NewFromInt(605), now, policy)
		assert.False(t, v.IsValid)

		v = ValidateBid(a, "bidder", decimal.NewFromInt(610), now, policy)
		assert.True(t, v.IsValid)
	})

	t.Run("creator", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "creator", decimal.NewFromInt(600), now, policy)
		assert.False(t, v.IsValid)

		p := policy
		p.AllowCreatorBids = true
		v = ValidateBid(testAuction(now), "creator", decimal.NewFromInt(600), now, p)
		assert.True(t, v.IsValid)
	})

	t.Run("ended", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "bidder", decimal.NewFromInt(600), now.Add(2*time.Hour), policy)
		assert.False(t, v.IsValid)
	})

	t.Run("not started", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "bidder", decimal.NewFromInt(600), now.Add(-2*time.Hour), policy)
		assert.False(t, v.IsValid)
	})

	t.Run("empty bid", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "", decimal.Zero, now, policy)
		assert.False(t, v.IsValid)
		assert.Len(t, v.Issues, 2)
	})

	t.Run("warnings", func(t *testing.T) {
		v := ValidateBid(testAuction(now), "bidder", decimal.NewFromInt(1200), now.Add(58*time.Minute), policy)
		assert.True(t, v.IsValid)
		assert.Len(t, v.Warnings, 2)
	})
}
