package backstop

import (
	"blend/core"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DeriveAuctionParameters starting bid, reserve, increment and duration for a
// new auction of the given type and urgency
//
// starting_bid = asset_value * multiplier[type][urgency]
// reserve      = min(starting_bid * (1 + premium), asset_value)
// increment    = asset_value * min_bid_increment
func DeriveAuctionParameters(auctionType core.AuctionType, urgency core.Urgency, assetValueUSD decimal.Decimal, policy core.BackstopPolicy) (*core.AuctionParameters, error) {
	if assetValueUSD.IsNegative() {
		return nil, core.ErrInvalidAmount
	}

	multipliers, ok := policy.StartingBidMultipliers[auctionType]
	if !ok {
		return nil, fmt.Errorf("unknown auction type %q", auctionType)
	}

	m, ok := multipliers[urgency]
	if !ok {
		return nil, fmt.Errorf("unknown urgency %q", urgency)
	}

	duration, ok := policy.AuctionDurations[urgency]
	if !ok {
		return nil, fmt.Errorf("no duration for urgency %q", urgency)
	}

	multiplier := decimal.NewFromFloat(m)
	startingBid := assetValueUSD.Mul(multiplier)

	reserve := startingBid.Mul(decimal.NewFromFloat(1 + policy.ReservePremium))
	if reserve.GreaterThan(assetValueUSD) {
		reserve = assetValueUSD
	}

	return &core.AuctionParameters{
		AuctionType:           auctionType,
		Urgency:               urgency,
		StartingBidMultiplier: multiplier,
		StartingBid:           startingBid,
		ReservePrice:          reserve,
		MinBidIncrement:       assetValueUSD.Mul(decimal.NewFromFloat(policy.MinBidIncrement)),
		Duration:              duration,
	}, nil
}

// ValidateBid checks a bid against the auction state. Issues make the bid
// invalid, warnings do not.
func ValidateBid(auction *core.AuctionData, bidder string, amount decimal.Decimal, now time.Time, policy core.BackstopPolicy) *core.BidValidation {
	v := &core.BidValidation{
		Issues:   []string{},
		Warnings: []string{},
	}

	if bidder == "" {
		v.Issues = append(v.Issues, "bidder is required")
	}

	if !amount.IsPositive() {
		v.Issues = append(v.Issues, "bid amount must be positive")
	}

	switch {
	case auction.HasEnded(now):
		v.Issues = append(v.Issues, "auction has ended")
	case !auction.IsActive(now):
		v.Issues = append(v.Issues, "auction has not started")
	case auction.EndTime().Sub(now) <= policy.EndingSoonWindow:
		v.Warnings = append(v.Warnings, fmt.Sprintf("auction ends in %s", auction.EndTime().Sub(now)))
	}

	next := auction.NextMinBid()
	if amount.IsPositive() && amount.LessThan(next) {
		v.Issues = append(v.Issues, fmt.Sprintf("bid %s is below the minimum %s", amount, next))
	}

	if !policy.AllowCreatorBids && bidder != "" && bidder == auction.Creator {
		v.Issues = append(v.Issues, "auction creator can not bid")
	}

	if next.IsPositive() && amount.GreaterThan(next.Mul(decimal.NewFromInt(2))) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("bid %s is more than twice the minimum %s", amount, next))
	}

	v.IsValid = len(v.Issues) == 0
	return v
}
