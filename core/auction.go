package core

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AuctionType auction type
type AuctionType string

const (
	// AuctionTypeBadDebt bad debt auction
	AuctionTypeBadDebt AuctionType = "bad_debt"
	// AuctionTypeLiquidation user liquidation auction
	AuctionTypeLiquidation AuctionType = "liquidation"
	// AuctionTypeInterest backstop interest auction
	AuctionTypeInterest AuctionType = "interest"
)

// AuctionTypes all auction types
var AuctionTypes = []AuctionType{AuctionTypeBadDebt, AuctionTypeLiquidation, AuctionTypeInterest}

// ParseAuctionType parse auction type, accepts camel case names as well
func ParseAuctionType(s string) (AuctionType, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "")) {
	case "baddebt":
		return AuctionTypeBadDebt, nil
	case "liquidation":
		return AuctionTypeLiquidation, nil
	case "interest":
		return AuctionTypeInterest, nil
	}

	return "", fmt.Errorf("unknown auction type %q", s)
}

// Urgency how urgently an auction has to clear
type Urgency string

const (
	// UrgencyLow low
	UrgencyLow Urgency = "low"
	// UrgencyMedium medium
	UrgencyMedium Urgency = "medium"
	// UrgencyHigh high, the most urgent level
	UrgencyHigh Urgency = "high"
)

// Urgencies all urgency levels
var Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh}

// ParseUrgency parse urgency, "critical" is an alias of high
func ParseUrgency(s string) (Urgency, error) {
	switch strings.ToLower(s) {
	case "low":
		return UrgencyLow, nil
	case "medium":
		return UrgencyMedium, nil
	case "high", "critical":
		return UrgencyHigh, nil
	}

	return "", fmt.Errorf("unknown urgency %q", s)
}

// AuctionData auction state, bids are quoted in USD
type AuctionData struct {
	ID              string          `json:"id" yaml:"id"`
	AuctionType     AuctionType     `json:"auction_type" yaml:"auction_type"`
	Creator         string          `json:"creator,omitempty" yaml:"creator"`
	AssetAddress    string          `json:"asset_address" yaml:"asset_address"`
	AssetAmount     *big.Int        `json:"asset_amount" yaml:"asset_amount"`
	StartingBid     decimal.Decimal `json:"starting_bid" yaml:"starting_bid"`
	CurrentBid      decimal.Decimal `json:"current_bid" yaml:"current_bid"`
	ReservePrice    decimal.Decimal `json:"reserve_price" yaml:"reserve_price"`
	MinBidIncrement decimal.Decimal `json:"min_bid_increment" yaml:"min_bid_increment"`
	StartTime       time.Time       `json:"start_time" yaml:"start_time"`
	Duration        time.Duration   `json:"duration" yaml:"duration"`
}

// EndTime start time plus duration
func (a *AuctionData) EndTime() time.Time {
	return a.StartTime.Add(a.Duration)
}

// IsActive started and not yet ended
func (a *AuctionData) IsActive(now time.Time) bool {
	return !now.Before(a.StartTime) && now.Before(a.EndTime())
}

// HasEnded past the end time
func (a *AuctionData) HasEnded(now time.Time) bool {
	return !now.Before(a.EndTime())
}

// ReserveMet current bid reached the reserve price
func (a *AuctionData) ReserveMet() bool {
	return a.CurrentBid.IsPositive() && a.CurrentBid.GreaterThanOrEqual(a.ReservePrice)
}

// NextMinBid lowest acceptable next bid
//
// next_min_bid = max(current_bid + min_bid_increment, reserve_price if not yet met)
func (a *AuctionData) NextMinBid() decimal.Decimal {
	next := a.StartingBid
	if a.CurrentBid.IsPositive() {
		next = a.CurrentBid.Add(a.MinBidIncrement)
	}

	if !a.ReserveMet() && a.ReservePrice.GreaterThan(next) {
		next = a.ReservePrice
	}

	return next
}

// AuctionParameters derived parameters for a new auction
type AuctionParameters struct {
	AuctionType           AuctionType     `json:"auction_type"`
	Urgency               Urgency         `json:"urgency"`
	StartingBidMultiplier decimal.Decimal `json:"starting_bid_multiplier"`
	StartingBid           decimal.Decimal `json:"starting_bid"`
	ReservePrice          decimal.Decimal `json:"reserve_price"`
	MinBidIncrement       decimal.Decimal `json:"min_bid_increment"`
	Duration              time.Duration   `json:"duration"`
}

// BidValidation structured bid check result
type BidValidation struct {
	IsValid  bool     `json:"is_valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}
