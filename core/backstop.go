package core

import (
	"blend/pkg/fixed"
	"context"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// BackstopStatus backstop status
type BackstopStatus string

const (
	// BackstopStatusActive active
	BackstopStatusActive BackstopStatus = "active"
	// BackstopStatusFrozen frozen
	BackstopStatusFrozen BackstopStatus = "frozen"
	// BackstopStatusEmergency emergency
	BackstopStatusEmergency BackstopStatus = "emergency"
)

// BackstopPool backstop of a lending pool, token amounts are fixed point at 7 decimals
type BackstopPool struct {
	PoolID              string          `json:"pool_id" yaml:"pool_id"`
	MinThreshold        *big.Int        `json:"min_threshold" yaml:"min_threshold"`
	MaxCapacity         *big.Int        `json:"max_capacity" yaml:"max_capacity"`
	TakeRate            *big.Int        `json:"take_rate" yaml:"take_rate"`
	TotalBackstopTokens *big.Int        `json:"total_backstop_tokens" yaml:"total_backstop_tokens"`
	TotalLpTokens       *big.Int        `json:"total_lp_tokens" yaml:"total_lp_tokens"`
	TotalValueUSD       decimal.Decimal `json:"total_value_usd" yaml:"total_value_usd"`
	Status              BackstopStatus  `json:"status" yaml:"status"`
}

// Utilization backstop tokens over max capacity, 7 decimals
func (p *BackstopPool) Utilization() *big.Int {
	if p.MaxCapacity == nil || p.MaxCapacity.Sign() <= 0 {
		return new(big.Int)
	}

	return fixed.DivFloor(p.TotalBackstopTokens, p.MaxCapacity, fixed.Scalar7)
}

// AvailableCapacity tokens that can still be deposited
func (p *BackstopPool) AvailableCapacity() *big.Int {
	return fixed.Max(fixed.Sub(p.MaxCapacity, p.TotalBackstopTokens), new(big.Int))
}

// ExchangeRate backstop tokens per lp share, 7 decimals
func (p *BackstopPool) ExchangeRate() *big.Int {
	if p.TotalLpTokens == nil || p.TotalLpTokens.Sign() <= 0 {
		return new(big.Int).Set(fixed.Scalar7)
	}

	return fixed.DivFloor(p.TotalBackstopTokens, p.TotalLpTokens, fixed.Scalar7)
}

// QueuedWithdrawalStatus q4w status
type QueuedWithdrawalStatus string

const (
	// QueuedWithdrawalStatusQueued queued
	QueuedWithdrawalStatusQueued QueuedWithdrawalStatus = "queued"
	// QueuedWithdrawalStatusExecuted executed
	QueuedWithdrawalStatusExecuted QueuedWithdrawalStatus = "executed"
	// QueuedWithdrawalStatusCancelled cancelled
	QueuedWithdrawalStatusCancelled QueuedWithdrawalStatus = "cancelled"
)

// QueuedWithdrawal backstop withdrawal waiting in the queue
type QueuedWithdrawal struct {
	ID                  string                 `json:"id" yaml:"id"`
	UserAddress         string                 `json:"user_address" yaml:"user_address"`
	BackstopTokenAmount *big.Int               `json:"backstop_token_amount" yaml:"backstop_token_amount"`
	LpTokenAmount       *big.Int               `json:"lp_token_amount" yaml:"lp_token_amount"`
	QueuedAt            time.Time              `json:"queued_at" yaml:"queued_at"`
	ExecutableAt        time.Time              `json:"executable_at" yaml:"executable_at"`
	Status              QueuedWithdrawalStatus `json:"status" yaml:"status"`
}

// IsExecutable queued and past its unlock time
func (w *QueuedWithdrawal) IsExecutable(now time.Time) bool {
	return w.Status == QueuedWithdrawalStatusQueued && !now.Before(w.ExecutableAt)
}

// EmissionsData emission schedule of a backstop
type EmissionsData struct {
	PoolID             string    `json:"pool_id" yaml:"pool_id"`
	EmissionsPerSecond *big.Int  `json:"emissions_per_second" yaml:"emissions_per_second"`
	TotalAllocated     *big.Int  `json:"total_allocated" yaml:"total_allocated"`
	TotalClaimed       *big.Int  `json:"total_claimed" yaml:"total_claimed"`
	EndTime            time.Time `json:"end_time" yaml:"end_time"`
	// emission token price, used for the emissions APR
	TokenPriceUSD decimal.Decimal `json:"token_price_usd" yaml:"token_price_usd"`
}

// UserEmissionsState emissions position of a backstop depositor
type UserEmissionsState struct {
	UserAddress          string    `json:"user_address" yaml:"user_address"`
	BackstopTokenBalance *big.Int  `json:"backstop_token_balance" yaml:"backstop_token_balance"`
	ShareOfPool          *big.Int  `json:"share_of_pool" yaml:"share_of_pool"`
	AccruedEmissions     *big.Int  `json:"accrued_emissions" yaml:"accrued_emissions"`
	LastClaimTime        time.Time `json:"last_claim_time" yaml:"last_claim_time"`
}

// EmissionsAccrual result of an accrual projection
type EmissionsAccrual struct {
	UserAddress    string        `json:"user_address"`
	Elapsed        time.Duration `json:"elapsed"`
	UserShare      *big.Int      `json:"user_share"`
	NewlyAccrued   *big.Int      `json:"newly_accrued"`
	TotalAccrued   *big.Int      `json:"total_accrued"`
	CappedBySupply bool          `json:"capped_by_supply"`
	CappedByEnd    bool          `json:"capped_by_end"`
}

// Q4WRecommendation recommended queue delay
type Q4WRecommendation struct {
	Delay   time.Duration `json:"delay"`
	Reasons []string      `json:"reasons"`
}

// WithdrawalSeverity withdrawal impact severity
type WithdrawalSeverity string

const (
	// WithdrawalSeverityNone none
	WithdrawalSeverityNone WithdrawalSeverity = "none"
	// WithdrawalSeverityLow low
	WithdrawalSeverityLow WithdrawalSeverity = "low"
	// WithdrawalSeverityMedium medium
	WithdrawalSeverityMedium WithdrawalSeverity = "medium"
	// WithdrawalSeverityCritical critical
	WithdrawalSeverityCritical WithdrawalSeverity = "critical"
)

// WithdrawalImpact effect of a queued withdrawal on the backstop
type WithdrawalImpact struct {
	WithdrawalID    string             `json:"withdrawal_id"`
	RemainingTokens *big.Int           `json:"remaining_tokens"`
	MinThreshold    *big.Int           `json:"min_threshold"`
	ShareWithdrawn  *big.Int           `json:"share_withdrawn"`
	Severity        WithdrawalSeverity `json:"severity"`
}

// BreachesMinThreshold the backstop falls below its minimum after the withdrawal
func (i *WithdrawalImpact) BreachesMinThreshold() bool {
	return i.RemainingTokens.Cmp(i.MinThreshold) < 0
}

// BackstopSummary backstop metrics of a pool
type BackstopSummary struct {
	PoolID            string             `json:"pool_id"`
	Status            BackstopStatus     `json:"status"`
	Utilization       *big.Int           `json:"utilization"`
	AvailableCapacity *big.Int           `json:"available_capacity"`
	ExchangeRate      *big.Int           `json:"exchange_rate"`
	BackstopAPR       decimal.Decimal    `json:"backstop_apr"`
	EmissionsAPR      decimal.Decimal    `json:"emissions_apr"`
	Q4W               *Q4WRecommendation `json:"q4w"`
}

// IBackstopService backstop economics service interface
type IBackstopService interface {
	Summary(ctx context.Context, pool *PoolSnapshot, now time.Time) (*BackstopSummary, error)
	EmissionsAccrual(ctx context.Context, pool *PoolSnapshot, user *UserEmissionsState, now time.Time) (*EmissionsAccrual, error)
	WithdrawalImpact(ctx context.Context, pool *PoolSnapshot, withdrawalID string) (*WithdrawalImpact, error)
	AuctionParameters(ctx context.Context, auctionType AuctionType, urgency Urgency, assetValueUSD decimal.Decimal) (*AuctionParameters, error)
	ValidateBid(ctx context.Context, pool *PoolSnapshot, auctionID, bidder string, amount decimal.Decimal, now time.Time) (*BidValidation, error)
}
