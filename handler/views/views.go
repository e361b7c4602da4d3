package views

import (
	"blend/core"
	"blend/pkg/fixed"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// rate at 7 decimals as a plain decimal, 0.05 for 5%
func rate(v *big.Int) decimal.Decimal {
	return fixed.ToDecimal(v, fixed.Decimals7)
}

// Pool pool view
type Pool struct {
	PoolID    string    `json:"pool_id"`
	Name      string    `json:"name"`
	Reserves  []string  `json:"reserves"`
	Backstop  bool      `json:"has_backstop"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PoolView pool view
func PoolView(p *core.PoolSnapshot) Pool {
	reserves := make([]string, 0, len(p.Reserves))
	for _, r := range p.Reserves {
		reserves = append(reserves, r.AssetID)
	}

	return Pool{
		PoolID:    p.PoolID,
		Name:      p.Name,
		Reserves:  reserves,
		Backstop:  p.Backstop != nil,
		FetchedAt: p.FetchedAt,
	}
}

// ReserveRates reserve rates view
type ReserveRates struct {
	AssetID     string          `json:"asset_id"`
	Symbol      string          `json:"symbol,omitempty"`
	Utilization decimal.Decimal `json:"utilization"`
	Modifier    decimal.Decimal `json:"modifier"`
	BorrowAPR   decimal.Decimal `json:"borrow_apr"`
	SupplyAPR   decimal.Decimal `json:"supply_apr"`
	BorrowAPY   decimal.Decimal `json:"borrow_apy"`
	SupplyAPY   decimal.Decimal `json:"supply_apy"`
	NextDRate   decimal.Decimal `json:"next_d_rate"`
}

// ReserveRatesView reserve rates view
func ReserveRatesView(r *core.ReserveRates) ReserveRates {
	return ReserveRates{
		AssetID:     r.AssetID,
		Symbol:      r.Symbol,
		Utilization: rate(r.Utilization),
		Modifier:    rate(r.Modifier),
		BorrowAPR:   rate(r.BorrowRate),
		SupplyAPR:   rate(r.SupplyAPR),
		BorrowAPY:   decimal.NewFromFloat(r.BorrowAPY).Round(8),
		SupplyAPY:   decimal.NewFromFloat(r.SupplyAPY).Round(8),
		NextDRate:   fixed.ToDecimal(r.NextDRate, fixed.Decimals12),
	}
}

// Modifier reactive modifier view
type Modifier struct {
	Key        string          `json:"key"`
	AssetID    string          `json:"asset_id"`
	Modifier   decimal.Decimal `json:"modifier"`
	Tracked    bool            `json:"tracked"`
	LastUpdate *time.Time      `json:"last_update,omitempty"`
}

// ModifierView modifier view of a reserve, untracked reserves show the snapshot modifier
func ModifierView(key string, r *core.ReserveSnapshot, state *core.RateModifierState) Modifier {
	if state == nil {
		return Modifier{
			Key:      key,
			AssetID:  r.AssetID,
			Modifier: rate(r.Config.InterestRateModifier),
		}
	}

	ts := state.LastUpdateTimestamp
	return Modifier{
		Key:        key,
		AssetID:    r.AssetID,
		Modifier:   rate(state.CurrentModifier),
		Tracked:    true,
		LastUpdate: &ts,
	}
}

// Backstop backstop summary view
type Backstop struct {
	PoolID            string              `json:"pool_id"`
	Status            core.BackstopStatus `json:"status"`
	Utilization       decimal.Decimal     `json:"utilization"`
	AvailableCapacity decimal.Decimal     `json:"available_capacity"`
	ExchangeRate      decimal.Decimal     `json:"exchange_rate"`
	BackstopAPR       decimal.Decimal     `json:"backstop_apr"`
	EmissionsAPR      decimal.Decimal     `json:"emissions_apr"`
	Q4WDelay          string              `json:"q4w_delay"`
	Q4WDelaySeconds   int64               `json:"q4w_delay_seconds"`
	Q4WReasons        []string            `json:"q4w_reasons"`
}

// BackstopView backstop view
func BackstopView(s *core.BackstopSummary) Backstop {
	return Backstop{
		PoolID:            s.PoolID,
		Status:            s.Status,
		Utilization:       rate(s.Utilization),
		AvailableCapacity: fixed.ToDecimal(s.AvailableCapacity, fixed.Decimals7),
		ExchangeRate:      rate(s.ExchangeRate),
		BackstopAPR:       s.BackstopAPR.Round(8),
		EmissionsAPR:      s.EmissionsAPR.Round(8),
		Q4WDelay:          s.Q4W.Delay.String(),
		Q4WDelaySeconds:   int64(s.Q4W.Delay / time.Second),
		Q4WReasons:        s.Q4W.Reasons,
	}
}

// WithdrawalImpact withdrawal impact view
type WithdrawalImpact struct {
	WithdrawalID         string                  `json:"withdrawal_id"`
	RemainingTokens      decimal.Decimal         `json:"remaining_tokens"`
	MinThreshold         decimal.Decimal         `json:"min_threshold"`
	ShareWithdrawn       decimal.Decimal         `json:"share_withdrawn"`
	Severity             core.WithdrawalSeverity `json:"severity"`
	BreachesMinThreshold bool                    `json:"breaches_min_threshold"`
}

// WithdrawalImpactView withdrawal impact view
func WithdrawalImpactView(i *core.WithdrawalImpact) WithdrawalImpact {
	return WithdrawalImpact{
		WithdrawalID:         i.WithdrawalID,
		RemainingTokens:      fixed.ToDecimal(i.RemainingTokens, fixed.Decimals7),
		MinThreshold:         fixed.ToDecimal(i.MinThreshold, fixed.Decimals7),
		ShareWithdrawn:       rate(i.ShareWithdrawn),
		Severity:             i.Severity,
		BreachesMinThreshold: i.BreachesMinThreshold(),
	}
}

// Auction auction view
type Auction struct {
	*core.AuctionData
	EndTime    time.Time       `json:"end_time"`
	IsActive   bool            `json:"is_active"`
	HasEnded   bool            `json:"has_ended"`
	ReserveMet bool            `json:"reserve_met"`
	NextMinBid decimal.Decimal `json:"next_min_bid"`
}

// AuctionView auction view at now
func AuctionView(a *core.AuctionData, now time.Time) Auction {
	return Auction{
		AuctionData: a,
		EndTime:     a.EndTime(),
		IsActive:    a.IsActive(now),
		HasEnded:    a.HasEnded(now),
		ReserveMet:  a.ReserveMet(),
		NextMinBid:  a.NextMinBid(),
	}
}

// EmissionsAccrual emissions accrual view
type EmissionsAccrual struct {
	UserAddress    string          `json:"user_address"`
	ElapsedSeconds int64           `json:"elapsed_seconds"`
	UserShare      decimal.Decimal `json:"user_share"`
	NewlyAccrued   decimal.Decimal `json:"newly_accrued"`
	TotalAccrued   decimal.Decimal `json:"total_accrued"`
	CappedBySupply bool            `json:"capped_by_supply"`
	CappedByEnd    bool            `json:"capped_by_end"`
}

// EmissionsAccrualView emissions accrual view
func EmissionsAccrualView(a *core.EmissionsAccrual) EmissionsAccrual {
	return EmissionsAccrual{
		UserAddress:    a.UserAddress,
		ElapsedSeconds: int64(a.Elapsed / time.Second),
		UserShare:      rate(a.UserShare),
		NewlyAccrued:   fixed.ToDecimal(a.NewlyAccrued, fixed.Decimals7),
		TotalAccrued:   fixed.ToDecimal(a.TotalAccrued, fixed.Decimals7),
		CappedBySupply: a.CappedBySupply,
		CappedByEnd:    a.CappedByEnd,
	}
}
