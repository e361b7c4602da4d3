package core

import (
	"context"
	"math/big"
	"time"
)

// InterestRateConfig rate curve of a reserve, every field is fixed point at 7 decimals
type InterestRateConfig struct {
	// utilization the curve steers toward, (0, 1)
	TargetUtilization *big.Int `json:"target_util" yaml:"target_util"`
	RBase             *big.Int `json:"r_base" yaml:"r_base"`
	ROne              *big.Int `json:"r_one" yaml:"r_one"`
	RTwo              *big.Int `json:"r_two" yaml:"r_two"`
	// emergency slope above 95% utilization, never scaled by the modifier
	RThree     *big.Int `json:"r_three" yaml:"r_three"`
	Reactivity *big.Int `json:"reactivity" yaml:"reactivity"`
	// on-chain interest rate modifier at the time of the snapshot
	InterestRateModifier *big.Int `json:"ir_mod" yaml:"ir_mod"`
}

// ReserveSnapshot reserve state of a pool as decoded from the chain
type ReserveSnapshot struct {
	AssetID  string             `json:"asset_id" yaml:"asset_id"`
	Symbol   string             `json:"symbol" yaml:"symbol"`
	Decimals int32              `json:"decimals" yaml:"decimals"`
	Config   InterestRateConfig `json:"config" yaml:"config"`
	// b/d token rates, 12 decimals
	BRate *big.Int `json:"b_rate" yaml:"b_rate"`
	DRate *big.Int `json:"d_rate" yaml:"d_rate"`
	// b/d token supplies, in asset decimals
	BSupply        *big.Int  `json:"b_supply" yaml:"b_supply"`
	DSupply        *big.Int  `json:"d_supply" yaml:"d_supply"`
	BackstopCredit *big.Int  `json:"backstop_credit" yaml:"backstop_credit"`
	LastTime       time.Time `json:"last_time" yaml:"last_time"`
}

// RateModifierState reactive modifier tracked for one pool key
type RateModifierState struct {
	PoolID              string    `json:"pool_id"`
	CurrentModifier     *big.Int  `json:"current_modifier"`
	LastUpdateTimestamp time.Time `json:"last_update_timestamp"`
}

// Clone deep copy
func (s *RateModifierState) Clone() *RateModifierState {
	if s == nil {
		return nil
	}

	return &RateModifierState{
		PoolID:              s.PoolID,
		CurrentModifier:     new(big.Int).Set(s.CurrentModifier),
		LastUpdateTimestamp: s.LastUpdateTimestamp,
	}
}

// ModifierKey pool key used to track the modifier of a single reserve
func ModifierKey(poolID, assetID string) string {
	return poolID + "/" + assetID
}

// ReserveRates computed rates of a reserve
type ReserveRates struct {
	AssetID     string   `json:"asset_id"`
	Symbol      string   `json:"symbol"`
	Utilization *big.Int `json:"utilization"`
	Modifier    *big.Int `json:"modifier"`
	BorrowRate  *big.Int `json:"borrow_rate"`
	SupplyAPR   *big.Int `json:"supply_apr"`
	// display only
	BorrowAPY float64 `json:"borrow_apy"`
	SupplyAPY float64 `json:"supply_apy"`
	// d rate projected to the evaluation time
	NextDRate *big.Int `json:"next_d_rate"`
}

// IRateModifierStore reactive rate modifier store interface
type IRateModifierStore interface {
	GetOrCreate(ctx context.Context, poolID string, cfg *InterestRateConfig) *RateModifierState
	Advance(ctx context.Context, poolID string, utilization *big.Int, cfg *InterestRateConfig, now time.Time) (*RateModifierState, error)
	Find(ctx context.Context, poolID string) (*RateModifierState, bool)
	List(ctx context.Context) []*RateModifierState
	Reset()
}

// IMarketService pool rate service interface
type IMarketService interface {
	ReserveRates(ctx context.Context, poolID string, reserve *ReserveSnapshot, backstopTakeRate *big.Int, now time.Time) (*ReserveRates, error)
	PoolRates(ctx context.Context, pool *PoolSnapshot, now time.Time) ([]*ReserveRates, error)
	// PreviewPoolRates rates of every reserve as of at, projected from the
	// tracked modifiers without committing them
	PreviewPoolRates(ctx context.Context, pool *PoolSnapshot, at time.Time) ([]*ReserveRates, error)
}
