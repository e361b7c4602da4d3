package market

import (
	"blend/core"
	"blend/internal/blend"
	"blend/pkg/fixed"
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/fox-one/pkg/logger"
)

type service struct {
	modifiers core.IRateModifierStore
}

// New new market service
func New(modifiers core.IRateModifierStore) core.IMarketService {
	return &service{
		modifiers: modifiers,
	}
}

// modifierFunc resolves the modifier a reserve is priced with at now
type modifierFunc func(ctx context.Context, key string, util *big.Int, cfg *core.InterestRateConfig, now time.Time) (*big.Int, error)

// advance commits the modifier step to the store
func (s *service) advance(ctx context.Context, key string, util *big.Int, cfg *core.InterestRateConfig, now time.Time) (*big.Int, error) {
	state, err := s.modifiers.Advance(ctx, key, util, cfg, now)
	if errors.Is(err, core.ErrClockRegression) {
		// keep pricing with the last committed modifier
		logger.FromContext(ctx).WithField("key", key).Warnln("rates: clock regression, modifier not advanced")
		state = s.modifiers.GetOrCreate(ctx, key, cfg)
	} else if err != nil {
		return nil, err
	}

	return state.CurrentModifier, nil
}

// preview projects the tracked modifier to at, the store is left untouched
func (s *service) preview(ctx context.Context, key string, util *big.Int, cfg *core.InterestRateConfig, at time.Time) (*big.Int, error) {
	if util.Sign() < 0 || util.Cmp(fixed.Scalar7) > 0 {
		return nil, core.ErrInvalidUtilization
	}

	if r := blend.ValidateInterestRateConfig(cfg); !r.IsValid {
		return nil, core.ErrInvalidRateConfig
	}

	state, ok := s.modifiers.Find(ctx, key)
	if !ok {
		return blend.InitialModifier(cfg), nil
	}

	dt := at.Sub(state.LastUpdateTimestamp)
	if dt <= 0 {
		return state.CurrentModifier, nil
	}

	return blend.CalcNextModifier(state.CurrentModifier, util, cfg, int64(dt/time.Second)), nil
}

// ReserveRates advances the reactive modifier of the reserve to now, then
// evaluates the rate curve with it
func (s *service) ReserveRates(ctx context.Context, poolID string, reserve *core.ReserveSnapshot, backstopTakeRate *big.Int, now time.Time) (*core.ReserveRates, error) {
	return s.reserveRates(ctx, poolID, reserve, backstopTakeRate, now, s.advance)
}

func (s *service) reserveRates(ctx context.Context, poolID string, reserve *core.ReserveSnapshot, backstopTakeRate *big.Int, now time.Time, modifier modifierFunc) (*core.ReserveRates, error) {
	log := logger.FromContext(ctx).WithField("reserve", reserve.AssetID)

	util := blend.ReserveUtilization(reserve)
	key := core.ModifierKey(poolID, reserve.AssetID)

	mod, err := modifier(ctx, key, util, &reserve.Config, now)
	if err != nil {
		return nil, err
	}

	cfg := reserve.Config
	cfg.InterestRateModifier = mod

	curIr, err := blend.CalcKinkedInterestRate(util, &cfg)
	if err != nil {
		return nil, err
	}

	borrowAPR := blend.CalcBorrowAPR(curIr)
	supplyAPR := new(big.Int)
	if curIr.Cmp(fixed.Scalar7) > 0 {
		// supply apr is only defined up to a 100% borrow rate
		log.Debugf("rates: ir %s above 1, no supply apr", curIr)
	} else {
		supplyAPR = blend.CalcSupplyAPR(curIr, util, backstopTakeRate)
	}

	rates := &core.ReserveRates{
		AssetID:     reserve.AssetID,
		Symbol:      reserve.Symbol,
		Utilization: util,
		Modifier:    mod,
		BorrowRate:  borrowAPR,
		SupplyAPR:   supplyAPR,
		BorrowAPY:   blend.BorrowAPY(fixed.ToFloat(borrowAPR, fixed.Decimals7)),
		SupplyAPY:   blend.SupplyAPY(fixed.ToFloat(supplyAPR, fixed.Decimals7)),
		NextDRate:   new(big.Int),
	}

	if reserve.DRate != nil {
		var dt int64
		if !reserve.LastTime.IsZero() && now.After(reserve.LastTime) {
			dt = int64(now.Sub(reserve.LastTime) / time.Second)
		}
		rates.NextDRate = blend.AccrueDebtRate(reserve.DRate, curIr, dt)
	}

	log.Debugf("rates: util %s ir %s supply %s", util, curIr, supplyAPR)
	return rates, nil
}

func (s *service) PoolRates(ctx context.Context, pool *core.PoolSnapshot, now time.Time) ([]*core.ReserveRates, error) {
	return s.poolRates(ctx, pool, now, s.advance)
}

func (s *service) PreviewPoolRates(ctx context.Context, pool *core.PoolSnapshot, at time.Time) ([]*core.ReserveRates, error) {
	return s.poolRates(ctx, pool, at, s.preview)
}

func (s *service) poolRates(ctx context.Context, pool *core.PoolSnapshot, now time.Time, modifier modifierFunc) ([]*core.ReserveRates, error) {
	takeRate := new(big.Int)
	if pool.Backstop != nil && pool.Backstop.TakeRate != nil {
		takeRate = pool.Backstop.TakeRate
	}

	ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("pool", pool.PoolID))

	rates := make([]*core.ReserveRates, 0, len(pool.Reserves))
	for _, r := range pool.Reserves {
		rate, err := s.reserveRates(ctx, pool.PoolID, r, takeRate, now, modifier)
		if err != nil {
			return nil, fmt.Errorf("reserve %s: %w", r.AssetID, err)
		}

		rates = append(rates, rate)
	}

	return rates, nil
}
