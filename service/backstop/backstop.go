package backstop

import (
	"blend/core"
	"blend/internal/backstop"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type service struct {
	policy    core.BackstopPolicy
	marketSrv core.IMarketService
	oracleSrv core.IPriceOracleService
}

// New new backstop service
func New(
	policy core.BackstopPolicy,
	marketSrv core.IMarketService,
	oracleSrv core.IPriceOracleService,
) core.IBackstopService {
	return &service{
		policy:    backstop.WithDefaults(policy),
		marketSrv: marketSrv,
		oracleSrv: oracleSrv,
	}
}

func (s *service) Summary(ctx context.Context, pool *core.PoolSnapshot, now time.Time) (*core.BackstopSummary, error) {
	if pool.Backstop == nil {
		return nil, core.ErrBackstopNotFound
	}

	log := logger.FromContext(ctx).WithField("pool", pool.PoolID)
	bp := pool.Backstop

	summary := &core.BackstopSummary{
		PoolID:            pool.PoolID,
		Status:            bp.Status,
		Utilization:       bp.Utilization(),
		AvailableCapacity: bp.AvailableCapacity(),
		ExchangeRate:      bp.ExchangeRate(),
		BackstopAPR:       decimal.Zero,
		EmissionsAPR:      backstop.CalcEmissionsAPR(pool.Emissions, bp.TotalValueUSD),
		Q4W:               backstop.CalcQ4WDelay(bp, s.policy),
	}

	rates, err := s.marketSrv.PoolRates(ctx, pool, now)
	if err != nil {
		return nil, err
	}

	prices, err := s.oracleSrv.GetPrices(ctx, pool)
	if err != nil {
		// the apr is informational, the rest of the summary is still valid
		log.WithError(err).Warnln("summary: prices unavailable, backstop apr reported as zero")
		return summary, nil
	}

	reserves := make([]backstop.ReserveInterest, 0, len(rates))
	for _, rate := range rates {
		r, ok := pool.Reserve(rate.AssetID)
		if !ok {
			continue
		}

		reserves = append(reserves, backstop.NewReserveInterest(r, rate.BorrowRate, prices[rate.AssetID]))
	}

	summary.BackstopAPR = backstop.CalcBackstopAPR(reserves, bp.TakeRate, bp.TotalValueUSD)
	return summary, nil
}

func (s *service) EmissionsAccrual(ctx context.Context, pool *core.PoolSnapshot, user *core.UserEmissionsState, now time.Time) (*core.EmissionsAccrual, error) {
	if pool.Backstop == nil {
		return nil, core.ErrBackstopNotFound
	}

	emissions := pool.Emissions
	if emissions == nil {
		emissions = &core.EmissionsData{PoolID: pool.PoolID}
	}

	return backstop.CalcEmissionsAccrual(user, emissions, pool.Backstop, now), nil
}

func (s *service) WithdrawalImpact(ctx context.Context, pool *core.PoolSnapshot, withdrawalID string) (*core.WithdrawalImpact, error) {
	if pool.Backstop == nil {
		return nil, core.ErrBackstopNotFound
	}

	w, ok := pool.Withdrawal(withdrawalID)
	if !ok {
		return nil, core.ErrWithdrawalNotFound
	}

	return backstop.AssessWithdrawalImpact(w, pool.Backstop, s.policy), nil
}

func (s *service) AuctionParameters(ctx context.Context, auctionType core.AuctionType, urgency core.Urgency, assetValueUSD decimal.Decimal) (*core.AuctionParameters, error) {
	return backstop.DeriveAuctionParameters(auctionType, urgency, assetValueUSD, s.policy)
}

func (s *service) ValidateBid(ctx context.Context, pool *core.PoolSnapshot, auctionID, bidder string, amount decimal.Decimal, now time.Time) (*core.BidValidation, error) {
	auction, ok := pool.Auction(auctionID)
	if !ok {
		return nil, core.ErrAuctionNotFound
	}

	v := backstop.ValidateBid(auction, bidder, amount, now, s.policy)
	if !v.IsValid {
		logger.FromContext(ctx).WithField("auction", auctionID).Debugf("bid rejected: %v", v.Issues)
	}

	return v, nil
}
