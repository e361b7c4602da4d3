package oracle

import (
	"blend/core"
	"blend/pkg/resthttp"
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi/middleware"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PriceService oracle price service
//
// Prices are pulled from the configured endpoint when one is set; the prices
// carried by the pool snapshot are used otherwise, or when the pull fails.
type PriceService struct {
	client *resty.Client
}

// New new oracle price service
func New(cfg core.PriceOracle) core.IPriceOracleService {
	s := &PriceService{}
	if cfg.EndPoint != "" {
		s.client = resthttp.New(cfg.EndPoint, cfg.Timeout)
	}

	return s
}

// GetPrice usd price of an asset
func (s *PriceService) GetPrice(ctx context.Context, pool *core.PoolSnapshot, assetID string) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("asset", assetID)

	if s.client != nil {
		ticker, err := s.PullPriceTicker(ctx, assetID)
		if err == nil && ticker.Price.IsPositive() {
			return ticker.Price, nil
		}

		log.WithError(err).Warnln("pull price failed, use snapshot price")
	}

	for _, p := range pool.Prices {
		if p.AssetID == assetID {
			if !p.Price.IsPositive() {
				return decimal.Zero, core.ErrInvalidPrice
			}

			return p.Price, nil
		}
	}

	return decimal.Zero, fmt.Errorf("price of %s: %w", assetID, core.ErrInvalidPrice)
}

// GetPrices prices of every reserve asset, pulled concurrently
func (s *PriceService) GetPrices(ctx context.Context, pool *core.PoolSnapshot) (map[string]decimal.Decimal, error) {
	var (
		mu     sync.Mutex
		prices = make(map[string]decimal.Decimal, len(pool.Reserves))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range pool.Reserves {
		assetID := r.AssetID
		g.Go(func() error {
			price, err := s.GetPrice(ctx, pool, assetID)
			if err != nil {
				return err
			}

			mu.Lock()
			prices[assetID] = price
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return prices, nil
}

// PullPriceTicker pull price ticker
func (s *PriceService) PullPriceTicker(ctx context.Context, assetID string) (*core.PriceTicker, error) {
	var ticker core.PriceTicker
	uri := "/api/tickers/" + url.PathEscape(assetID)
	if _, err := resthttp.Execute(resthttp.Request(ctx, s.client, middleware.GetReqID(ctx)), "GET", uri, nil, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}
