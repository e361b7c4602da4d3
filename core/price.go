package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PriceTicker oracle price of an asset
type PriceTicker struct {
	AssetID   string          `json:"asset_id,omitempty" yaml:"asset_id"`
	Symbol    string          `json:"symbol,omitempty" yaml:"symbol"`
	Price     decimal.Decimal `json:"price,omitempty" yaml:"price"`
	Timestamp time.Time       `json:"timestamp,omitempty" yaml:"timestamp"`
}

// IPriceOracleService oracle price service interface
type IPriceOracleService interface {
	// GetPrice usd price of an asset in the pool
	GetPrice(ctx context.Context, pool *PoolSnapshot, assetID string) (decimal.Decimal, error)
	// GetPrices usd prices of every reserve asset in the pool
	GetPrices(ctx context.Context, pool *PoolSnapshot) (map[string]decimal.Decimal, error)
}
