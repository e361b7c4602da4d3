package oracle

import (
	"blend/core"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() *core.PoolSnapshot {
	return &core.PoolSnapshot{
		PoolID: "pool",
		Reserves: []*core.ReserveSnapshot{
			{AssetID: "usdc"},
			{AssetID: "xlm"},
		},
		Prices: []*core.PriceTicker{
			{AssetID: "usdc", Price: decimal.NewFromInt(1)},
			{AssetID: "xlm", Price: decimal.RequireFromString("0.12")},
		},
	}
}

func TestSnapshotPrices(t *testing.T) {
	s := New(core.PriceOracle{})

	prices, err := s.GetPrices(context.Background(), testPool())
	require.NoError(t, err)
	assert.Equal(t, "1", prices["usdc"].String())
	assert.Equal(t, "0.12", prices["xlm"].String())

	_, err = s.GetPrice(context.Background(), testPool(), "eth")
	assert.ErrorIs(t, err, core.ErrInvalidPrice)
}

func TestInvalidSnapshotPrice(t *testing.T) {
	pool := testPool()
	pool.Prices[1].Price = decimal.Zero

	_, err := New(core.PriceOracle{}).GetPrices(context.Background(), pool)
	assert.ErrorIs(t, err, core.ErrInvalidPrice)
}

func TestPulledPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tickers/usdc":
			_, _ = w.Write([]byte(`{"asset_id":"usdc","price":"0.999"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	s := New(core.PriceOracle{EndPoint: srv.URL, Timeout: time.Second})

	prices, err := s.GetPrices(context.Background(), testPool())
	require.NoError(t, err)
	assert.Equal(t, "0.999", prices["usdc"].String())
	// falls back to the snapshot
	assert.Equal(t, "0.12", prices["xlm"].String())
}
