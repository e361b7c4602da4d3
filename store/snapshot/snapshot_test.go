package snapshot

import (
	"blend/core"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePool(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSnapshotStoreFind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePool(t, dir, "pool-a.yaml", poolYAML)

	s := New(dir)

	pool, err := s.Find(ctx, "pool-a")
	require.NoError(t, err)

	assert.Equal(t, "pool-a", pool.PoolID)
	require.Len(t, pool.Reserves, 1)

	r, ok := pool.Reserve("usdc")
	require.True(t, ok)
	assert.Equal(t, "7500000", r.Config.TargetUtilization.String())
	assert.Equal(t, "700000000000", r.DSupply.String())
	assert.Equal(t, int32(7), r.Decimals)

	require.NotNil(t, pool.Backstop)
	assert.Equal(t, "pool-a", pool.Backstop.PoolID)
	assert.Equal(t, core.BackstopStatusActive, pool.Backstop.Status)
	assert.Equal(t, "350000", pool.Backstop.TotalValueUSD.String())

	a, ok := pool.Auction("auction-1")
	require.True(t, ok)
	assert.Equal(t, core.AuctionTypeBadDebt, a.AuctionType)
	assert.Equal(t, time.Hour, a.Duration)
	assert.Equal(t, "550", a.ReservePrice.String())

	w, ok := pool.Withdrawal("w-1")
	require.True(t, ok)
	assert.Equal(t, core.QueuedWithdrawalStatusQueued, w.Status)

	assert.Equal(t, "0.05", pool.Emissions.TokenPriceUSD.String())
}

func TestSnapshotStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := New(t.TempDir())

	for _, id := range []string{"missing", "", "../etc/passwd", ".hidden"} {
		_, err := s.Find(ctx, id)
		assert.ErrorIs(t, err, core.ErrPoolNotFound, id)
	}
}

func TestSnapshotStoreAll(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePool(t, dir, "pool-b.yaml", "name: b\n")
	writePool(t, dir, "pool-a.yaml", poolYAML)
	writePool(t, dir, "notes.txt", "ignored")

	pools, err := New(dir).All(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "pool-a", pools[0].PoolID)
	// id falls back to the file name
	assert.Equal(t, "pool-b", pools[1].PoolID)
}

func TestSnapshotStoreInvalid(t *testing.T) {
	dir := t.TempDir()
	writePool(t, dir, "bad.yaml", "reserves: {")

	_, err := New(dir).Find(context.Background(), "bad")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writePool(t, dir, "pool-a.yaml", poolYAML)

	src := t.TempDir()
	pool, err := New(dir).Find(ctx, "pool-a")
	require.NoError(t, err)
	require.NoError(t, Save(src, pool))

	loaded, err := New(src).Find(ctx, "pool-a")
	require.NoError(t, err)
	assert.Equal(t, pool.Reserves[0].DRate.String(), loaded.Reserves[0].DRate.String())
	assert.Equal(t, pool.Auctions[0].Duration, loaded.Auctions[0].Duration)
	assert.True(t, pool.Backstop.TotalValueUSD.Equal(loaded.Backstop.TotalValueUSD))
}
