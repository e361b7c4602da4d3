package snapshot

import (
	"blend/core"
	"context"
	"time"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

const allKey = ":all"

// Cache keeps decoded snapshots for exp, concurrent misses of the same pool
// share one load
func Cache(store core.ISnapshotStore, exp time.Duration) core.ISnapshotStore {
	return &cacheSnapshotStore{
		ISnapshotStore: store,
		exp:            exp,
		cache:          gcache.New(256).LRU().Build(),
		sf:             &singleflight.Group{},
	}
}

type cacheSnapshotStore struct {
	core.ISnapshotStore
	exp   time.Duration
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheSnapshotStore) Find(ctx context.Context, poolID string) (*core.PoolSnapshot, error) {
	if v, err := s.cache.Get(poolID); err == nil {
		if pool, ok := v.(*core.PoolSnapshot); ok {
			return pool, nil
		}
	}

	v, err, _ := s.sf.Do(poolID, func() (interface{}, error) {
		pool, err := s.ISnapshotStore.Find(ctx, poolID)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(poolID, pool, s.exp)
		return pool, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.PoolSnapshot), nil
}

func (s *cacheSnapshotStore) All(ctx context.Context) ([]*core.PoolSnapshot, error) {
	if v, err := s.cache.Get(allKey); err == nil {
		if pools, ok := v.([]*core.PoolSnapshot); ok {
			return pools, nil
		}
	}

	v, err, _ := s.sf.Do(allKey, func() (interface{}, error) {
		pools, err := s.ISnapshotStore.All(ctx)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(allKey, pools, s.exp)
		for _, pool := range pools {
			_ = s.cache.SetWithExpire(pool.PoolID, pool, s.exp)
		}

		return pools, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*core.PoolSnapshot), nil
}
