package snapshot

import (
	"blend/core"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

type snapshotStore struct {
	dir string
}

// New new snapshot store instance reading <pool_id>.yaml files from dir
func New(dir string) core.ISnapshotStore {
	return &snapshotStore{
		dir: dir,
	}
}

func (s *snapshotStore) Find(ctx context.Context, poolID string) (*core.PoolSnapshot, error) {
	if poolID == "" || strings.ContainsAny(poolID, `/\`) || strings.HasPrefix(poolID, ".") {
		return nil, core.ErrPoolNotFound
	}

	return s.load(filepath.Join(s.dir, poolID+fileExt))
}

func (s *snapshotStore) All(ctx context.Context) ([]*core.PoolSnapshot, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*"+fileExt))
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	pools := make([]*core.PoolSnapshot, 0, len(files))
	for _, f := range files {
		pool, err := s.load(f)
		if err != nil {
			return nil, err
		}

		pools = append(pools, pool)
	}

	return pools, nil
}

func (s *snapshotStore) load(file string) (*core.PoolSnapshot, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrPoolNotFound
		}

		return nil, err
	}

	var pool core.PoolSnapshot
	if err := yaml.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(file), err)
	}

	if pool.PoolID == "" {
		pool.PoolID = strings.TrimSuffix(filepath.Base(file), fileExt)
	}

	if pool.Backstop != nil && pool.Backstop.PoolID == "" {
		pool.Backstop.PoolID = pool.PoolID
	}

	return &pool, nil
}

// Save writes the snapshot to <pool_id>.yaml
func Save(dir string, pool *core.PoolSnapshot) error {
	data, err := yaml.Marshal(pool)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, pool.PoolID+fileExt), data, 0o644)
}
