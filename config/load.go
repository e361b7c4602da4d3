package config

import (
	"blend/core"
	"blend/internal/backstop"
	"blend/worker/modifier"
	"time"
)

const (
	defaultSnapshotDir = "./pools"
	defaultCacheTTL    = 10 * time.Second
	defaultLocation    = "UTC"
)

func defaultConfig(cfg *core.Config) {
	if cfg.App.Location == "" {
		cfg.App.Location = defaultLocation
	}

	if cfg.Snapshot.Dir == "" {
		cfg.Snapshot.Dir = defaultSnapshotDir
	}

	if cfg.Snapshot.CacheTTL <= 0 {
		cfg.Snapshot.CacheTTL = defaultCacheTTL
	}

	if cfg.Worker.Spec == "" {
		cfg.Worker.Spec = modifier.DefaultSpec
	}

	cfg.Policy = backstop.WithDefaults(cfg.Policy)
}
