package modifier

import (
	"blend/core"
	"blend/worker"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// DefaultSpec advance every pool once a minute
const DefaultSpec = "@every 1m"

// Worker advances the reactive rate modifier of every pool reserve on a schedule
type Worker struct {
	worker.BaseJob
	SnapshotStore core.ISnapshotStore
	MarketService core.IMarketService
	Now           func() time.Time
}

// New new modifier worker
func New(cfg *core.Config, snapshots core.ISnapshotStore, marketSrv core.IMarketService) (*Worker, error) {
	job := Worker{
		SnapshotStore: snapshots,
		MarketService: marketSrv,
		Now:           time.Now,
	}

	l, err := time.LoadLocation(cfg.App.Location)
	if err != nil {
		return nil, err
	}

	spec := cfg.Worker.Spec
	if spec == "" {
		spec = DefaultSpec
	}

	job.Cron = cron.New(cron.WithLocation(l))
	if _, err := job.Cron.AddFunc(spec, job.BaseJob.Run); err != nil {
		return nil, err
	}

	return &job, nil
}

// Run schedule rounds until ctx is done
func (w *Worker) Run(ctx context.Context) error {
	w.OnWork = func() error {
		return w.onWork(ctx)
	}

	_ = w.Start()
	<-ctx.Done()
	return w.Stop()
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "modifier")

	pools, err := w.SnapshotStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("list pools")
		return err
	}

	now := w.Now()

	var g errgroup.Group
	for _, pool := range pools {
		pool := pool
		g.Go(func() error {
			ctx := logger.WithContext(ctx, log.WithField("pool", pool.PoolID))
			rates, err := w.MarketService.PoolRates(ctx, pool, now)
			if err != nil {
				logger.FromContext(ctx).WithError(err).Errorln("advance modifiers")
				return err
			}

			for _, r := range rates {
				logger.FromContext(ctx).WithField("reserve", r.AssetID).Debugf("modifier %s borrow rate %s", r.Modifier, r.BorrowRate)
			}

			return nil
		})
	}

	return g.Wait()
}
