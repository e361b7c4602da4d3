package worker

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
)

// Worker long running worker
type Worker interface {
	Run(ctx context.Context) error
}

// IJob cron job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

// OnWork one round of work
type OnWork func() error

// BaseJob cron driven job, a round is skipped while the previous one is still running
type BaseJob struct {
	Cron   *cron.Cron
	OnWork OnWork

	mu        sync.Mutex
	isRunning bool
}

// Start start the cron scheduler
func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

// Stop stop the cron scheduler and wait for the running round
func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

// Run run one round unless one is in progress
func (job *BaseJob) Run() {
	job.mu.Lock()
	if job.isRunning {
		job.mu.Unlock()
		return
	}
	job.isRunning = true
	job.mu.Unlock()

	defer func() {
		job.mu.Lock()
		job.isRunning = false
		job.mu.Unlock()
	}()

	_ = job.OnWork()
}

// IsRunning a round is in progress
func (job *BaseJob) IsRunning() bool {
	job.mu.Lock()
	defer job.mu.Unlock()
	return job.isRunning
}
