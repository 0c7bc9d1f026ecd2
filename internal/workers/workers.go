package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Workers runs a fixed set of workers side by side.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// periodicWorker calls job every interval until the context is cancelled.
type periodicWorker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)
	logger   *logger.Logger
}

// NewPeriodicWorker returns a Worker that invokes job on a ticker.
func NewPeriodicWorker(name string, interval time.Duration, job func(ctx context.Context), log *logger.Logger) Worker {
	return &periodicWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   log,
	}
}

func (p *periodicWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return
		case <-ticker.C:
			p.job(ctx)
		}
	}
}
