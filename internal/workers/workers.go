package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/service"

	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups ws under one lifecycle.
func NewWorkers(logger *logger.Logger, ws ...Worker) *Workers {
	return &Workers{workers: ws, logger: logger}
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gCtx)
		})
	}

	err := g.Wait()
	if w.logger != nil {
		w.logger.Info().Err(err).Int("workers", len(w.workers)).Msg("workers stopped")
	}
	return err
}

// NewSyncWorker returns a worker that keeps job running every interval until
// ctx is cancelled. When runAtStart is set, one cycle is run first and its
// failure is logged but not fatal.
func NewSyncWorker(job service.ClientSyncJob, syncService service.ClientSyncService, interval time.Duration, runAtStart bool, logger *logger.Logger) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		if runAtStart {
			if _, err := syncService.RunCycle(ctx); err != nil && ctx.Err() == nil {
				logger.Warn().Err(err).Str("func", "syncWorker.Run").Msg("initial sync cycle failed")
			}
		}

		job.Start(ctx, interval)
		defer job.Stop()

		logger.Info().Dur("interval", interval).Msg("sync worker started")
		<-ctx.Done()
		logger.Info().Msg("sync worker stopping")
		return nil
	})
}
