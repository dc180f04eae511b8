package jobs

import (
	"context"
	"log/slog"
	"time"

	"jobassist/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CatalogPruneJob periodically evicts stale offers from the job catalog.
// Offers older than the retention window carry expired listings and would
// otherwise pollute match results indefinitely.
type CatalogPruneJob struct {
	handler   commands.PruneStaleJobsCommandHandler
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogPruneJob creates a job that prunes the catalog on the given cron
// schedule, evicting offers older than retention.
func NewCatalogPruneJob(
	handler commands.PruneStaleJobsCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *CatalogPruneJob {
	return &CatalogPruneJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "catalog_prune_job"),
	}
}

// Start begins the catalog prune job on its configured schedule.
func (j *CatalogPruneJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPruneStaleJobsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog prune job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Catalog prune job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Pruned stale job offers", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog prune job started", "schedule", j.schedule)
	return nil
}

// Stop stops the catalog prune job.
func (j *CatalogPruneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog prune job stopped")
}
