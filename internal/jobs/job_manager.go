package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"jobassist/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	catalogPruneJob *CatalogPruneJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	pruneHandler commands.PruneStaleJobsCommandHandler,
	retention time.Duration,
	pruneSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		catalogPruneJob: NewCatalogPruneJob(pruneHandler, retention, pruneSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogPruneJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog prune job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogPruneJob.Stop()
}
