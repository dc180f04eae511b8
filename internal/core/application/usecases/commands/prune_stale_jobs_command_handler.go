package commands

import (
	"context"
	"time"

	"jobassist/internal/core/ports"
)

// PruneStaleJobsCommandHandler evicts stale offers from the catalog.
// Driven by the background prune job on a fixed schedule.
type PruneStaleJobsCommandHandler struct {
	catalog ports.JobCatalog
}

// NewPruneStaleJobsCommandHandler creates a handler for catalog pruning.
func NewPruneStaleJobsCommandHandler(catalog ports.JobCatalog) PruneStaleJobsCommandHandler {
	return PruneStaleJobsCommandHandler{
		catalog: catalog,
	}
}

// Handle removes offers posted before now minus the retention window.
// Returns how many offers were evicted.
func (h PruneStaleJobsCommandHandler) Handle(ctx context.Context, cmd PruneStaleJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.Retention())
	return h.catalog.RemoveOlderThan(ctx, cutoff)
}
