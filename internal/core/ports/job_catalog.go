package ports

import (
	"context"
	"time"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
)

// JobCatalog defines the contract for the pool of candidate job offers the
// matching engine evaluates. The catalog preserves insertion order, which
// keeps the matcher's tie-breaking deterministic across requests.
type JobCatalog interface {
	// Add registers a job offer in the catalog.
	// Re-adding an offer with a known ID replaces the stored offer in place,
	// keeping its original position.
	Add(ctx context.Context, offer *job.Job) error

	// Get retrieves a job offer by its unique identifier.
	// Returns an ObjectNotFoundError when no offer has the given ID.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAll returns a snapshot of all offers in insertion order.
	// The returned slice is owned by the caller.
	GetAll(ctx context.Context) ([]*job.Job, error)

	// RemoveOlderThan evicts offers posted before the cutoff and returns how
	// many were removed. Offers with an unknown posting time are kept.
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
