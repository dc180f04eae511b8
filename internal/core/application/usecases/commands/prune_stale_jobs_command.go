package commands

import (
	"errors"
	"time"

	"jobassist/internal/pkg/errs"
	"jobassist/internal/pkg/guard"
)

var (
	ErrPruneStaleJobsCommandIsNotConstructed = errors.New(
		"PruneStaleJobsCommand must be created via NewPruneStaleJobsCommand constructor",
	)
	// ErrRetentionIsRequired is returned when the retention window is not positive.
	ErrRetentionIsRequired = errs.NewValueIsRequiredError("retention")
)

// PruneStaleJobsCommand represents a request to evict job offers older than
// a retention window from the catalog. Listing feeds go stale quickly; the
// background prune keeps the candidate pool fresh without any durable storage.
type PruneStaleJobsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPruneStaleJobsCommand creates a command to evict offers older than the
// given retention window. The window must be positive.
func NewPruneStaleJobsCommand(retention time.Duration) (PruneStaleJobsCommand, error) {
	cmd := PruneStaleJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PruneStaleJobsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPruneStaleJobsCommandIsNotConstructed if validation fails.
func (c PruneStaleJobsCommand) Validate() error {
	return c.guard.Validate(ErrPruneStaleJobsCommandIsNotConstructed)
}

// Retention returns how long offers stay in the catalog after posting.
func (c PruneStaleJobsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PruneStaleJobsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsRequired
	}

	c.retention = retention
	return nil
}
