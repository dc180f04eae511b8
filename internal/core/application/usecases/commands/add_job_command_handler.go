package commands

import (
	"context"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/ports"
)

// AddJobCommandHandler handles the business logic for registering job offers.
// Constructs the validated Job aggregate and stores it in the catalog.
//
// Example:
//
//	handler := NewAddJobCommandHandler(catalog)
//	cmd, _ := NewAddJobCommand(kernel.NewUUID(), "Tutor", "", "remote",
//	    20, 10, kernel.Schedule{}, true, time.Now())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job registration failed: %w", err)
//	}
type AddJobCommandHandler struct {
	catalog ports.JobCatalog
}

// NewAddJobCommandHandler creates a handler for job registration.
func NewAddJobCommandHandler(catalog ports.JobCatalog) AddJobCommandHandler {
	return AddJobCommandHandler{
		catalog: catalog,
	}
}

// Handle processes the job registration command.
// All field validation runs inside job.NewJob; invalid offers are rejected
// before anything reaches the catalog.
func (h AddJobCommandHandler) Handle(ctx context.Context, cmd AddJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	offer, err := job.NewJob(
		cmd.JobID(),
		cmd.Title(),
		cmd.Company(),
		cmd.Location(),
		cmd.HourlyRate(),
		cmd.HoursPerWeek(),
		cmd.Schedule(),
		cmd.Remote(),
		cmd.PostedAt(),
	)
	if err != nil {
		return err
	}

	return h.catalog.Add(ctx, offer)
}
