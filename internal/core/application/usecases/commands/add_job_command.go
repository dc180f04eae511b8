// Package commands contains business operations that modify the job catalog.
// All commands follow a consistent pattern: a guarded, constructor-validated
// command struct plus a handler exposing Handle(ctx, cmd).
package commands

import (
	"errors"
	"time"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/guard"
)

var ErrAddJobCommandIsNotConstructed = errors.New(
	"AddJobCommand must be created via NewAddJobCommand constructor",
)

// AddJobCommand represents a request to register a normalized job offer in
// the catalog. Field-level validation (rate, hours, schedule) happens when
// the handler constructs the Job aggregate; the command itself only checks
// the identifier.
//
// Example:
//
//	cmd, err := NewAddJobCommand(kernel.NewUUID(), "Barista", "Beanery",
//	    "Yerevan", 12.5, 40, schedule, false, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register job: %w", err)
//	}
type AddJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	title        string
	company      string
	location     string
	hourlyRate   float64
	hoursPerWeek float64
	schedule     kernel.Schedule
	remote       bool
	postedAt     time.Time

	guard guard.ConstructorGuard
}

// NewAddJobCommand creates a command to register a job offer.
// Validates the job ID; the remaining fields are validated by the Job
// constructor inside the handler so that all field rules live in one place.
func NewAddJobCommand(
	jobID kernel.UUID,
	title string,
	company string,
	location string,
	hourlyRate float64,
	hoursPerWeek float64,
	schedule kernel.Schedule,
	remote bool,
	postedAt time.Time,
) (AddJobCommand, error) {
	cmd := AddJobCommand{
		title:        title,
		company:      company,
		location:     location,
		hourlyRate:   hourlyRate,
		hoursPerWeek: hoursPerWeek,
		schedule:     schedule,
		remote:       remote,
		postedAt:     postedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return AddJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddJobCommandIsNotConstructed if validation fails.
func (c AddJobCommand) Validate() error {
	return c.guard.Validate(ErrAddJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the offer.
func (c AddJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Title returns the position name.
func (c AddJobCommand) Title() string {
	return c.title
}

// Company returns the hiring organization.
func (c AddJobCommand) Company() string {
	return c.company
}

// Location returns the free-form workplace location.
func (c AddJobCommand) Location() string {
	return c.location
}

// HourlyRate returns the offered pay per hour.
func (c AddJobCommand) HourlyRate() float64 {
	return c.hourlyRate
}

// HoursPerWeek returns the weekly workload the offer expects.
func (c AddJobCommand) HoursPerWeek() float64 {
	return c.hoursPerWeek
}

// Schedule returns the weekly blocks the offer occupies.
func (c AddJobCommand) Schedule() kernel.Schedule {
	return c.schedule
}

// Remote reports whether the offer is explicitly remote.
func (c AddJobCommand) Remote() bool {
	return c.remote
}

// PostedAt returns the offer's publication time.
func (c AddJobCommand) PostedAt() time.Time {
	return c.postedAt
}

func (c *AddJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
