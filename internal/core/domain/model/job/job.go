package job

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/errs"
	"jobassist/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	// ErrTitleIsRequired is returned when attempting to create a job without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrJobIsNotConstructed is returned when using an improperly initialized Job.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Job represents a normalized job offer in the system.
// It is an immutable value-rich entity: once constructed it is never mutated,
// so instances can be shared freely across concurrent evaluations.
//
// Key invariants:
//   - Must have a valid unique identifier and a non-empty title
//   - Hourly rate must be a finite number >= 0
//   - Hours per week must be a finite number > 0
//   - The schedule, when non-empty, consists only of validated time blocks;
//     an empty schedule means the job is flexible about working hours
//
// Weekly pay is derived (hourly rate * hours per week), never stored.
//
// Example usage:
//
//	shift, _ := kernel.NewTimeBlock(kernel.Monday, 9*60, 17*60)
//	schedule, _ := kernel.NewSchedule(shift)
//	offer, err := job.NewJob(kernel.NewUUID(), "Barista", "Beanery", "Yerevan",
//	    12.5, 40, schedule, time.Now())
//	if err != nil {
//	    // Handle construction error
//	}
type Job struct {
	// id uniquely identifies the job offer
	id kernel.UUID
	// title is the human-readable position name
	title string
	// company is the hiring organization (optional)
	company string
	// location is the free-form workplace location (optional)
	location string
	// hourlyRate is the offered pay per hour
	hourlyRate float64
	// hoursPerWeek is the weekly workload the offer expects
	hoursPerWeek float64
	// schedule is the weekly availability the offer occupies; empty = flexible
	schedule kernel.Schedule
	// remote marks offers that can be worked from anywhere
	remote bool
	// postedAt is when the offer was published; zero when unknown
	postedAt time.Time
	// guard ensures the job was properly constructed
	guard guard.ConstructorGuard
}

// NewJob creates a new Job with the specified attributes.
// This is the only way to create a valid Job instance; the constructor
// validates every field and never silently coerces invalid input.
//
// A job whose location mentions "remote" is treated as remote even when the
// remote flag is not set, mirroring how upstream listing feeds mark such offers.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - title: Position name (must be non-empty)
//   - company: Hiring organization (may be empty)
//   - location: Workplace location (may be empty)
//   - hourlyRate: Pay per hour (must be finite and >= 0)
//   - hoursPerWeek: Expected weekly workload (must be finite and > 0)
//   - schedule: Weekly blocks the offer occupies; empty means flexible
//   - remote: Whether the offer is explicitly remote
//   - postedAt: Publication time; pass the zero time when unknown
//
// Returns:
//   - *Job: A fully initialized job offer
//   - error: Validation error if any attribute is invalid (aggregated for multiple issues)
func NewJob(
	id kernel.UUID,
	title string,
	company string,
	location string,
	hourlyRate float64,
	hoursPerWeek float64,
	schedule kernel.Schedule,
	remote bool,
	postedAt time.Time,
) (*Job, error) {
	j := &Job{
		company:  company,
		postedAt: postedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setHourlyRate(hourlyRate),
		j.setHoursPerWeek(hoursPerWeek),
		j.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	j.location = location
	j.remote = remote || strings.Contains(strings.ToLower(location), "remote")

	return j, nil
}

// Validate ensures the Job instance was properly constructed through NewJob.
// This prevents bypassing validation by directly instantiating the struct.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by their unique identifiers.
// Jobs are considered equal if they have the same ID.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Title returns the position name.
func (j *Job) Title() string {
	return j.title
}

// Company returns the hiring organization. May be empty.
func (j *Job) Company() string {
	return j.company
}

// Location returns the free-form workplace location. May be empty.
func (j *Job) Location() string {
	return j.location
}

// HourlyRate returns the offered pay per hour.
func (j *Job) HourlyRate() float64 {
	return j.hourlyRate
}

// HoursPerWeek returns the weekly workload the offer expects.
func (j *Job) HoursPerWeek() float64 {
	return j.hoursPerWeek
}

// Schedule returns the weekly blocks the offer occupies.
// An empty schedule means the job is flexible.
func (j *Job) Schedule() kernel.Schedule {
	return j.schedule
}

// IsRemote reports whether the offer can be worked from anywhere.
func (j *Job) IsRemote() bool {
	return j.remote
}

// PostedAt returns when the offer was published.
// The zero time means the publication time is unknown.
func (j *Job) PostedAt() time.Time {
	return j.postedAt
}

// WeeklyPay returns the derived weekly income of the offer:
// hourly rate multiplied by hours per week.
func (j *Job) WeeklyPay() float64 {
	return j.hourlyRate * j.hoursPerWeek
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	j.id = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}

	j.title = title
	return nil
}

func (j *Job) setHourlyRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"hourlyRate",
			fmt.Errorf("rate must be a finite number >= 0, got %v", rate),
		)
	}

	j.hourlyRate = rate
	return nil
}

func (j *Job) setHoursPerWeek(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"hoursPerWeek",
			fmt.Errorf("hours must be a finite number > 0, got %v", hours),
		)
	}

	j.hoursPerWeek = hours
	return nil
}

func (j *Job) setSchedule(schedule kernel.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	j.schedule = schedule
	return nil
}
