package worker

import (
	"errors"
	"fmt"
	"math"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/errs"
	"jobassist/internal/pkg/guard"
)

// ErrConstraintsAreNotConstructed is returned when using improperly initialized Constraints.
var ErrConstraintsAreNotConstructed = errors.New("Constraints must be created via NewConstraints constructor")

// Constraints represents a worker's time and income requirements for job matching.
// It is an immutable value object validated at construction.
//
// Invariants:
//   - Maximum hours per week must be a finite number > 0
//   - The minimum income goal must be a finite number >= 0; zero means no goal
//   - Existing commitments, when present, consist of validated time blocks
//
// Existing commitments model the worker's own fixed obligations (classes,
// another contract) that no chosen job may conflict with.
//
// Example usage:
//
//	classes, _ := kernel.NewTimeBlock(kernel.Tuesday, 10*60, 12*60)
//	commitments, _ := kernel.NewSchedule(classes)
//	constraints, err := worker.NewConstraints(60, 1200, commitments)
//	if err != nil {
//	    // Handle validation error
//	}
type Constraints struct { //nolint:recvcheck //using for validation
	// maxHoursPerWeek caps the combined workload of matched jobs
	maxHoursPerWeek float64
	// minIncomeGoal is the desired combined weekly income; 0 = no goal
	minIncomeGoal float64
	// commitments are the worker's own fixed weekly obligations
	commitments kernel.Schedule

	guard guard.ConstructorGuard
}

// NewConstraints creates worker constraints with validation.
//
// Parameters:
//   - maxHoursPerWeek: Upper bound on combined weekly hours (finite, > 0)
//   - minIncomeGoal: Desired combined weekly income (finite, >= 0; 0 disables the goal)
//   - commitments: The worker's fixed weekly obligations; pass the zero
//     Schedule when there are none
//
// Returns:
//   - Constraints: A valid constraints instance
//   - error: Validation error if any parameter is invalid
func NewConstraints(
	maxHoursPerWeek float64,
	minIncomeGoal float64,
	commitments kernel.Schedule,
) (Constraints, error) {
	c := Constraints{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setMaxHoursPerWeek(maxHoursPerWeek),
		c.setMinIncomeGoal(minIncomeGoal),
		c.setCommitments(commitments),
	); err != nil {
		return Constraints{}, err
	}

	return c, nil
}

// Validate ensures the Constraints were created through the constructor.
// Returns ErrConstraintsAreNotConstructed for zero-value instances.
func (c Constraints) Validate() error {
	return c.guard.Validate(ErrConstraintsAreNotConstructed)
}

// MaxHoursPerWeek returns the cap on combined weekly hours.
func (c Constraints) MaxHoursPerWeek() float64 {
	return c.maxHoursPerWeek
}

// MinIncomeGoal returns the desired combined weekly income.
// Zero means the worker has not set a goal.
func (c Constraints) MinIncomeGoal() float64 {
	return c.minIncomeGoal
}

// HasIncomeGoal reports whether an income goal is set.
func (c Constraints) HasIncomeGoal() bool {
	return c.minIncomeGoal > 0
}

// ExistingCommitments returns the worker's fixed weekly obligations.
// The empty schedule means the worker has none.
func (c Constraints) ExistingCommitments() kernel.Schedule {
	return c.commitments
}

func (c *Constraints) setMaxHoursPerWeek(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxHoursPerWeek",
			fmt.Errorf("hours must be a finite number > 0, got %v", hours),
		)
	}

	c.maxHoursPerWeek = hours
	return nil
}

func (c *Constraints) setMinIncomeGoal(goal float64) error {
	if math.IsNaN(goal) || math.IsInf(goal, 0) || goal < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minIncomeGoal",
			fmt.Errorf("income goal must be a finite number >= 0, got %v", goal),
		)
	}

	c.minIncomeGoal = goal
	return nil
}

func (c *Constraints) setCommitments(commitments kernel.Schedule) error {
	if err := commitments.Validate(); err != nil {
		return err
	}

	c.commitments = commitments
	return nil
}
