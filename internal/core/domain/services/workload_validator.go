package services

import (
	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/model/worker"
)

// WorkloadValidator is a domain service that checks a set of jobs against a
// worker's constraints.
//
// Checks performed:
//   - Hard: combined weekly hours must not exceed the worker's cap
//   - Hard: no job schedule may overlap the worker's existing commitments
//   - Informational: when an income goal is set, combined income below the
//     goal is flagged but never rejected
//
// The validator validates its inputs first: an improperly constructed job or
// constraints value fails fast before any checking runs.
type WorkloadValidator struct {
	detector ConflictDetector
}

// NewWorkloadValidator creates a new WorkloadValidator instance.
func NewWorkloadValidator() WorkloadValidator {
	return WorkloadValidator{
		detector: NewConflictDetector(),
	}
}

// Validate checks the given jobs against the worker's constraints.
//
// Parameters:
//   - jobs: The jobs whose combined workload to check (each must be valid)
//   - constraints: The worker's constraints (must be valid)
//
// Returns:
//   - match.Workload: Totals plus hard and informational findings
//   - error: Validation error if any input was not properly constructed
//
// A Workload with failed checks is a normal, non-error outcome; the error
// return only signals invalid input.
func (v WorkloadValidator) Validate(
	jobs []*job.Job,
	constraints worker.Constraints,
) (match.Workload, error) {
	if err := constraints.Validate(); err != nil {
		return match.Workload{}, err
	}

	var totalHours, combinedIncome float64
	var commitmentConflicts []match.ConflictDetail

	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return match.Workload{}, err
		}

		totalHours += j.HoursPerWeek()
		combinedIncome += j.WeeklyPay()

		commitmentConflicts = append(commitmentConflicts,
			v.detector.Detect(j.Schedule(), constraints.ExistingCommitments())...)
	}

	return match.Workload{
		TotalHours:          totalHours,
		CombinedIncome:      combinedIncome,
		HoursOk:             totalHours <= constraints.MaxHoursPerWeek(),
		CommitmentConflicts: commitmentConflicts,
		BelowIncomeGoal:     constraints.HasIncomeGoal() && combinedIncome < constraints.MinIncomeGoal(),
	}, nil
}
