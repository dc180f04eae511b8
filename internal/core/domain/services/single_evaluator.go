package services

import (
	"sort"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/model/worker"
)

// SingleEvaluator is a domain service that evaluates each job on its own
// against a worker's constraints: the degenerate one-job case used as the
// fallback when no feasible pair exists.
//
// Mirroring the pair matcher's policy, only feasible jobs surface: an offer
// over the worker's hours cap or conflicting with existing commitments is
// omitted from the results rather than reported as a failure.
type SingleEvaluator struct {
	validator WorkloadValidator
}

// NewSingleEvaluator creates a new SingleEvaluator instance.
func NewSingleEvaluator() SingleEvaluator {
	return SingleEvaluator{
		validator: NewWorkloadValidator(),
	}
}

// EvaluateSingles checks every job individually against the worker's
// constraints and returns the fitting ones sorted by weekly income,
// descending, with stable input order on ties.
//
// Parameters:
//   - jobs: Candidate offers; never mutated
//   - constraints: The worker's constraints (must be valid)
//
// Returns:
//   - []match.SingleMatch: One entry per fitting job, best income first
//   - error: Validation error if any input was not properly constructed
func (e SingleEvaluator) EvaluateSingles(
	jobs []*job.Job,
	constraints worker.Constraints,
) ([]match.SingleMatch, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]match.SingleMatch, 0, len(jobs))
	for _, j := range jobs {
		workload, err := e.validator.Validate([]*job.Job{j}, constraints)
		if err != nil {
			return nil, err
		}
		if !workload.Ok() {
			continue
		}

		results = append(results, match.SingleMatch{
			Job:             j,
			WeeklyIncome:    workload.CombinedIncome,
			HoursOk:         true,
			BelowIncomeGoal: workload.BelowIncomeGoal,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WeeklyIncome > results[j].WeeklyIncome
	})

	return results, nil
}
