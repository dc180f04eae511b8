package services

import (
	"sort"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/model/worker"
)

// PairMatcher is a domain service that finds every feasible pair of jobs a
// worker could hold simultaneously, ordered best-first.
//
// Key responsibilities:
//   - Enumerating all unordered two-job combinations (no self-pairing, no
//     duplicate orientations)
//   - Filtering by schedule conflicts and the worker's constraints
//   - Ranking surviving pairs deterministically
//
// Business rules:
//   - Only feasible pairs are surfaced; a pair with schedule conflicts or a
//     combined workload over the worker's cap carries no actionable value
//     and is dropped entirely
//   - Falling short of the income goal only annotates a pair, never drops it
//   - Ranking: combined weekly income descending, then slack (the unused
//     margin below the hours cap) descending, then stable input order
//
// Example usage:
//
//	matcher := services.NewPairMatcher()
//	pairs, err := matcher.FindPairs(jobs, constraints)
//	if err != nil {
//	    // An input failed validation
//	    return
//	}
//	if len(pairs) == 0 {
//	    // No feasible pair; fall back to single-job matches
//	}
type PairMatcher struct {
	detector   ConflictDetector
	validator  WorkloadValidator
	classifier PairClassifier
}

// NewPairMatcher creates a new PairMatcher instance.
func NewPairMatcher() PairMatcher {
	return PairMatcher{
		detector:   NewConflictDetector(),
		validator:  NewWorkloadValidator(),
		classifier: NewPairClassifier(),
	}
}

// FindPairs evaluates every unordered pair of the given jobs against the
// worker's constraints and returns the feasible ones, best first.
//
// Parameters:
//   - jobs: Candidate offers; the slice and its jobs are never mutated
//   - constraints: The worker's constraints (must be valid)
//
// Returns:
//   - []match.PairResult: Feasible pairs ordered by income, slack, input order
//   - error: Validation error if any input was not properly constructed;
//     validation fails fast before any pairing work begins
//
// Fewer than two jobs yields an empty result without error. Two entries
// sharing the same ID are never paired with each other, but each still pairs
// with every other distinct job.
func (m PairMatcher) FindPairs(
	jobs []*job.Job,
	constraints worker.Constraints,
) ([]match.PairResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]match.PairResult, 0)
	for i := 0; i < len(jobs); i++ {
		for k := i + 1; k < len(jobs); k++ {
			jobA, jobB := jobs[i], jobs[k]
			if jobA.IsEqual(jobB) {
				continue
			}

			if conflicts := m.detector.Detect(jobA.Schedule(), jobB.Schedule()); len(conflicts) > 0 {
				continue
			}

			workload, err := m.validator.Validate([]*job.Job{jobA, jobB}, constraints)
			if err != nil {
				return nil, err
			}
			if !workload.Ok() {
				continue
			}

			results = append(results, match.PairResult{
				JobA:                 jobA,
				JobB:                 jobB,
				TotalHours:           workload.TotalHours,
				CombinedWeeklyIncome: workload.CombinedIncome,
				Slack:                constraints.MaxHoursPerWeek() - workload.TotalHours,
				Feasible:             true,
				BelowIncomeGoal:      workload.BelowIncomeGoal,
				Kind:                 m.classifier.Classify(jobA.Schedule(), jobB.Schedule()),
			})
		}
	}

	// Stable sort keeps first-seen pairs ahead on full ties, so identical
	// inputs always produce identical ordered output.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].CombinedWeeklyIncome != results[j].CombinedWeeklyIncome {
			return results[i].CombinedWeeklyIncome > results[j].CombinedWeeklyIncome
		}
		return results[i].Slack > results[j].Slack
	})

	return results, nil
}
