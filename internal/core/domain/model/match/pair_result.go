package match

import (
	"jobassist/internal/core/domain/model/job"
)

// PairResult describes one evaluated pair of jobs.
// It is a value object computed fresh per request and never persisted.
//
// The matcher only surfaces feasible pairs, so results returned by it always
// have Feasible == true and an empty Conflicts list; the fields exist so the
// same shape can carry diagnostics when a caller evaluates a specific pair
// directly.
type PairResult struct {
	// JobA and JobB are the paired offers, in input order.
	JobA *job.Job
	JobB *job.Job
	// TotalHours is the combined weekly workload of both jobs.
	TotalHours float64
	// CombinedWeeklyIncome is the summed weekly pay of both jobs.
	CombinedWeeklyIncome float64
	// Slack is the unused margin below the worker's hours cap.
	Slack float64
	// Feasible is true when the pair has no conflicts and passes the hours cap.
	Feasible bool
	// Conflicts lists the schedule overlaps between the two jobs and between
	// either job and the worker's commitments. Empty for feasible pairs.
	Conflicts []ConflictDetail
	// BelowIncomeGoal annotates pairs whose combined income falls short of the
	// worker's goal. Informational only; annotated pairs remain in results.
	BelowIncomeGoal bool
	// Kind classifies how the two schedules complement each other.
	Kind PairKind
}

// Contains reports whether the pair includes the given job.
func (p PairResult) Contains(j *job.Job) bool {
	return p.JobA.IsEqual(j) || p.JobB.IsEqual(j)
}
