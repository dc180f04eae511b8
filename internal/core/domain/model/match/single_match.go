package match

import (
	"jobassist/internal/core/domain/model/job"
)

// SingleMatch is the degenerate one-job evaluation: a single offer checked
// against the worker's constraints, used as the fallback when no feasible
// pair exists.
type SingleMatch struct {
	// Job is the evaluated offer.
	Job *job.Job
	// WeeklyIncome is the offer's derived weekly pay.
	WeeklyIncome float64
	// HoursOk is true when the job alone fits within the worker's hours cap.
	// The evaluator only surfaces fitting jobs, so returned entries carry true.
	HoursOk bool
	// BelowIncomeGoal annotates offers whose income falls short of the
	// worker's goal. Informational only.
	BelowIncomeGoal bool
}
