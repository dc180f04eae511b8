package match

// Workload is the outcome of checking a set of jobs against a worker's
// constraints. It separates hard findings, which make the combination
// infeasible, from the informational income-goal finding, which only
// annotates results.
type Workload struct {
	// TotalHours is the summed weekly hours of all checked jobs.
	TotalHours float64
	// CombinedIncome is the summed weekly pay of all checked jobs.
	CombinedIncome float64
	// HoursOk is false when TotalHours exceeds the worker's weekly cap.
	// Exceeding the cap is a hard finding: the combination is dropped.
	HoursOk bool
	// CommitmentConflicts lists overlaps between job schedules and the
	// worker's existing commitments. Any entry is a hard finding.
	CommitmentConflicts []ConflictDetail
	// BelowIncomeGoal is true when an income goal is set and the combined
	// income falls short of it. Informational only; never drops a result.
	BelowIncomeGoal bool
}

// Ok reports whether the workload passed every hard check.
// The income goal is deliberately excluded: falling short of it is
// informational and does not make a combination infeasible.
func (w Workload) Ok() bool {
	return w.HoursOk && len(w.CommitmentConflicts) == 0
}
