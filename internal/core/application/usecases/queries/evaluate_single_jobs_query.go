package queries

import (
	"errors"

	"jobassist/internal/core/domain/model/worker"
	"jobassist/internal/pkg/guard"
)

var ErrEvaluateSingleJobsQueryIsNotConstructed = errors.New(
	"EvaluateSingleJobsQuery must be created via NewEvaluateSingleJobsQuery constructor",
)

// EvaluateSingleJobsQuery requests the best individual job matches for a
// worker: the fallback surface when no feasible pair exists.
type EvaluateSingleJobsQuery struct { //nolint:recvcheck //using for validation
	constraints worker.Constraints
	limit       int

	guard guard.ConstructorGuard
}

// NewEvaluateSingleJobsQuery creates a query for the best single-job matches.
// The limit bounds how many top-ranked matches are returned and must be positive.
func NewEvaluateSingleJobsQuery(constraints worker.Constraints, limit int) (EvaluateSingleJobsQuery, error) {
	query := EvaluateSingleJobsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setConstraints(constraints),
		query.setLimit(limit),
	); err != nil {
		return EvaluateSingleJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrEvaluateSingleJobsQueryIsNotConstructed if validation fails.
func (q EvaluateSingleJobsQuery) Validate() error {
	return q.guard.Validate(ErrEvaluateSingleJobsQueryIsNotConstructed)
}

// Constraints returns the worker constraints to match against.
func (q EvaluateSingleJobsQuery) Constraints() worker.Constraints {
	return q.constraints
}

// Limit returns the maximum number of matches to return.
func (q EvaluateSingleJobsQuery) Limit() int {
	return q.limit
}

func (q *EvaluateSingleJobsQuery) setConstraints(constraints worker.Constraints) error {
	if err := constraints.Validate(); err != nil {
		return err
	}

	q.constraints = constraints
	return nil
}

func (q *EvaluateSingleJobsQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}
