// Package queries contains read operations over the job catalog, including
// the two matching entry points: pair finding and single-job evaluation.
// Queries return value-object read models and never modify state.
package queries

import (
	"errors"

	"jobassist/internal/core/domain/model/worker"
	"jobassist/internal/pkg/errs"
	"jobassist/internal/pkg/guard"
)

// DefaultMatchLimit caps how many matches a request returns when the caller
// does not ask for a specific number.
const DefaultMatchLimit = 3

var (
	ErrFindJobPairsQueryIsNotConstructed = errors.New(
		"FindJobPairsQuery must be created via NewFindJobPairsQuery constructor",
	)
	// ErrLimitIsInvalid is returned when a match limit is not positive.
	ErrLimitIsInvalid = errs.NewValueIsInvalidError("limit")
)

// FindJobPairsQuery requests the best job pairs for a worker.
//
// Example:
//
//	constraints, _ := worker.NewConstraints(60, 0, kernel.Schedule{})
//	query, err := NewFindJobPairsQuery(constraints, queries.DefaultMatchLimit)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//	pairs, err := handler.Handle(ctx, query)
type FindJobPairsQuery struct { //nolint:recvcheck //using for validation
	constraints worker.Constraints
	limit       int

	guard guard.ConstructorGuard
}

// NewFindJobPairsQuery creates a query for the best job pairs.
// The limit bounds how many top-ranked pairs are returned and must be positive.
func NewFindJobPairsQuery(constraints worker.Constraints, limit int) (FindJobPairsQuery, error) {
	query := FindJobPairsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setConstraints(constraints),
		query.setLimit(limit),
	); err != nil {
		return FindJobPairsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindJobPairsQueryIsNotConstructed if validation fails.
func (q FindJobPairsQuery) Validate() error {
	return q.guard.Validate(ErrFindJobPairsQueryIsNotConstructed)
}

// Constraints returns the worker constraints to match against.
func (q FindJobPairsQuery) Constraints() worker.Constraints {
	return q.constraints
}

// Limit returns the maximum number of pairs to return.
func (q FindJobPairsQuery) Limit() int {
	return q.limit
}

func (q *FindJobPairsQuery) setConstraints(constraints worker.Constraints) error {
	if err := constraints.Validate(); err != nil {
		return err
	}

	q.constraints = constraints
	return nil
}

func (q *FindJobPairsQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}
