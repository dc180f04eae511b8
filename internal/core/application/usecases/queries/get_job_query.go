package queries

import (
	"errors"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single offer by its identifier.
type GetJobQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for one catalog offer.
func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	query := GetJobQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setJobID(jobID); err != nil {
		return GetJobQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobQueryIsNotConstructed if validation fails.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the identifier of the requested offer.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *GetJobQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}
