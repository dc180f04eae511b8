package queries

import (
	"errors"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery retrieves every offer currently in the catalog.
// This is a parameterless query used by the presentation layer to show the
// candidate pool.
type GetAllJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates a query to retrieve all catalog offers.
func NewGetAllJobsQuery() GetAllJobsQuery {
	return GetAllJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllJobsQueryIsNotConstructed if validation fails.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// GetAllJobsQueryResponse represents one offer in the read model.
// Weekly pay is precomputed so presentation code never re-derives it.
type GetAllJobsQueryResponse struct {
	ID           kernel.UUID
	Title        string
	Company      string
	Location     string
	HourlyRate   float64
	HoursPerWeek float64
	WeeklyPay    float64
	Remote       bool
	Schedule     string
}
