package queries

import (
	"context"

	"jobassist/internal/core/ports"
)

// GetJobQueryHandler retrieves one offer from the catalog.
type GetJobQueryHandler struct {
	catalog ports.JobCatalog
}

// NewGetJobQueryHandler creates a handler for single-offer lookups.
func NewGetJobQueryHandler(catalog ports.JobCatalog) GetJobQueryHandler {
	return GetJobQueryHandler{catalog: catalog}
}

// Handle returns the offer read model for the requested ID.
// Propagates the catalog's ObjectNotFoundError when the ID is unknown.
func (h GetJobQueryHandler) Handle(
	ctx context.Context,
	query GetJobQuery,
) (GetAllJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllJobsQueryResponse{}, err
	}

	offer, err := h.catalog.Get(ctx, query.JobID())
	if err != nil {
		return GetAllJobsQueryResponse{}, err
	}

	return GetAllJobsQueryResponse{
		ID:           offer.ID(),
		Title:        offer.Title(),
		Company:      offer.Company(),
		Location:     offer.Location(),
		HourlyRate:   offer.HourlyRate(),
		HoursPerWeek: offer.HoursPerWeek(),
		WeeklyPay:    offer.WeeklyPay(),
		Remote:       offer.IsRemote(),
		Schedule:     offer.Schedule().Summary(),
	}, nil
}
