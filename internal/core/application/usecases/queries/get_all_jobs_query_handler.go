package queries

import (
	"context"

	"jobassist/internal/core/ports"
)

// GetAllJobsQueryHandler retrieves the catalog contents as a read model.
type GetAllJobsQueryHandler struct {
	catalog ports.JobCatalog
}

// NewGetAllJobsQueryHandler creates a handler for catalog listing queries.
func NewGetAllJobsQueryHandler(catalog ports.JobCatalog) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{catalog: catalog}
}

// Handle returns every catalog offer in insertion order.
func (h GetAllJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAllJobsQuery,
) ([]GetAllJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers, err := h.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAllJobsQueryResponse, len(offers))
	for i, offer := range offers {
		responses[i] = GetAllJobsQueryResponse{
			ID:           offer.ID(),
			Title:        offer.Title(),
			Company:      offer.Company(),
			Location:     offer.Location(),
			HourlyRate:   offer.HourlyRate(),
			HoursPerWeek: offer.HoursPerWeek(),
			WeeklyPay:    offer.WeeklyPay(),
			Remote:       offer.IsRemote(),
			Schedule:     offer.Schedule().Summary(),
		}
	}

	return responses, nil
}
