package queries

import (
	"context"

	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/services"
	"jobassist/internal/core/ports"
)

// EvaluateSingleJobsQueryHandler runs the single-job evaluator over the
// catalog snapshot.
type EvaluateSingleJobsQueryHandler struct {
	catalog   ports.JobCatalog
	evaluator services.SingleEvaluator
}

// NewEvaluateSingleJobsQueryHandler creates a handler for single-job queries.
func NewEvaluateSingleJobsQueryHandler(catalog ports.JobCatalog) EvaluateSingleJobsQueryHandler {
	return EvaluateSingleJobsQueryHandler{
		catalog:   catalog,
		evaluator: services.NewSingleEvaluator(),
	}
}

// Handle evaluates every catalog offer on its own against the worker's
// constraints and returns the top-ranked fitting ones, at most the query's
// limit. An empty result means no offer fits, which is a valid outcome.
func (h EvaluateSingleJobsQueryHandler) Handle(
	ctx context.Context,
	query EvaluateSingleJobsQuery,
) ([]match.SingleMatch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers, err := h.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	singles, err := h.evaluator.EvaluateSingles(offers, query.Constraints())
	if err != nil {
		return nil, err
	}

	if len(singles) > query.Limit() {
		singles = singles[:query.Limit()]
	}
	return singles, nil
}
