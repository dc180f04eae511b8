package queries

import (
	"context"

	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/services"
	"jobassist/internal/core/ports"
)

// FindJobPairsQueryHandler runs the pair matcher over the catalog snapshot.
//
// Example:
//
//	handler := NewFindJobPairsQueryHandler(catalog)
//	pairs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("pair matching failed: %w", err)
//	}
//	if len(pairs) == 0 {
//	    // Valid outcome: no feasible pair for these constraints
//	}
type FindJobPairsQueryHandler struct {
	catalog ports.JobCatalog
	matcher services.PairMatcher
}

// NewFindJobPairsQueryHandler creates a handler for pair matching queries.
func NewFindJobPairsQueryHandler(catalog ports.JobCatalog) FindJobPairsQueryHandler {
	return FindJobPairsQueryHandler{
		catalog: catalog,
		matcher: services.NewPairMatcher(),
	}
}

// Handle evaluates every unordered pair of catalog offers against the
// worker's constraints and returns the top-ranked feasible pairs, at most
// the query's limit.
func (h FindJobPairsQueryHandler) Handle(
	ctx context.Context,
	query FindJobPairsQuery,
) ([]match.PairResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers, err := h.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := h.matcher.FindPairs(offers, query.Constraints())
	if err != nil {
		return nil, err
	}

	if len(pairs) > query.Limit() {
		pairs = pairs[:query.Limit()]
	}
	return pairs, nil
}
