package cmd

import (
	"jobassist/internal/adapters/out/memory/jobcatalog"
	"jobassist/internal/core/application/usecases/commands"
	"jobassist/internal/core/application/usecases/queries"
)

// CompositionRoot wires the application graph: the in-memory job catalog and
// the command/query handlers that operate on it.
type CompositionRoot struct {
	catalog *jobcatalog.Catalog
}

// NewCompositionRoot builds the application graph for the given configuration.
func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		catalog: jobcatalog.NewCatalog(),
	}
}

func (c *CompositionRoot) CreateAddJobCommandHandler() commands.AddJobCommandHandler {
	return commands.NewAddJobCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreatePruneStaleJobsCommandHandler() commands.PruneStaleJobsCommandHandler {
	return commands.NewPruneStaleJobsCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateFindJobPairsQueryHandler() queries.FindJobPairsQueryHandler {
	return queries.NewFindJobPairsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateEvaluateSingleJobsQueryHandler() queries.EvaluateSingleJobsQueryHandler {
	return queries.NewEvaluateSingleJobsQueryHandler(c.catalog)
}
