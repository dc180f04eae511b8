// Package http is the inbound HTTP adapter: it binds request bodies, converts
// them into commands and queries, and renders the engine's read models.
package http

import (
	"errors"
	"net/http"

	"jobassist/internal/core/application/usecases/commands"
	"jobassist/internal/core/application/usecases/queries"
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/worker"
	"jobassist/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addJobHandler commands.AddJobCommandHandler

	// Query handlers
	getAllJobsHandler      queries.GetAllJobsQueryHandler
	getJobHandler          queries.GetJobQueryHandler
	findPairsHandler       queries.FindJobPairsQueryHandler
	evaluateSinglesHandler queries.EvaluateSingleJobsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addJobHandler commands.AddJobCommandHandler,
	getAllJobsHandler queries.GetAllJobsQueryHandler,
	getJobHandler queries.GetJobQueryHandler,
	findPairsHandler queries.FindJobPairsQueryHandler,
	evaluateSinglesHandler queries.EvaluateSingleJobsQueryHandler,
) *Server {
	return &Server{
		addJobHandler:          addJobHandler,
		getAllJobsHandler:      getAllJobsHandler,
		getJobHandler:          getJobHandler,
		findPairsHandler:       findPairsHandler,
		evaluateSinglesHandler: evaluateSinglesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/jobs", s.CreateJob)
	e.GET("/api/v1/jobs", s.GetJobs)
	e.GET("/api/v1/jobs/:id", s.GetJob)
	e.POST("/api/v1/matches/pairs", s.FindPairs)
	e.POST("/api/v1/matches/singles", s.EvaluateSingles)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateJob handles POST /api/v1/jobs - registers a job offer in the catalog.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req NewJobRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	jobID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid job ID: " + err.Error(),
			})
		}
		jobID = parsed
	}

	schedule, err := toSchedule(req.Schedule)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule: " + err.Error(),
		})
	}

	postedAt, err := parsePostedAt(req.PostedAt)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid posting time: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddJobCommand(
		jobID,
		req.Title,
		req.Company,
		req.Location,
		req.HourlyRate,
		req.HoursPerWeek,
		schedule,
		req.Remote,
		postedAt,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	if handleErr := s.addJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetJobs handles GET /api/v1/jobs - retrieves all catalog offers.
func (s *Server) GetJobs(ctx echo.Context) error {
	query := queries.NewGetAllJobsQuery()

	offers, err := s.getAllJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}

	response := make([]JobResponse, len(offers))
	for i, offer := range offers {
		response[i] = toJobResponse(offer)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetJob handles GET /api/v1/jobs/:id - retrieves one catalog offer.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID: " + err.Error(),
		})
	}

	offer, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Job not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve job",
		})
	}

	return ctx.JSON(http.StatusOK, toJobResponse(offer))
}

// bindMatchQuery binds a MatchRequest body and builds the given match query
// from it. On failure it writes the 400 response itself and reports false.
func bindMatchQuery[Q any](
	ctx echo.Context,
	newQuery func(constraints worker.Constraints, limit int) (Q, error),
) (Q, bool) {
	var zero Q

	var req MatchRequest
	if err := ctx.Bind(&req); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
		return zero, false
	}

	constraints, err := toConstraints(req.Constraints)
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid constraints: " + err.Error(),
		})
		return zero, false
	}

	limit := req.Limit
	if limit == 0 {
		limit = queries.DefaultMatchLimit
	}

	query, err := newQuery(constraints, limit)
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid match request: " + err.Error(),
		})
		return zero, false
	}

	return query, true
}

// FindPairs handles POST /api/v1/matches/pairs - finds the best feasible
// job pairs for the supplied constraints. An empty list is a valid "no
// matches found" outcome, distinct from a 400 input rejection.
func (s *Server) FindPairs(ctx echo.Context) error {
	query, ok := bindMatchQuery(ctx, queries.NewFindJobPairsQuery)
	if !ok {
		return nil
	}

	pairs, err := s.findPairsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to match job pairs",
		})
	}

	response := make([]PairResultResponse, len(pairs))
	for i, pair := range pairs {
		response[i] = toPairResponse(pair)
	}

	return ctx.JSON(http.StatusOK, response)
}

// EvaluateSingles handles POST /api/v1/matches/singles - evaluates each
// offer on its own against the supplied constraints.
func (s *Server) EvaluateSingles(ctx echo.Context) error {
	query, ok := bindMatchQuery(ctx, queries.NewEvaluateSingleJobsQuery)
	if !ok {
		return nil
	}

	singles, err := s.evaluateSinglesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to evaluate jobs",
		})
	}

	response := make([]SingleMatchResponse, len(singles))
	for i, single := range singles {
		response[i] = toSingleResponse(single)
	}

	return ctx.JSON(http.StatusOK, response)
}
