package http

import (
	"fmt"
	"time"

	"jobassist/internal/core/application/usecases/queries"
	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/model/worker"
	"jobassist/internal/pkg/errs"
)

// Error is the uniform error body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TimeBlockRequest is one weekly interval in a request body.
// Start and end accept the "HH:MM" form.
type TimeBlockRequest struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewJobRequest is the body of POST /api/v1/jobs.
// ID is optional; a fresh one is generated when absent. PostedAt is optional
// RFC 3339; offers without it are never pruned as stale.
type NewJobRequest struct {
	ID           string             `json:"id,omitempty"`
	Title        string             `json:"title"`
	Company      string             `json:"company,omitempty"`
	Location     string             `json:"location,omitempty"`
	HourlyRate   float64            `json:"hourlyRate"`
	HoursPerWeek float64            `json:"hoursPerWeek"`
	Schedule     []TimeBlockRequest `json:"schedule,omitempty"`
	Remote       bool               `json:"remote,omitempty"`
	PostedAt     string             `json:"postedAt,omitempty"`
}

// ConstraintsRequest carries the worker's matching constraints.
type ConstraintsRequest struct {
	MaxHoursPerWeek     float64            `json:"maxHoursPerWeek"`
	MinIncomeGoal       float64            `json:"minIncomeGoal,omitempty"`
	ExistingCommitments []TimeBlockRequest `json:"existingCommitments,omitempty"`
}

// MatchRequest is the body of both matching endpoints.
// Limit defaults to queries.DefaultMatchLimit when omitted.
type MatchRequest struct {
	Constraints ConstraintsRequest `json:"constraints"`
	Limit       int                `json:"limit,omitempty"`
}

// JobResponse is one offer in a response body.
type JobResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Company      string  `json:"company,omitempty"`
	Location     string  `json:"location,omitempty"`
	HourlyRate   float64 `json:"hourlyRate"`
	HoursPerWeek float64 `json:"hoursPerWeek"`
	WeeklyPay    float64 `json:"weeklyPay"`
	Remote       bool    `json:"remote"`
	Schedule     string  `json:"schedule"`
}

// PairResultResponse is one feasible pair in the pairs response.
type PairResultResponse struct {
	JobA                 JobResponse `json:"jobA"`
	JobB                 JobResponse `json:"jobB"`
	TotalHours           float64     `json:"totalHours"`
	CombinedWeeklyIncome float64     `json:"combinedWeeklyIncome"`
	Slack                float64     `json:"slack"`
	BelowIncomeGoal      bool        `json:"belowIncomeGoal"`
	Kind                 string      `json:"kind"`
	KindDescription      string      `json:"kindDescription"`
}

// SingleMatchResponse is one fitting offer in the singles response.
type SingleMatchResponse struct {
	Job             JobResponse `json:"job"`
	WeeklyIncome    float64     `json:"weeklyIncome"`
	BelowIncomeGoal bool        `json:"belowIncomeGoal"`
}

// toSchedule converts request blocks into a validated domain schedule.
func toSchedule(blocks []TimeBlockRequest) (kernel.Schedule, error) {
	domainBlocks := make([]kernel.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		day, err := kernel.ParseDay(b.Day)
		if err != nil {
			return kernel.Schedule{}, err
		}

		start, err := kernel.ParseClock(b.Start)
		if err != nil {
			return kernel.Schedule{}, err
		}

		end, err := kernel.ParseClock(b.End)
		if err != nil {
			return kernel.Schedule{}, err
		}

		block, err := kernel.NewTimeBlock(day, start, end)
		if err != nil {
			return kernel.Schedule{}, err
		}

		domainBlocks = append(domainBlocks, block)
	}

	return kernel.NewSchedule(domainBlocks...)
}

// toConstraints converts a constraints request into the domain value object.
func toConstraints(req ConstraintsRequest) (worker.Constraints, error) {
	commitments, err := toSchedule(req.ExistingCommitments)
	if err != nil {
		return worker.Constraints{}, err
	}

	return worker.NewConstraints(req.MaxHoursPerWeek, req.MinIncomeGoal, commitments)
}

// parsePostedAt converts the optional RFC 3339 posting time.
func parsePostedAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	postedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"postedAt",
			fmt.Errorf("%q is not an RFC 3339 timestamp", raw),
		)
	}
	return postedAt, nil
}

func toJobResponse(r queries.GetAllJobsQueryResponse) JobResponse {
	return JobResponse{
		ID:           r.ID.String(),
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		HourlyRate:   r.HourlyRate,
		HoursPerWeek: r.HoursPerWeek,
		WeeklyPay:    r.WeeklyPay,
		Remote:       r.Remote,
		Schedule:     r.Schedule,
	}
}

func jobToResponse(offer *job.Job) JobResponse {
	return JobResponse{
		ID:           offer.ID().String(),
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

func toPairResponse(p match.PairResult) PairResultResponse {
	return PairResultResponse{
		JobA:                 jobToResponse(p.JobA),
		JobB:                 jobToResponse(p.JobB),
		TotalHours:           p.TotalHours,
		CombinedWeeklyIncome: p.CombinedWeeklyIncome,
		Slack:                p.Slack,
		BelowIncomeGoal:      p.BelowIncomeGoal,
		Kind:                 p.Kind.String(),
		KindDescription:      p.Kind.Describe(),
	}
}

func toSingleResponse(s match.SingleMatch) SingleMatchResponse {
	return SingleMatchResponse{
		Job:             jobToResponse(s.Job),
		WeeklyIncome:    s.WeeklyIncome,
		BelowIncomeGoal: s.BelowIncomeGoal,
	}
}
