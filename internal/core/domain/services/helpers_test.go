package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/worker"
)

var weekdays = []kernel.DayOfWeek{
	kernel.Monday, kernel.Tuesday, kernel.Wednesday, kernel.Thursday, kernel.Friday,
}

func mustBlock(t *testing.T, day kernel.DayOfWeek, start, end kernel.Minutes) kernel.TimeBlock {
	t.Helper()
	block, err := kernel.NewTimeBlock(day, start, end)
	require.NoError(t, err)
	return block
}

func mustSchedule(t *testing.T, blocks ...kernel.TimeBlock) kernel.Schedule {
	t.Helper()
	schedule, err := kernel.NewSchedule(blocks...)
	require.NoError(t, err)
	return schedule
}

// weekdaySchedule builds a Mon-Fri schedule with the same block every day.
func weekdaySchedule(t *testing.T, start, end kernel.Minutes) kernel.Schedule {
	t.Helper()
	blocks := make([]kernel.TimeBlock, 0, len(weekdays))
	for _, day := range weekdays {
		blocks = append(blocks, mustBlock(t, day, start, end))
	}
	return mustSchedule(t, blocks...)
}

func mustJob(t *testing.T, title string, rate, hours float64, schedule kernel.Schedule) *job.Job {
	t.Helper()
	offer, err := job.NewJob(kernel.NewUUID(), title, "", "", rate, hours, schedule, false, time.Time{})
	require.NoError(t, err)
	return offer
}

func mustConstraints(t *testing.T, maxHours, incomeGoal float64, commitments kernel.Schedule) worker.Constraints {
	t.Helper()
	constraints, err := worker.NewConstraints(maxHours, incomeGoal, commitments)
	require.NoError(t, err)
	return constraints
}
