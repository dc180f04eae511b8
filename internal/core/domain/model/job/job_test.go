package job_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
)

func TestNewJob(t *testing.T) {
	validID := kernel.NewUUID()
	validSchedule := weekdaySchedule(t, 9*60, 17*60)
	postedAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		id           kernel.UUID
		title        string
		company      string
		location     string
		hourlyRate   float64
		hoursPerWeek float64
		schedule     kernel.Schedule
		remote       bool
		wantErr      bool
	}{
		{
			name:         "valid job",
			id:           validID,
			title:        "Barista",
			company:      "Beanery",
			location:     "Downtown",
			hourlyRate:   12.5,
			hoursPerWeek: 40,
			schedule:     validSchedule,
		},
		{
			name:         "valid flexible job",
			id:           validID,
			title:        "Content Writer",
			hourlyRate:   20,
			hoursPerWeek: 15,
			schedule:     kernel.Schedule{},
			remote:       true,
		},
		{
			name:         "zero hourly rate allowed",
			id:           validID,
			title:        "Volunteer Coordinator",
			hourlyRate:   0,
			hoursPerWeek: 10,
			schedule:     kernel.Schedule{},
		},
		{
			name:         "invalid id",
			id:           kernel.UUID{},
			title:        "Barista",
			hourlyRate:   12.5,
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "empty title",
			id:           validID,
			title:        "",
			hourlyRate:   12.5,
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "whitespace title",
			id:           validID,
			title:        "   ",
			hourlyRate:   12.5,
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "negative rate",
			id:           validID,
			title:        "Barista",
			hourlyRate:   -1,
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "NaN rate",
			id:           validID,
			title:        "Barista",
			hourlyRate:   math.NaN(),
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "infinite rate",
			id:           validID,
			title:        "Barista",
			hourlyRate:   math.Inf(1),
			hoursPerWeek: 40,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "zero hours",
			id:           validID,
			title:        "Barista",
			hourlyRate:   12.5,
			hoursPerWeek: 0,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "negative hours",
			id:           validID,
			title:        "Barista",
			hourlyRate:   12.5,
			hoursPerWeek: -10,
			schedule:     validSchedule,
			wantErr:      true,
		},
		{
			name:         "multiple invalid fields",
			id:           kernel.UUID{},
			title:        "",
			hourlyRate:   -5,
			hoursPerWeek: 0,
			schedule:     validSchedule,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := job.NewJob(tt.id, tt.title, tt.company, tt.location,
				tt.hourlyRate, tt.hoursPerWeek, tt.schedule, tt.remote, postedAt)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, offer)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, offer)
			assert.NoError(t, offer.Validate())
			assert.True(t, offer.ID().IsEqual(tt.id))
			assert.Equal(t, tt.title, offer.Title())
			assert.Equal(t, tt.company, offer.Company())
			assert.Equal(t, tt.location, offer.Location())
			assert.InDelta(t, tt.hourlyRate, offer.HourlyRate(), 1e-9)
			assert.InDelta(t, tt.hoursPerWeek, offer.HoursPerWeek(), 1e-9)
			assert.Equal(t, postedAt, offer.PostedAt())
		})
	}
}

func TestJob_RemoteInference(t *testing.T) {
	tests := []struct {
		name     string
		location string
		remote   bool
		want     bool
	}{
		{
			name:     "explicit remote flag",
			location: "Downtown",
			remote:   true,
			want:     true,
		},
		{
			name:     "location mentions remote",
			location: "Remote (US)",
			remote:   false,
			want:     true,
		},
		{
			name:     "location mentions remote lowercase",
			location: "fully remote",
			remote:   false,
			want:     true,
		},
		{
			name:     "on-site job",
			location: "Downtown",
			remote:   false,
			want:     false,
		},
		{
			name:     "empty location",
			location: "",
			remote:   false,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := job.NewJob(kernel.NewUUID(), "Support Agent", "", tt.location,
				15, 20, kernel.Schedule{}, tt.remote, time.Time{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, offer.IsRemote())
		})
	}
}

func TestJob_WeeklyPay(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		hours float64
		want  float64
	}{
		{
			name:  "full time",
			rate:  25,
			hours: 40,
			want:  1000,
		},
		{
			name:  "part time",
			rate:  30,
			hours: 15,
			want:  450,
		},
		{
			name:  "fractional rate",
			rate:  12.5,
			hours: 8,
			want:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := job.NewJob(kernel.NewUUID(), "Courier", "", "",
				tt.rate, tt.hours, kernel.Schedule{}, false, time.Time{})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, offer.WeeklyPay(), 1e-9)
		})
	}
}

func TestJob_Validate(t *testing.T) {
	t.Run("constructed job", func(t *testing.T) {
		offer, err := job.NewJob(kernel.NewUUID(), "Barista", "", "",
			12.5, 40, kernel.Schedule{}, false, time.Time{})
		require.NoError(t, err)
		assert.NoError(t, offer.Validate())
	})

	t.Run("zero value job", func(t *testing.T) {
		var offer job.Job
		err := offer.Validate()
		assert.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})

	t.Run("nil job", func(t *testing.T) {
		var offer *job.Job
		err := offer.Validate()
		assert.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})
}

func TestJob_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	first, err := job.NewJob(id, "Barista", "", "", 12.5, 40, kernel.Schedule{}, false, time.Time{})
	require.NoError(t, err)

	sameID, err := job.NewJob(id, "Senior Barista", "", "", 15, 30, kernel.Schedule{}, false, time.Time{})
	require.NoError(t, err)

	other, err := job.NewJob(kernel.NewUUID(), "Barista", "", "", 12.5, 40, kernel.Schedule{}, false, time.Time{})
	require.NoError(t, err)

	assert.True(t, first.IsEqual(sameID))
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}

func weekdaySchedule(t *testing.T, start, end kernel.Minutes) kernel.Schedule {
	t.Helper()

	days := []kernel.DayOfWeek{kernel.Monday, kernel.Tuesday, kernel.Wednesday, kernel.Thursday, kernel.Friday}
	blocks := make([]kernel.TimeBlock, 0, len(days))
	for _, day := range days {
		block, err := kernel.NewTimeBlock(day, start, end)
		require.NoError(t, err)
		blocks = append(blocks, block)
	}

	schedule, err := kernel.NewSchedule(blocks...)
	require.NoError(t, err)
	return schedule
}
