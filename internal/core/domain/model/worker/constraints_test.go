package worker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/worker"
)

func TestNewConstraints(t *testing.T) {
	classes, err := kernel.NewTimeBlock(kernel.Tuesday, 10*60, 12*60)
	require.NoError(t, err)
	commitments, err := kernel.NewSchedule(classes)
	require.NoError(t, err)

	tests := []struct {
		name            string
		maxHoursPerWeek float64
		minIncomeGoal   float64
		commitments     kernel.Schedule
		wantErr         bool
	}{
		{
			name:            "valid constraints",
			maxHoursPerWeek: 60,
			minIncomeGoal:   1200,
			commitments:     commitments,
		},
		{
			name:            "no income goal",
			maxHoursPerWeek: 40,
			minIncomeGoal:   0,
			commitments:     kernel.Schedule{},
		},
		{
			name:            "fractional hours cap",
			maxHoursPerWeek: 37.5,
			minIncomeGoal:   500,
			commitments:     kernel.Schedule{},
		},
		{
			name:            "zero hours cap",
			maxHoursPerWeek: 0,
			wantErr:         true,
		},
		{
			name:            "negative hours cap",
			maxHoursPerWeek: -10,
			wantErr:         true,
		},
		{
			name:            "NaN hours cap",
			maxHoursPerWeek: math.NaN(),
			wantErr:         true,
		},
		{
			name:            "infinite hours cap",
			maxHoursPerWeek: math.Inf(1),
			wantErr:         true,
		},
		{
			name:            "negative income goal",
			maxHoursPerWeek: 40,
			minIncomeGoal:   -100,
			wantErr:         true,
		},
		{
			name:            "NaN income goal",
			maxHoursPerWeek: 40,
			minIncomeGoal:   math.NaN(),
			wantErr:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraints, err := worker.NewConstraints(tt.maxHoursPerWeek, tt.minIncomeGoal, tt.commitments)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, constraints)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, constraints.Validate())
			assert.InDelta(t, tt.maxHoursPerWeek, constraints.MaxHoursPerWeek(), 1e-9)
			assert.InDelta(t, tt.minIncomeGoal, constraints.MinIncomeGoal(), 1e-9)
		})
	}
}

func TestConstraints_Validate(t *testing.T) {
	t.Run("constructed constraints", func(t *testing.T) {
		constraints, err := worker.NewConstraints(40, 0, kernel.Schedule{})
		require.NoError(t, err)
		assert.NoError(t, constraints.Validate())
	})

	t.Run("zero value constraints", func(t *testing.T) {
		var constraints worker.Constraints
		err := constraints.Validate()
		assert.Error(t, err)
		assert.Equal(t, worker.ErrConstraintsAreNotConstructed, err)
	})
}

func TestConstraints_HasIncomeGoal(t *testing.T) {
	t.Run("goal set", func(t *testing.T) {
		constraints, err := worker.NewConstraints(40, 800, kernel.Schedule{})
		require.NoError(t, err)
		assert.True(t, constraints.HasIncomeGoal())
	})

	t.Run("goal unset", func(t *testing.T) {
		constraints, err := worker.NewConstraints(40, 0, kernel.Schedule{})
		require.NoError(t, err)
		assert.False(t, constraints.HasIncomeGoal())
	})
}

func TestConstraints_ExistingCommitments(t *testing.T) {
	classes, err := kernel.NewTimeBlock(kernel.Tuesday, 10*60, 12*60)
	require.NoError(t, err)
	commitments, err := kernel.NewSchedule(classes)
	require.NoError(t, err)

	constraints, err := worker.NewConstraints(40, 0, commitments)
	require.NoError(t, err)

	got := constraints.ExistingCommitments()
	assert.False(t, got.IsFlexible())
	assert.Len(t, got.Blocks(), 1)
}
