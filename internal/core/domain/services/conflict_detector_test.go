package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/match"
	"jobassist/internal/core/domain/services"
)

func TestConflictDetector_Detect(t *testing.T) {
	detector := services.NewConflictDetector()

	t.Run("overlapping blocks on same day", func(t *testing.T) {
		dayShift := mustSchedule(t, mustBlock(t, kernel.Monday, 9*60, 17*60))
		afternoon := mustSchedule(t, mustBlock(t, kernel.Monday, 16*60, 20*60))

		conflicts := detector.Detect(dayShift, afternoon)

		assert.Equal(t, []match.ConflictDetail{
			{Day: kernel.Monday, OverlapStart: 16 * 60, OverlapEnd: 17 * 60},
		}, conflicts)
	})

	t.Run("back to back blocks do not conflict", func(t *testing.T) {
		dayShift := mustSchedule(t, mustBlock(t, kernel.Monday, 9*60, 17*60))
		evening := mustSchedule(t, mustBlock(t, kernel.Monday, 17*60, 21*60))

		assert.Empty(t, detector.Detect(dayShift, evening))
	})

	t.Run("same hours on different days do not conflict", func(t *testing.T) {
		monday := mustSchedule(t, mustBlock(t, kernel.Monday, 9*60, 17*60))
		tuesday := mustSchedule(t, mustBlock(t, kernel.Tuesday, 9*60, 17*60))

		assert.Empty(t, detector.Detect(monday, tuesday))
	})

	t.Run("flexible schedule never conflicts", func(t *testing.T) {
		dayShift := mustSchedule(t, mustBlock(t, kernel.Monday, 9*60, 17*60))
		flexible := kernel.Schedule{}

		assert.Empty(t, detector.Detect(dayShift, flexible))
		assert.Empty(t, detector.Detect(flexible, dayShift))
		assert.Empty(t, detector.Detect(flexible, flexible))
	})

	t.Run("contained block yields inner interval", func(t *testing.T) {
		dayShift := mustSchedule(t, mustBlock(t, kernel.Wednesday, 9*60, 17*60))
		lunch := mustSchedule(t, mustBlock(t, kernel.Wednesday, 12*60, 13*60))

		conflicts := detector.Detect(dayShift, lunch)

		assert.Equal(t, []match.ConflictDetail{
			{Day: kernel.Wednesday, OverlapStart: 12 * 60, OverlapEnd: 13 * 60},
		}, conflicts)
	})

	t.Run("every overlapping block pair is reported", func(t *testing.T) {
		weekdayShift := weekdaySchedule(t, 9*60, 17*60)
		lateAfternoon := weekdaySchedule(t, 15*60, 19*60)

		conflicts := detector.Detect(weekdayShift, lateAfternoon)

		assert.Len(t, conflicts, 5)
		for _, c := range conflicts {
			assert.Equal(t, kernel.Minutes(15*60), c.OverlapStart)
			assert.Equal(t, kernel.Minutes(17*60), c.OverlapEnd)
		}
	})

	t.Run("detection is symmetric in count", func(t *testing.T) {
		a := mustSchedule(t,
			mustBlock(t, kernel.Monday, 9*60, 12*60),
			mustBlock(t, kernel.Tuesday, 9*60, 12*60),
		)
		b := mustSchedule(t,
			mustBlock(t, kernel.Monday, 11*60, 14*60),
			mustBlock(t, kernel.Saturday, 9*60, 12*60),
		)

		assert.Len(t, detector.Detect(a, b), 1)
		assert.Len(t, detector.Detect(b, a), 1)
	})

	t.Run("deterministic output order", func(t *testing.T) {
		a := mustSchedule(t,
			mustBlock(t, kernel.Monday, 9*60, 12*60),
			mustBlock(t, kernel.Tuesday, 9*60, 12*60),
		)
		b := mustSchedule(t,
			mustBlock(t, kernel.Tuesday, 10*60, 11*60),
			mustBlock(t, kernel.Monday, 10*60, 11*60),
		)

		first := detector.Detect(a, b)
		second := detector.Detect(a, b)

		assert.Equal(t, first, second)
		// order follows the first schedule's blocks
		assert.Equal(t, kernel.Monday, first[0].Day)
		assert.Equal(t, kernel.Tuesday, first[1].Day)
	})
}

func TestConflictDetail_String(t *testing.T) {
	detail := match.ConflictDetail{
		Day:          kernel.Monday,
		OverlapStart: 16 * 60,
		OverlapEnd:   17 * 60,
	}

	assert.Equal(t, "Mon 16:00-17:00", detail.String())
}
