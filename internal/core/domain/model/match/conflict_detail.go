package match

import (
	"fmt"

	"jobassist/internal/core/domain/model/kernel"
)

// ConflictDetail describes one same-day overlap between two schedules.
// The overlap is the intersection of the two conflicting blocks:
// [max(starts), min(ends)) on the shared day.
//
// ConflictDetail is a plain read model computed fresh per evaluation and
// never persisted.
type ConflictDetail struct {
	// Day is the shared day on which the overlap occurs.
	Day kernel.DayOfWeek
	// OverlapStart is the start of the overlapping sub-interval.
	OverlapStart kernel.Minutes
	// OverlapEnd is the end of the overlapping sub-interval.
	OverlapEnd kernel.Minutes
}

// String returns a human-readable representation such as "Mon 16:00-17:00".
func (c ConflictDetail) String() string {
	return fmt.Sprintf("%s %s-%s", c.Day, c.OverlapStart.Clock(), c.OverlapEnd.Clock())
}
