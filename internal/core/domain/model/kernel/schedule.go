package kernel

import (
	"sort"
	"strings"
)

// Schedule represents the set of TimeBlocks occupying a worker's week.
// It is an immutable value object; block order is irrelevant to its meaning.
//
// The zero value (no blocks) is valid and means "flexible": a flexible
// schedule never conflicts with anything, and the hours it contributes come
// from the job's separately stated hours per week, not from summing blocks.
//
// Example:
//
//	shift, _ := kernel.NewTimeBlock(kernel.Monday, 9*60, 17*60)
//	schedule, err := kernel.NewSchedule(shift)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(schedule.Summary()) // Output: Mon 09:00-17:00
type Schedule struct {
	blocks []TimeBlock
}

// NewSchedule creates a Schedule from the given blocks.
// Every block must have been created via NewTimeBlock; passing zero or no
// blocks yields the flexible schedule.
//
// Returns:
//   - Schedule: A valid schedule instance
//   - error: Validation error if any block is improperly constructed
func NewSchedule(blocks ...TimeBlock) (Schedule, error) {
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return Schedule{}, err
		}
	}

	copied := make([]TimeBlock, len(blocks))
	copy(copied, blocks)
	return Schedule{blocks: copied}, nil
}

// Validate checks every block of the schedule.
// The flexible (empty) schedule is always valid.
func (s Schedule) Validate() error {
	for _, b := range s.blocks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsFlexible reports whether the schedule has no blocks.
// Flexible schedules belong to remote or free-form jobs that can be worked
// around any other commitment.
func (s Schedule) IsFlexible() bool {
	return len(s.blocks) == 0
}

// Blocks returns a copy of the schedule's time blocks.
// Mutating the returned slice does not affect the schedule.
func (s Schedule) Blocks() []TimeBlock {
	copied := make([]TimeBlock, len(s.blocks))
	copy(copied, s.blocks)
	return copied
}

// Duration returns the total occupied time across all blocks in minutes.
// The flexible schedule has zero duration.
func (s Schedule) Duration() Minutes {
	var total Minutes
	for _, b := range s.blocks {
		total += b.Duration()
	}
	return total
}

// Days returns the distinct days the schedule occupies in chronological order.
func (s Schedule) Days() []DayOfWeek {
	seen := make(map[DayOfWeek]bool, len(s.blocks))
	for _, b := range s.blocks {
		seen[b.Day()] = true
	}

	days := make([]DayOfWeek, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Summary returns a human-readable one-line description of the schedule,
// blocks ordered by day then start time, e.g. "Mon 09:00-17:00, Tue 18:00-21:00".
// Returns "flexible" for the empty schedule.
func (s Schedule) Summary() string {
	if s.IsFlexible() {
		return "flexible"
	}

	ordered := s.Blocks()
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Day() != ordered[j].Day() {
			return ordered[i].Day() < ordered[j].Day()
		}
		return ordered[i].Start() < ordered[j].Start()
	})

	parts := make([]string, len(ordered))
	for i, b := range ordered {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}
