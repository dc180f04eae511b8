package kernel

import (
	"errors"
	"fmt"

	"jobassist/internal/pkg/errs"
	"jobassist/internal/pkg/guard"
)

// ErrTimeBlockIsNotConstructed is returned when attempting to use an improperly
// initialized TimeBlock. TimeBlocks must be created via the NewTimeBlock constructor.
var ErrTimeBlockIsNotConstructed = errs.NewValueIsRequiredError(
	"time block must be created via NewTimeBlock constructor")

// TimeBlock represents a contiguous weekly time interval on one day of the week.
// It is an immutable value object with validated boundaries.
//
// The interval is half-open: [start, end). Two blocks on the same day conflict
// iff startA < endB && startB < endA, so back-to-back blocks (endA == startB)
// do not conflict. Both boundaries are minutes since midnight within [0, 1440),
// and start must be strictly before end.
//
// The zero value of TimeBlock is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	block, err := kernel.NewTimeBlock(kernel.Monday, 9*60, 17*60)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(block) // Output: Mon 09:00-17:00
type TimeBlock struct { //nolint:recvcheck //using for validation
	day   DayOfWeek
	start Minutes
	end   Minutes
	guard guard.ConstructorGuard
}

// NewTimeBlock creates a new TimeBlock with the specified day and boundaries.
//
// Parameters:
//   - day: The day of week (must be Monday..Sunday)
//   - start: Start of the interval in minutes since midnight (within [0, 1440))
//   - end: End of the interval in minutes since midnight (within [0, 1440))
//
// Returns:
//   - TimeBlock: A valid time block instance
//   - error: Validation error if the day is invalid, a boundary is out of
//     bounds, or start is not strictly before end
func NewTimeBlock(day DayOfWeek, start Minutes, end Minutes) (TimeBlock, error) {
	block := TimeBlock{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		block.setDay(day),
		block.setStart(start),
		block.setEnd(end),
	); err != nil {
		return TimeBlock{}, err
	}

	if block.start >= block.end {
		return TimeBlock{}, errs.NewValueIsInvalidErrorWithCause(
			"timeBlock",
			fmt.Errorf("start %s must be before end %s", start.Clock(), end.Clock()),
		)
	}

	return block, nil
}

// Validate checks if the TimeBlock was properly constructed using the constructor.
// The zero value of TimeBlock is invalid and will fail this validation.
func (b TimeBlock) Validate() error {
	return b.guard.Validate(ErrTimeBlockIsNotConstructed)
}

// Day returns the day of week the block occupies.
func (b TimeBlock) Day() DayOfWeek {
	return b.day
}

// Start returns the start boundary in minutes since midnight (inclusive).
func (b TimeBlock) Start() Minutes {
	return b.start
}

// End returns the end boundary in minutes since midnight (exclusive).
func (b TimeBlock) End() Minutes {
	return b.end
}

// Duration returns the length of the block in minutes.
func (b TimeBlock) Duration() Minutes {
	return b.end - b.start
}

// Overlaps reports whether two blocks occupy any common time.
// Blocks on different days never overlap. On the same day the intervals are
// treated as half-open, so blocks that merely touch (b.end == other.start)
// do not overlap.
//
// Parameters:
//   - other: The TimeBlock to compare with
//
// Returns:
//   - bool: true if the blocks overlap, false otherwise
//   - error: Validation error if either block is improperly constructed
//
// Example:
//
//	shift, _ := kernel.NewTimeBlock(kernel.Monday, 9*60, 17*60)
//	evening, _ := kernel.NewTimeBlock(kernel.Monday, 17*60, 21*60)
//	overlaps, _ := shift.Overlaps(evening) // false, back-to-back
func (b TimeBlock) Overlaps(other TimeBlock) (bool, error) {
	if err := errors.Join(b.Validate(), other.Validate()); err != nil {
		return false, err
	}

	if b.day != other.day {
		return false, nil
	}

	return b.start < other.end && other.start < b.end, nil
}

// IsEqual compares two time blocks for equality.
// Two blocks are equal if they have the same day and boundaries.
//
// Parameters:
//   - other: The TimeBlock to compare with
//
// Returns:
//   - bool: true if the blocks are equal, false otherwise
//   - error: Validation error if either block is improperly constructed
func (b TimeBlock) IsEqual(other TimeBlock) (bool, error) {
	if err := errors.Join(b.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return b.day == other.day && b.start == other.start && b.end == other.end, nil
}

// String returns a human-readable representation in the format "Mon 09:00-17:00".
// This method implements the fmt.Stringer interface.
func (b TimeBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.day, b.start.Clock(), b.end.Clock())
}

// setDay sets the day with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (b *TimeBlock) setDay(day DayOfWeek) error {
	if err := day.Validate(); err != nil {
		return err
	}

	b.day = day
	return nil
}

// setStart sets the start boundary with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (b *TimeBlock) setStart(start Minutes) error {
	if start < 0 || start >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("start", start, Minutes(0), MinutesPerDay-1)
	}

	b.start = start
	return nil
}

// setEnd sets the end boundary with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (b *TimeBlock) setEnd(end Minutes) error {
	if end < 0 || end >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("end", end, Minutes(0), MinutesPerDay-1)
	}

	b.end = end
	return nil
}
