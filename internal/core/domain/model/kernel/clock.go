package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"jobassist/internal/pkg/errs"
)

// Minutes represents a time of day expressed as minutes since midnight.
// Valid values for schedule boundaries range from 0 (00:00) up to, but not
// including, MinutesPerDay.
type Minutes int

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay Minutes = 24 * 60

// ParseClock converts a wall-clock string into Minutes since midnight.
// It accepts the "HH:MM" form ("09:00", "18:30") as well as a bare minute
// count ("540"), which some upstream feeds deliver.
//
// Returns:
//   - Minutes: The parsed minute-of-day value
//   - error: Validation error if the string is not a recognizable time
//
// Example:
//
//	m, err := kernel.ParseClock("09:30")
//	// m == 570, err == nil
func ParseClock(raw string) (Minutes, error) {
	trimmed := strings.TrimSpace(raw)

	if hours, mins, found := strings.Cut(trimmed, ":"); found {
		h, hErr := strconv.Atoi(hours)
		m, mErr := strconv.Atoi(mins)
		if hErr != nil || mErr != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"clock",
				fmt.Errorf("%q is not a valid HH:MM time", raw),
			)
		}
		return Minutes(h*60 + m), nil
	}

	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"clock",
			fmt.Errorf("%q is not a valid HH:MM time or minute count", raw),
		)
	}
	return Minutes(v), nil
}

// Clock returns the "HH:MM" representation of the minute-of-day value.
//
// Example:
//
//	kernel.Minutes(570).Clock() // "09:30"
func (m Minutes) Clock() string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
