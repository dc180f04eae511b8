package kernel

import (
	"fmt"
	"strings"

	"jobassist/internal/pkg/errs"
)

// DayOfWeek represents one of the seven weekdays.
// Days are ordered Monday through Sunday, which gives schedules a stable
// chronological order for display and comparison.
//
// DayOfWeek is a value object that validates day values and provides
// string representations for display.
type DayOfWeek int

const (
	// DayUnknown represents an invalid or undefined day.
	// This value (0) helps catch uninitialized DayOfWeek values.
	DayUnknown DayOfWeek = iota

	// Monday is the first day of the working week.
	Monday
	// Tuesday is the second day of the working week.
	Tuesday
	// Wednesday is the third day of the working week.
	Wednesday
	// Thursday is the fourth day of the working week.
	Thursday
	// Friday is the fifth day of the working week.
	Friday
	// Saturday is the first weekend day.
	Saturday
	// Sunday is the last day of the week.
	Sunday
)

// getDayStrings returns a map of DayOfWeek values to their short names.
// All days are included for string conversion.
func getDayStrings() map[DayOfWeek]string {
	return map[DayOfWeek]string{
		DayUnknown: "Unknown",
		Monday:     "Mon",
		Tuesday:    "Tue",
		Wednesday:  "Wed",
		Thursday:   "Thu",
		Friday:     "Fri",
		Saturday:   "Sat",
		Sunday:     "Sun",
	}
}

// getDayAliases returns the accepted spellings for each day.
// Both short and full names are recognized, case-insensitively.
func getDayAliases() map[string]DayOfWeek {
	return map[string]DayOfWeek{
		"mon":       Monday,
		"monday":    Monday,
		"tue":       Tuesday,
		"tuesday":   Tuesday,
		"wed":       Wednesday,
		"wednesday": Wednesday,
		"thu":       Thursday,
		"thursday":  Thursday,
		"fri":       Friday,
		"friday":    Friday,
		"sat":       Saturday,
		"saturday":  Saturday,
		"sun":       Sunday,
		"sunday":    Sunday,
	}
}

// AllDays returns the seven valid days in chronological order, Monday first.
// Useful for iterating schedules in display order.
func AllDays() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseDay converts a day name into a DayOfWeek.
// Accepted spellings are the short ("Mon") and full ("Monday") English names,
// case-insensitively and ignoring surrounding whitespace.
//
// Returns:
//   - DayOfWeek: The parsed day on success
//   - error: Validation error if the name is not a recognized day
//
// Example:
//
//	day, err := kernel.ParseDay("monday")
//	// day == kernel.Monday, err == nil
func ParseDay(raw string) (DayOfWeek, error) {
	day, ok := getDayAliases()[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return DayUnknown, errs.NewValueIsInvalidErrorWithCause(
			"day",
			fmt.Errorf("%q is not a recognized day name", raw),
		)
	}
	return day, nil
}

// Validate checks if the DayOfWeek value is valid.
//
// Valid days are Monday through Sunday. DayUnknown (0) and any other
// values are invalid.
//
// Returns:
//   - nil if the day is valid
//   - error with details if the day is invalid
func (d DayOfWeek) Validate() error {
	if d < Monday || d > Sunday {
		return errs.NewValueIsInvalidErrorWithCause(
			"day",
			fmt.Errorf("%d is not a valid day of week", d),
		)
	}
	return nil
}

// String returns the short English name of the day ("Mon".."Sun").
// Returns "Unknown" for invalid values. Implements fmt.Stringer and is
// safe to call on any DayOfWeek value.
func (d DayOfWeek) String() string {
	if str, ok := getDayStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
