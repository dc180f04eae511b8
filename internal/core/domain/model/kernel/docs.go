// Package kernel provides core domain primitives for the job-matching system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - DayOfWeek: An enumeration of the seven weekdays with alias-aware parsing
//   - Minutes: A minute-of-day scalar with HH:MM parsing and formatting
//   - TimeBlock: A validated half-open time interval on one day of the week
//   - Schedule: An immutable set of time blocks; the empty schedule means "flexible"
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
