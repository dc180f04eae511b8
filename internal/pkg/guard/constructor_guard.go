package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created through its constructor and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that value objects and entities are only created
// through their designated constructor functions. A zero-value struct that
// embeds a guard fails validation, which prevents bypassing the invariants
// the constructor establishes.
//
// Example usage:
//
//	type TimeBlock struct {
//	    day   DayOfWeek
//	    start Minutes
//	    end   Minutes
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTimeBlock(day DayOfWeek, start, end Minutes) (TimeBlock, error) {
//	    // ...validate inputs...
//	    return TimeBlock{day: day, start: start, end: end, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b TimeBlock) Validate() error {
//	    return b.guard.Validate(ErrTimeBlockIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it from the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. Returns validationError for zero-value objects, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
