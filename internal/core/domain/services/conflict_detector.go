package services

import (
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/match"
)

// ConflictDetector is a domain service that finds same-day time overlaps
// between two weekly schedules.
//
// Detection rules:
//   - An empty (flexible) schedule never conflicts with anything; flexible
//     jobs are assumed schedulable around any other commitment
//   - Blocks on different days never conflict
//   - Same-day blocks use half-open interval semantics: [startA, endA) and
//     [startB, endB) conflict iff startA < endB && startB < endA, so
//     back-to-back blocks do not conflict
//
// Detect is a pure function: no side effects, deterministic given inputs.
// Complexity is O(|blocksA| x |blocksB|), acceptable for weekly schedules.
//
// Example usage:
//
//	detector := services.NewConflictDetector()
//	conflicts := detector.Detect(jobA.Schedule(), jobB.Schedule())
//	if len(conflicts) == 0 {
//	    // Schedules are compatible
//	}
type ConflictDetector struct{}

// NewConflictDetector creates a new ConflictDetector instance.
func NewConflictDetector() ConflictDetector {
	return ConflictDetector{}
}

// Detect returns every same-day overlap between the two schedules.
// Each conflict carries the overlapping sub-interval
// [max(starts), min(ends)) on the shared day.
//
// Returns an empty list when either schedule is flexible or when no blocks
// overlap. The order of conflicts follows the block order of the first
// schedule, then the second, keeping output deterministic.
func (d ConflictDetector) Detect(a kernel.Schedule, b kernel.Schedule) []match.ConflictDetail {
	if a.IsFlexible() || b.IsFlexible() {
		return nil
	}

	var conflicts []match.ConflictDetail
	for _, blockA := range a.Blocks() {
		for _, blockB := range b.Blocks() {
			if blockA.Day() != blockB.Day() {
				continue
			}

			if blockA.Start() < blockB.End() && blockB.Start() < blockA.End() {
				conflicts = append(conflicts, match.ConflictDetail{
					Day:          blockA.Day(),
					OverlapStart: maxMinutes(blockA.Start(), blockB.Start()),
					OverlapEnd:   minMinutes(blockA.End(), blockB.End()),
				})
			}
		}
	}

	return conflicts
}

func maxMinutes(a, b kernel.Minutes) kernel.Minutes {
	if a > b {
		return a
	}
	return b
}

func minMinutes(a, b kernel.Minutes) kernel.Minutes {
	if a < b {
		return a
	}
	return b
}
