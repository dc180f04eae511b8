package services

import (
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/domain/model/match"
)

// morningEveningGap is the minimum difference between the mean start times of
// two schedules for the pair to count as a morning/evening split.
const morningEveningGap kernel.Minutes = 4 * 60

// PairClassifier is a domain service that describes how two compatible
// schedules relate to each other. The classification is informational and
// never affects feasibility or ranking.
//
// Rules, in order:
//   - Either schedule flexible: Complementary
//   - Disjoint day sets: DifferentDays
//   - Mean start times more than four hours apart: MorningEveningSplit when
//     the first schedule starts earlier, EveningMorningSplit otherwise
//   - Anything else: Complementary
type PairClassifier struct{}

// NewPairClassifier creates a new PairClassifier instance.
func NewPairClassifier() PairClassifier {
	return PairClassifier{}
}

// Classify returns the PairKind describing the two schedules.
func (c PairClassifier) Classify(a kernel.Schedule, b kernel.Schedule) match.PairKind {
	if a.IsFlexible() || b.IsFlexible() {
		return match.PairKindComplementary
	}

	if daysDisjoint(a, b) {
		return match.PairKindDifferentDays
	}

	meanA := meanStart(a)
	meanB := meanStart(b)
	switch {
	case meanB-meanA > morningEveningGap:
		return match.PairKindMorningEveningSplit
	case meanA-meanB > morningEveningGap:
		return match.PairKindEveningMorningSplit
	default:
		return match.PairKindComplementary
	}
}

func daysDisjoint(a, b kernel.Schedule) bool {
	daysA := make(map[kernel.DayOfWeek]bool)
	for _, day := range a.Days() {
		daysA[day] = true
	}
	for _, day := range b.Days() {
		if daysA[day] {
			return false
		}
	}
	return true
}

// meanStart averages the start times of all blocks in a non-empty schedule.
func meanStart(s kernel.Schedule) kernel.Minutes {
	blocks := s.Blocks()
	var sum int
	for _, b := range blocks {
		sum += int(b.Start())
	}
	return kernel.Minutes(sum / len(blocks))
}
