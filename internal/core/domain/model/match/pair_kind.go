package match

// PairKind classifies how two compatible schedules relate to each other.
// The classification is purely descriptive; it never affects feasibility
// or ranking, and exists so callers can explain a pairing to the worker.
type PairKind int

const (
	// PairKindUnknown represents an unclassified pairing.
	PairKindUnknown PairKind = iota

	// PairKindDifferentDays means the two jobs occupy disjoint sets of days.
	PairKindDifferentDays

	// PairKindMorningEveningSplit means the first job runs meaningfully
	// earlier in the day than the second, leaving a rest period between them.
	PairKindMorningEveningSplit

	// PairKindEveningMorningSplit means the first job runs meaningfully
	// later in the day than the second.
	PairKindEveningMorningSplit

	// PairKindComplementary covers every other compatible arrangement,
	// including pairs where at least one job is flexible.
	PairKindComplementary
)

// getPairKindStrings returns a map of PairKind values to their names.
func getPairKindStrings() map[PairKind]string {
	return map[PairKind]string{
		PairKindUnknown:             "Unknown",
		PairKindDifferentDays:       "DifferentDays",
		PairKindMorningEveningSplit: "MorningEveningSplit",
		PairKindEveningMorningSplit: "EveningMorningSplit",
		PairKindComplementary:       "Complementary",
	}
}

// String returns the name of the pair kind.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (k PairKind) String() string {
	if str, ok := getPairKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Describe returns a short human-readable explanation of the pairing,
// suitable for surfacing directly to the worker.
func (k PairKind) Describe() string {
	switch k {
	case PairKindDifferentDays:
		return "Different days (no shared working days)"
	case PairKindMorningEveningSplit:
		return "Morning & evening split (rest period between shifts)"
	case PairKindEveningMorningSplit:
		return "Evening & morning split (rest period between shifts)"
	case PairKindComplementary:
		return "Complementary schedules"
	default:
		return "Unclassified"
	}
}
