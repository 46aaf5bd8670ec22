package catalog

// Muscle is reference data: a single muscle (or displayed muscle group)
// with its mechanical tension weighting and localized display names.
type Muscle struct {
	ID string `json:"id"`
	// Names maps a language prefix ("en", "de", ...) to the display name.
	Names map[string]string `json:"names"`
	// TensionFactor scales raw volume into effective volume, >= 0.
	TensionFactor float64 `json:"tensionFactor"`
}

// Name returns the display name for the given language prefix,
// falling back to English and finally to the muscle ID.
func (m Muscle) Name(language string) string {
	if name, ok := m.Names[language]; ok && name != "" {
		return name
	}
	if name, ok := m.Names["en"]; ok && name != "" {
		return name
	}
	return m.ID
}

// ExerciseMuscle attributes a share of an exercise's stimulus to a muscle.
// RelativeShare is an integer in [0, 1000] - thousandths of the exercise's
// total stimulus. Shares of one exercise need not sum to 1000.
type ExerciseMuscle struct {
	ExerciseID    string `json:"exerciseId"`
	MuscleID      string `json:"muscleId"`
	RelativeShare int    `json:"relativeShare"`
}
