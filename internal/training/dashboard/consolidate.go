package dashboard

// The muscle taxonomy splits hip/glutes away from legs, but the product
// shows them as one "Legs" group.
const (
	MuscleGroupLegs      = "legs"
	MuscleGroupHipGlutes = "hip_glutes"
)

var defaultLegsNames = map[string]string{
	"en": "Legs",
	"de": "Beine",
	"sr": "Noge",
}

// ConsolidateLegs merges the hip/glutes series into the legs series. When
// only one of the two is present nothing is merged: a lone hip/glutes
// series is dropped, a lone legs series stays as-is. Merged points sum
// volumes and set counts and weight avg e1rm by set count.
func ConsolidateLegs(groups []MuscleGroupSeries, language string) []MuscleGroupSeries {
	hipGlutesIdx, legsIdx := -1, -1
	for i, g := range groups {
		switch g.MuscleID {
		case MuscleGroupHipGlutes:
			hipGlutesIdx = i
		case MuscleGroupLegs:
			legsIdx = i
		}
	}

	if hipGlutesIdx == -1 {
		return groups
	}
	if legsIdx == -1 {
		return append(groups[:hipGlutesIdx:hipGlutesIdx], groups[hipGlutesIdx+1:]...)
	}

	hipGlutes := groups[hipGlutesIdx]
	legs := groups[legsIdx]

	merged := MuscleGroupSeries{
		MuscleID: MuscleGroupLegs,
		Name:     legsName(legs.Name, language),
		Points:   make([]MuscleGroupPoint, 0, len(legs.Points)),
	}
	// Both series are gap-filled over the same span, so points align by index.
	for i := range legs.Points {
		merged.Points = append(merged.Points, mergePoints(hipGlutes.Points[i], legs.Points[i]))
	}

	out := make([]MuscleGroupSeries, 0, len(groups)-1)
	for i, g := range groups {
		if i == hipGlutesIdx {
			continue
		}
		if i == legsIdx {
			out = append(out, merged)
			continue
		}
		out = append(out, g)
	}
	return out
}

func mergePoints(a, b MuscleGroupPoint) MuscleGroupPoint {
	return MuscleGroupPoint{
		WeekStart:   b.WeekStart,
		TotalVolume: a.TotalVolume + b.TotalVolume,
		SetCount:    a.SetCount + b.SetCount,
		AvgE1RM:     weightedAvgE1RM(a, b),
	}
}

// weightedAvgE1RM combines two points' averages weighted by their set
// counts. A nil average contributes nothing; both nil, or a combined set
// count of zero, yields nil.
func weightedAvgE1RM(a, b MuscleGroupPoint) *float64 {
	switch {
	case a.AvgE1RM == nil && b.AvgE1RM == nil:
		return nil
	case a.AvgE1RM == nil:
		avg := *b.AvgE1RM
		return &avg
	case b.AvgE1RM == nil:
		avg := *a.AvgE1RM
		return &avg
	}

	combinedSets := a.SetCount + b.SetCount
	if combinedSets == 0 {
		return nil
	}
	avg := (*a.AvgE1RM*float64(a.SetCount) + *b.AvgE1RM*float64(b.SetCount)) / float64(combinedSets)
	return &avg
}

func legsName(existing, language string) string {
	if existing != "" && existing != MuscleGroupLegs {
		return existing
	}
	if name, ok := defaultLegsNames[LanguagePrefix(language)]; ok {
		return name
	}
	return defaultLegsNames["en"]
}
