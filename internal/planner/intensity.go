package planner

// IntensityGuideline holds the working intensity, as a percent of one-rep max, per
// exercise classification.
type IntensityGuideline struct {
	Compound  int `json:"compoundPercent"`
	Isolation int `json:"isolationPercent"`
}

var intensityGuidelines = map[TrainingStatus]IntensityGuideline{
	Novice:       {Compound: 60, Isolation: 60},
	Intermediate: {Compound: 80, Isolation: 65},
	Advanced:     {Compound: 85, Isolation: 70},
}

func IntensityGuidelineFor(s TrainingStatus) (IntensityGuideline, bool) {
	g, ok := intensityGuidelines[s]
	return g, ok
}

// IntensityFor returns 0 for an unknown training status.
func IntensityFor(s TrainingStatus, c Classification) int {
	g := intensityGuidelines[s]
	if c == Compound {
		return g.Compound
	}
	return g.Isolation
}
