package planner

// dayType is a training day template: a label and the movement patterns it admits.
type dayType struct {
	label    string
	patterns map[Pattern]bool
}

func (d dayType) admits(p Pattern) bool {
	return d.patterns[p]
}

func patterns(ps ...Pattern) map[Pattern]bool {
	m := make(map[Pattern]bool, len(ps))
	for _, p := range ps {
		m[p] = true
	}
	return m
}

var (
	fullBodyDay  = dayType{label: "Full Body", patterns: patterns(PatternPush, PatternPull, PatternLower, PatternCore)}
	fullBodyADay = dayType{label: "Full Body A", patterns: fullBodyDay.patterns}
	fullBodyBDay = dayType{label: "Full Body B", patterns: fullBodyDay.patterns}
	fullBodyCDay = dayType{label: "Full Body C", patterns: fullBodyDay.patterns}
	upperDay     = dayType{label: "Upper", patterns: patterns(PatternPush, PatternPull, PatternCore)}
	lowerDay     = dayType{label: "Lower", patterns: patterns(PatternLower, PatternCore)}
	pushDay      = dayType{label: "Push", patterns: patterns(PatternPush, PatternCore)}
	pullDay      = dayType{label: "Pull", patterns: patterns(PatternPull)}
	legsDay      = dayType{label: "Legs", patterns: patterns(PatternLower, PatternCore)}
)

// skeletonDay is one distinct day in the weekly split, repeated frequency times per week.
type skeletonDay struct {
	dayType
	frequency int
}

// weeklySkeleton maps a weekly session count to distinct days. Frequencies always sum to
// at most trainingFrequency; counts above seven reuse the seven session split.
func weeklySkeleton(trainingFrequency int) []skeletonDay {
	switch {
	case trainingFrequency <= 0:
		return nil
	case trainingFrequency == 1:
		return []skeletonDay{{fullBodyDay, 1}}
	case trainingFrequency == 2:
		return []skeletonDay{{fullBodyDay, 2}}
	case trainingFrequency == 3:
		return []skeletonDay{{fullBodyADay, 1}, {fullBodyBDay, 1}, {fullBodyCDay, 1}}
	case trainingFrequency == 4:
		return []skeletonDay{{upperDay, 2}, {lowerDay, 2}}
	case trainingFrequency == 5:
		return []skeletonDay{{upperDay, 2}, {lowerDay, 2}, {fullBodyDay, 1}}
	case trainingFrequency == 6:
		return []skeletonDay{{pushDay, 2}, {pullDay, 2}, {legsDay, 2}}
	default:
		return []skeletonDay{{pushDay, 2}, {pullDay, 2}, {legsDay, 2}, {fullBodyDay, 1}}
	}
}
