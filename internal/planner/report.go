package planner

import (
	"math"
	"sort"
)

// VolumeStatus classifies realized weekly volume against the target range.
type VolumeStatus string

const (
	StatusWithin   VolumeStatus = "within"
	StatusBelow    VolumeStatus = "below"
	StatusAbove    VolumeStatus = "above"
	StatusFarBelow VolumeStatus = "far_below"
	StatusFarAbove VolumeStatus = "far_above"
)

// ToleranceFraction widens the target range before a muscle counts as far off target.
const ToleranceFraction = 0.30

type MuscleReport struct {
	MuscleGroup MuscleGroup  `json:"muscleGroup"`
	WeeklySets  float64      `json:"weeklySets"`
	Status      VolumeStatus `json:"status"`
	// Deficit is how far the muscle sits below the target minimum, 0 when it reaches it.
	Deficit float64 `json:"deficit"`
	// Suggestions names exercises to add, set only for muscles under target.
	Suggestions []string `json:"suggestions,omitempty"`
}

type VolumeReport struct {
	Muscles     []MuscleReport `json:"muscles"`
	UnderTarget []MuscleGroup  `json:"underTarget"`
	Acceptable  bool           `json:"acceptable"`
}

func ClassifyVolume(volume float64, target Range) VolumeStatus {
	switch {
	case volume < target.Min*(1-ToleranceFraction)-volumeEpsilon:
		return StatusFarBelow
	case volume > target.Max*(1+ToleranceFraction)+volumeEpsilon:
		return StatusFarAbove
	case volume < target.Min-volumeEpsilon:
		return StatusBelow
	case volume > target.Max+volumeEpsilon:
		return StatusAbove
	default:
		return StatusWithin
	}
}

// BuildReport is acceptable when no muscle lands outside the tolerance band.
func BuildReport(volume [MuscleGroupCount]float64, target Range) VolumeReport {
	report := VolumeReport{
		Muscles:     make([]MuscleReport, 0, MuscleGroupCount),
		UnderTarget: []MuscleGroup{},
		Acceptable:  true,
	}
	for _, m := range AllMuscleGroups() {
		status := ClassifyVolume(volume[m], target)
		deficit := max(target.Min-volume[m], 0)
		if deficit <= volumeEpsilon {
			deficit = 0
		}
		report.Muscles = append(report.Muscles, MuscleReport{
			MuscleGroup: m,
			WeeklySets:  volume[m],
			Status:      status,
			Deficit:     roundTenth(deficit),
		})
		if status == StatusBelow || status == StatusFarBelow {
			report.UnderTarget = append(report.UnderTarget, m)
		}
		if status == StatusFarBelow || status == StatusFarAbove {
			report.Acceptable = false
		}
	}
	return report
}

const maxSuggestions = 3

// SuggestExercises names up to three exercises that give m the strongest activation the
// catalog has, the ones loading least else first. Ties keep catalog order.
func (c *Catalog) SuggestExercises(m MuscleGroup) []string {
	if !m.Valid() {
		return nil
	}

	top := 0.0
	for _, v := range c.vectors {
		top = max(top, v[m])
	}
	if top == 0 {
		return nil
	}

	type option struct {
		index int
		focus float64
	}
	var options []option
	for i, v := range c.vectors {
		if v[m] != top {
			continue
		}
		total := 0.0
		for _, w := range v {
			total += w
		}
		options = append(options, option{index: i, focus: v[m] / total})
	}
	sort.SliceStable(options, func(i, j int) bool {
		if math.Abs(options[i].focus-options[j].focus) > volumeEpsilon {
			return options[i].focus > options[j].focus
		}
		return options[i].index < options[j].index
	})

	names := make([]string, 0, maxSuggestions)
	for _, o := range options[:min(len(options), maxSuggestions)] {
		names = append(names, c.exercises[o.index].Name)
	}
	return names
}

// WithSuggestions returns a copy of report in which every muscle under target carries
// exercise suggestions.
func (c *Catalog) WithSuggestions(report VolumeReport) VolumeReport {
	muscles := make([]MuscleReport, len(report.Muscles))
	copy(muscles, report.Muscles)
	for i, m := range muscles {
		if m.Status == StatusBelow || m.Status == StatusFarBelow {
			muscles[i].Suggestions = c.SuggestExercises(m.MuscleGroup)
		}
	}
	report.Muscles = muscles
	return report
}
