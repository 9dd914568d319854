package planner

import "encoding/json"

// ExerciseAssignment is one exercise placed on a day.
type ExerciseAssignment struct {
	Exercise         ExerciseDefinition
	Sets             int
	IntensityPercent int
}

type exerciseAssignmentJSON struct {
	ExerciseName     string                  `json:"exerciseName"`
	Classification   Classification          `json:"classification,omitempty"`
	Pattern          Pattern                 `json:"pattern,omitempty"`
	Sets             int                     `json:"sets"`
	IntensityPercent int                     `json:"intensityPercent"`
	MuscleActivation map[MuscleGroup]float64 `json:"muscleActivation,omitempty"`
}

func (a ExerciseAssignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(exerciseAssignmentJSON{
		ExerciseName:     a.Exercise.Name,
		Classification:   a.Exercise.Classification,
		Pattern:          a.Exercise.Pattern,
		Sets:             a.Sets,
		IntensityPercent: a.IntensityPercent,
		MuscleActivation: a.Exercise.Activation,
	})
}

// UnmarshalJSON keeps whatever definition the document carries. Callers that need the
// catalog definition resolve it by name, as Validate does.
func (a *ExerciseAssignment) UnmarshalJSON(data []byte) error {
	var raw exerciseAssignmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = ExerciseAssignment{
		Exercise: ExerciseDefinition{
			Name:           raw.ExerciseName,
			Classification: raw.Classification,
			Pattern:        raw.Pattern,
			Activation:     raw.MuscleActivation,
		},
		Sets:             raw.Sets,
		IntensityPercent: raw.IntensityPercent,
	}
	return nil
}

// WorkoutDay is a distinct training day repeated FrequencyPerWeek times a week.
type WorkoutDay struct {
	Name             string               `json:"name"`
	FrequencyPerWeek int                  `json:"frequencyPerWeek"`
	Exercises        []ExerciseAssignment `json:"exercises"`
}

// TotalSets is the per-session set count of the day.
func (d WorkoutDay) TotalSets() int {
	total := 0
	for _, e := range d.Exercises {
		total += e.Sets
	}
	return total
}

// MuscleSets is the per-session, activation weighted set count for each muscle group.
func (d WorkoutDay) MuscleSets() [MuscleGroupCount]float64 {
	var tally [MuscleGroupCount]float64
	for _, e := range d.Exercises {
		for m, w := range e.Exercise.Activation {
			if m.Valid() {
				tally[m] += float64(e.Sets) * w
			}
		}
	}
	return tally
}

// WeeklyVolume is the realized weekly weighted set count of a muscle group.
type WeeklyVolume struct {
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	WeeklySets  float64     `json:"weeklySets"`
}

// RealizedVolume sums sets x activation x frequency over all days.
func RealizedVolume(days []WorkoutDay) [MuscleGroupCount]float64 {
	var volume [MuscleGroupCount]float64
	for _, d := range days {
		tally := d.MuscleSets()
		for m := range volume {
			volume[m] += tally[m] * float64(d.FrequencyPerWeek)
		}
	}
	return volume
}

// WeeklySummary lists the realized volume of every muscle group in enumeration order.
func WeeklySummary(days []WorkoutDay) []WeeklyVolume {
	volume := RealizedVolume(days)
	summary := make([]WeeklyVolume, 0, MuscleGroupCount)
	for _, m := range AllMuscleGroups() {
		summary = append(summary, WeeklyVolume{MuscleGroup: m, WeeklySets: volume[m]})
	}
	return summary
}

type Plan struct {
	EstimatedOptimalSets float64        `json:"estimatedOptimalSets"`
	TargetVolumeRange    Range          `json:"targetVolumeRange"`
	Days                 []WorkoutDay   `json:"days"`
	WeeklyVolumeSummary  []WeeklyVolume `json:"weeklyVolumeSummary"`
	Report               VolumeReport   `json:"volumeReport"`
}

// Assemble packages allocated days together with the numbers they were derived from.
func Assemble(days []WorkoutDay, target Range, optimal float64) Plan {
	if days == nil {
		days = []WorkoutDay{}
	}
	return Plan{
		EstimatedOptimalSets: optimal,
		TargetVolumeRange:    target,
		Days:                 days,
		WeeklyVolumeSummary:  WeeklySummary(days),
		Report:               BuildReport(RealizedVolume(days), target),
	}
}
