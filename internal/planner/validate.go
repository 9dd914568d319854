package planner

import "fmt"

type ViolationKind string

const (
	ViolationFrequency       ViolationKind = "frequency_exceeded"
	ViolationUnknownExercise ViolationKind = "unknown_exercise"
	ViolationInvalidSets     ViolationKind = "invalid_sets"
	ViolationDayFrequency    ViolationKind = "invalid_day_frequency"
	ViolationPattern         ViolationKind = "pattern_not_allowed"
	ViolationDailyCap        ViolationKind = "daily_cap_exceeded"
	ViolationWeeklyMax       ViolationKind = "weekly_max_exceeded"
)

type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Day     string        `json:"day,omitempty"`
	Message string        `json:"message"`
}

func (v Violation) String() string {
	if v.Day == "" {
		return fmt.Sprintf("%s: %s", v.Kind, v.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", v.Kind, v.Day, v.Message)
}

// Validate checks a set of days against the allocation constraints. Exercises are resolved by
// name against the catalog, so activation data carried by the days themselves is ignored.
// Pattern checks only apply to days whose name ends in a known day label.
func Validate(catalog *Catalog, days []WorkoutDay, target VolumeTarget, trainingFrequency int) []Violation {
	var violations []Violation

	frequencySum := 0
	for _, d := range days {
		frequencySum += d.FrequencyPerWeek
	}
	if frequencySum > trainingFrequency {
		violations = append(violations, Violation{
			Kind:    ViolationFrequency,
			Message: fmt.Sprintf("day frequencies sum to %d, more than %d sessions per week", frequencySum, trainingFrequency),
		})
	}

	var weekly [MuscleGroupCount]float64
	for _, d := range days {
		if d.FrequencyPerWeek <= 0 {
			violations = append(violations, Violation{
				Kind:    ViolationDayFrequency,
				Day:     d.Name,
				Message: fmt.Sprintf("frequency must be positive, got %d", d.FrequencyPerWeek),
			})
		}
		dt, knownDayType := dayTypeFromName(d.Name)

		var tally [MuscleGroupCount]float64
		for _, a := range d.Exercises {
			ex, ok := catalog.Lookup(a.Exercise.Name)
			if !ok {
				violations = append(violations, Violation{
					Kind:    ViolationUnknownExercise,
					Day:     d.Name,
					Message: fmt.Sprintf("exercise %q is not in the catalog", a.Exercise.Name),
				})
				continue
			}
			if a.Sets <= 0 {
				violations = append(violations, Violation{
					Kind:    ViolationInvalidSets,
					Day:     d.Name,
					Message: fmt.Sprintf("%s has %d sets", ex.Name, a.Sets),
				})
				continue
			}
			if knownDayType && !dt.admits(ex.Pattern) {
				violations = append(violations, Violation{
					Kind:    ViolationPattern,
					Day:     d.Name,
					Message: fmt.Sprintf("%s (%s) does not belong on a %s day", ex.Name, ex.Pattern, dt.label),
				})
			}
			for m, w := range ex.Activation {
				tally[m] += float64(a.Sets) * w
			}
		}

		for _, m := range AllMuscleGroups() {
			if tally[m] > MaxSetsPerMusclePerDay+volumeEpsilon {
				violations = append(violations, Violation{
					Kind:    ViolationDailyCap,
					Day:     d.Name,
					Message: fmt.Sprintf("%s gets %.2f sets in one session, cap is %.0f", m, tally[m], MaxSetsPerMusclePerDay),
				})
			}
			if d.FrequencyPerWeek > 0 {
				weekly[m] += tally[m] * float64(d.FrequencyPerWeek)
			}
		}
	}

	for _, m := range AllMuscleGroups() {
		if weekly[m] > target[m].Max+volumeEpsilon {
			violations = append(violations, Violation{
				Kind:    ViolationWeeklyMax,
				Message: fmt.Sprintf("%s gets %.2f weekly sets, maximum is %.1f", m, weekly[m], target[m].Max),
			})
		}
	}

	return violations
}

var knownDayTypes = []dayType{
	fullBodyADay, fullBodyBDay, fullBodyCDay, fullBodyDay,
	upperDay, lowerDay, pushDay, pullDay, legsDay,
}

func dayTypeFromName(name string) (dayType, bool) {
	for _, dt := range knownDayTypes {
		if hasLabelSuffix(name, dt.label) {
			return dt, true
		}
	}
	return dayType{}, false
}

func hasLabelSuffix(name, label string) bool {
	suffix := "- " + label
	return len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix
}

// Resolve swaps every assignment's exercise for the catalog definition of the same name.
// Unknown exercises keep their name only, so they add no volume. Assignments without a
// positive set count are dropped; Validate reports them.
func (c *Catalog) Resolve(days []WorkoutDay) []WorkoutDay {
	resolved := make([]WorkoutDay, len(days))
	for i, d := range days {
		exercises := make([]ExerciseAssignment, 0, len(d.Exercises))
		for _, a := range d.Exercises {
			if a.Sets <= 0 {
				continue
			}
			if ex, ok := c.Lookup(a.Exercise.Name); ok {
				a.Exercise = ex
			} else {
				a.Exercise = ExerciseDefinition{Name: a.Exercise.Name}
			}
			exercises = append(exercises, a)
		}
		d.Exercises = exercises
		resolved[i] = d
	}
	return resolved
}
