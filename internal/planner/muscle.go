package planner

import (
	"fmt"
	"strings"
)

// MuscleGroup is one of the fixed muscle groups the planner tracks volume for.
type MuscleGroup int

const (
	Pecs MuscleGroup = iota
	Delts
	Traps
	Lats
	Biceps
	Triceps
	ErectorSpine
	Quadriceps
	Hamstrings
	Glutes
	Calves
	Abs
)

// MuscleGroupCount is the size of the muscle group enumeration.
const MuscleGroupCount = 12

var muscleGroupNames = [MuscleGroupCount]string{
	"Pecs",
	"Delts",
	"Traps",
	"Lats",
	"Biceps",
	"Triceps",
	"Erector Spine",
	"Quadriceps",
	"Hamstrings",
	"Glutes",
	"Calves",
	"Abs",
}

// AllMuscleGroups returns every muscle group in enumeration order.
func AllMuscleGroups() []MuscleGroup {
	muscles := make([]MuscleGroup, MuscleGroupCount)
	for i := range muscles {
		muscles[i] = MuscleGroup(i)
	}
	return muscles
}

func (m MuscleGroup) Valid() bool {
	return m >= 0 && m < MuscleGroupCount
}

func (m MuscleGroup) String() string {
	if !m.Valid() {
		return fmt.Sprintf("MuscleGroup(%d)", int(m))
	}
	return muscleGroupNames[m]
}

// ParseMuscleGroup accepts the display name case-insensitively; "Delt", "Erector-Spine" and
// "erector_spine" style spellings are accepted too.
func ParseMuscleGroup(name string) (MuscleGroup, error) {
	normalized := normalizeMuscleName(name)
	for i, n := range muscleGroupNames {
		if normalizeMuscleName(n) == normalized {
			return MuscleGroup(i), nil
		}
	}
	if normalized == "delt" {
		return Delts, nil
	}
	return 0, fmt.Errorf("unknown muscle group: %q", name)
}

func normalizeMuscleName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}

func (m MuscleGroup) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid muscle group: %d", int(m))
	}
	return []byte(muscleGroupNames[m]), nil
}

func (m *MuscleGroup) UnmarshalText(text []byte) error {
	parsed, err := ParseMuscleGroup(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
