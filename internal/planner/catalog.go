package planner

import (
	"errors"
	"fmt"
	"strings"
)

type Classification string

const (
	Compound  Classification = "Compound"
	Isolation Classification = "Isolation"
)

// Pattern decides which day types an exercise may be placed on.
type Pattern string

const (
	PatternPush  Pattern = "push"
	PatternPull  Pattern = "pull"
	PatternLower Pattern = "lower"
	PatternCore  Pattern = "core"
)

// ExerciseDefinition is an immutable catalog entry. Activation weights are one of
// 0.25, 0.5, 0.75 or 1.0; muscles not listed have weight 0.
type ExerciseDefinition struct {
	Name           string                  `json:"name"`
	Classification Classification          `json:"classification"`
	Pattern        Pattern                 `json:"pattern"`
	Activation     map[MuscleGroup]float64 `json:"activation"`
}

func (e ExerciseDefinition) ActivationOf(m MuscleGroup) float64 {
	return e.Activation[m]
}

func (e ExerciseDefinition) IsCompound() bool {
	return e.Classification == Compound
}

// Catalog is the ordered, read-only exercise library. Order matters: it breaks ties
// during allocation.
type Catalog struct {
	exercises []ExerciseDefinition
	vectors   [][MuscleGroupCount]float64
	byName    map[string]int
}

var (
	ErrEmptyCatalog      = errors.New("catalog has no exercises")
	ErrDuplicateExercise = errors.New("duplicate exercise name")
)

var validActivationWeights = map[float64]bool{0.25: true, 0.5: true, 0.75: true, 1.0: true}

func NewCatalog(definitions []ExerciseDefinition) (*Catalog, error) {
	if len(definitions) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		exercises: make([]ExerciseDefinition, 0, len(definitions)),
		vectors:   make([][MuscleGroupCount]float64, 0, len(definitions)),
		byName:    make(map[string]int, len(definitions)),
	}

	for _, def := range definitions {
		key := strings.ToLower(def.Name)
		if _, exists := c.byName[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateExercise, def.Name)
		}
		if def.Classification != Compound && def.Classification != Isolation {
			return nil, fmt.Errorf("exercise %s: invalid classification %q", def.Name, def.Classification)
		}
		switch def.Pattern {
		case PatternPush, PatternPull, PatternLower, PatternCore:
		default:
			return nil, fmt.Errorf("exercise %s: invalid pattern %q", def.Name, def.Pattern)
		}

		var vector [MuscleGroupCount]float64
		activation := make(map[MuscleGroup]float64, len(def.Activation))
		for m, w := range def.Activation {
			if !m.Valid() {
				return nil, fmt.Errorf("exercise %s: invalid muscle group %d", def.Name, int(m))
			}
			if !validActivationWeights[w] {
				return nil, fmt.Errorf("exercise %s: invalid activation %v for %s", def.Name, w, m)
			}
			vector[m] = w
			activation[m] = w
		}
		if len(activation) == 0 {
			return nil, fmt.Errorf("exercise %s: no muscle activation", def.Name)
		}

		def.Activation = activation
		c.byName[key] = len(c.exercises)
		c.exercises = append(c.exercises, def)
		c.vectors = append(c.vectors, vector)
	}

	return c, nil
}

func MustNewCatalog(definitions []ExerciseDefinition) *Catalog {
	c, err := NewCatalog(definitions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Exercises returns the definitions in catalog order. Activation maps are shared and
// must not be modified.
func (c *Catalog) Exercises() []ExerciseDefinition {
	exercises := make([]ExerciseDefinition, len(c.exercises))
	copy(exercises, c.exercises)
	return exercises
}

// Lookup finds an exercise by name, ignoring case.
func (c *Catalog) Lookup(name string) (ExerciseDefinition, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ExerciseDefinition{}, false
	}
	return c.exercises[i], true
}

var defaultCatalog = MustNewCatalog([]ExerciseDefinition{
	{Name: "Powerlifting deadlift", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Traps: 1, Lats: 0.25, ErectorSpine: 1, Quadriceps: 0.5, Hamstrings: 0.75, Glutes: 1, Calves: 0.5, Abs: 0.25,
	}},
	{Name: "Romanian deadlifts", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Traps: 1, Lats: 0.25, ErectorSpine: 1, Hamstrings: 1, Glutes: 1, Abs: 0.25,
	}},
	{Name: "Goodmornings", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 1, Hamstrings: 1, Glutes: 1, Abs: 0.25,
	}},
	{Name: "Hip extensions & pull-throughs", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 0.25, Hamstrings: 1, Glutes: 1,
	}},
	{Name: "Back extensions", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 1, Hamstrings: 1, Glutes: 1,
	}},
	{Name: "Leg curls", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Hamstrings: 1, Calves: 1,
	}},
	{Name: "Barbell squats", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 1, Quadriceps: 1, Glutes: 1, Calves: 0.5, Abs: 0.25,
	}},
	{Name: "Leg presses, hack & belt squats", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 0.25, Quadriceps: 1, Glutes: 1, Calves: 0.5,
	}},
	{Name: "Bulgarian split squats", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 0.5, Quadriceps: 1, Glutes: 1, Calves: 0.5, Abs: 0.25,
	}},
	{Name: "Lunges & step-ups", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		ErectorSpine: 0.5, Quadriceps: 1, Glutes: 1, Calves: 0.5, Abs: 0.25,
	}},
	{Name: "Leg extensions", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Quadriceps: 1,
	}},
	{Name: "Hip thrusts & glute kickbacks", Classification: Compound, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Quadriceps: 0.5, Glutes: 1,
	}},
	{Name: "Hip abduction", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Glutes: 1,
	}},
	{Name: "Calf raises/jumps", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Calves: 1,
	}},
	{Name: "Seated calf raises", Classification: Isolation, Pattern: PatternLower, Activation: map[MuscleGroup]float64{
		Calves: 1,
	}},
	{Name: "Chin-ups & pulldowns", Classification: Compound, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Pecs: 0.25, Delts: 1, Traps: 1, Lats: 1, Biceps: 1,
	}},
	{Name: "Pull-ups & wide pulldowns", Classification: Compound, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Pecs: 0.5, Delts: 0.25, Traps: 1, Lats: 1, Biceps: 1,
	}},
	{Name: "Cable rows with spinal flexion", Classification: Compound, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Delts: 1, Traps: 1, Lats: 1, Biceps: 0.5, Triceps: 0.25, ErectorSpine: 0.5, Hamstrings: 0.25, Glutes: 0.25,
	}},
	{Name: "Pull-overs & lat prayers", Classification: Compound, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Pecs: 0.5, Delts: 1, Lats: 1, Triceps: 1,
	}},
	{Name: "High rows & rear delt flys", Classification: Compound, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Delts: 1, Traps: 1,
	}},
	{Name: "Barbell bench press", Classification: Compound, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 1, Delts: 1, Triceps: 1,
	}},
	{Name: "Dumbbell bench press", Classification: Compound, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 1, Delts: 1, Triceps: 0.5,
	}},
	{Name: "Chest flys", Classification: Isolation, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 1, Delts: 1,
	}},
	{Name: "Barbell overhead press", Classification: Compound, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 0.25, Delts: 1, Traps: 0.25, Triceps: 1, Abs: 0.25,
	}},
	{Name: "Dumbbell overhead press", Classification: Compound, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 0.25, Delts: 1, Traps: 0.25, Triceps: 0.5, Abs: 0.25,
	}},
	{Name: "Lateral raises", Classification: Isolation, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Pecs: 0.25, Delts: 1, Traps: 0.25,
	}},
	{Name: "Shrugs", Classification: Isolation, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Traps: 1,
	}},
	{Name: "Triceps extensions", Classification: Isolation, Pattern: PatternPush, Activation: map[MuscleGroup]float64{
		Triceps: 1,
	}},
	{Name: "Biceps curls", Classification: Isolation, Pattern: PatternPull, Activation: map[MuscleGroup]float64{
		Biceps: 1,
	}},
	{Name: "Ab crunches", Classification: Isolation, Pattern: PatternCore, Activation: map[MuscleGroup]float64{
		Abs: 1,
	}},
})

// DefaultCatalog returns the built-in exercise library.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
