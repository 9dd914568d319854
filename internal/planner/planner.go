// Package planner turns a training profile into a weekly workout plan: it estimates the
// optimal weekly set count per muscle, narrows it to a dedication range and allocates sets
// over a frequency dependent split. The package is pure and safe for concurrent use.
package planner

type Planner struct {
	catalog   *Catalog
	allocator *Allocator
}

func New(catalog *Catalog) *Planner {
	return &Planner{
		catalog:   catalog,
		allocator: NewAllocator(catalog),
	}
}

var defaultPlanner = New(defaultCatalog)

// Generate runs the pipeline with the default catalog.
func Generate(p TrainingProfile) Plan {
	return defaultPlanner.Generate(p)
}

func (p *Planner) Catalog() *Catalog {
	return p.catalog
}

func (p *Planner) Generate(profile TrainingProfile) Plan {
	optimal := EstimateOptimalSets(profile)
	targetRange := SelectRange(optimal, profile.DedicationLevel)
	days := p.allocator.Allocate(UniformTarget(targetRange), profile.TrainingFrequency, profile.TrainingStatus)
	plan := Assemble(days, targetRange, optimal)
	plan.Report = p.catalog.WithSuggestions(plan.Report)
	return plan
}

// Validate checks days against the planner's catalog with a uniform target range.
func (p *Planner) Validate(days []WorkoutDay, target Range, trainingFrequency int) []Violation {
	return Validate(p.catalog, days, UniformTarget(target), trainingFrequency)
}

// Review is the verdict on a plan built outside the allocator.
type Review struct {
	Violations        []Violation  `json:"violations"`
	TargetVolumeRange Range        `json:"targetVolumeRange"`
	Report            VolumeReport `json:"volumeReport"`
}

func (r Review) Valid() bool {
	return len(r.Violations) == 0
}

// Review checks days against the target range the profile would get and reports the volume
// they realize, using catalog activations rather than whatever the days carry.
func (p *Planner) Review(profile TrainingProfile, days []WorkoutDay) Review {
	targetRange := SelectRange(EstimateOptimalSets(profile), profile.DedicationLevel)
	violations := p.Validate(days, targetRange, profile.TrainingFrequency)
	if violations == nil {
		violations = []Violation{}
	}
	return Review{
		Violations:        violations,
		TargetVolumeRange: targetRange,
		Report:            p.catalog.WithSuggestions(BuildReport(RealizedVolume(p.catalog.Resolve(days)), targetRange)),
	}
}
