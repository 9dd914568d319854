package planner

import "math"

const (
	maxFrequencyTerm     = 2.5
	setsPerFrequencyUnit = 5.0
	ageThreshold         = 50
	agePenaltyPerDecade  = 0.12
	femaleSetOffset      = 3.0
)

// EstimateOptimalSets returns the weekly per-muscle set count the profile would ideally
// perform, rounded to the nearest whole set.
func EstimateOptimalSets(p TrainingProfile) float64 {
	freqTerm := math.Min(float64(p.TrainingFrequency), maxFrequencyTerm)
	base := freqTerm * setsPerFrequencyUnit

	optimal := base *
		p.RecoveryFactor *
		p.EnergyBalanceFactor *
		statusTerm(p.TrainingStatus) *
		AgeFactor(p.Age)

	if p.Sex == Female {
		optimal += femaleSetOffset
	}

	return math.Round(optimal)
}

// AgeFactor is 1 up to the threshold age and loses 0.12 per decade above it. It is not
// clamped; very old ages yield a non-positive factor.
func AgeFactor(age int) float64 {
	over := max(age-ageThreshold, 0)
	return 1 - float64(over)/10*agePenaltyPerDecade
}

func statusTerm(s TrainingStatus) float64 {
	return math.Sqrt(float64(s))
}
