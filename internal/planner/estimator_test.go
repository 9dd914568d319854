package planner_test

import (
	"testing"

	"github.com/2beens/volumeplanner/internal/planner"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func referenceProfile() planner.TrainingProfile {
	return planner.TrainingProfile{
		TrainingStatus:      planner.Novice,
		Sex:                 planner.Male,
		RecoveryFactor:      1.0,
		EnergyBalanceFactor: 1.1,
		Age:                 30,
		TrainingFrequency:   6,
		DedicationLevel:     planner.DedicationA,
	}
}

func TestEstimateOptimalSets_Reference(t *testing.T) {
	assert.Equal(t, 14.0, planner.EstimateOptimalSets(referenceProfile()))
}

func TestEstimateOptimalSets_FrequencyCapped(t *testing.T) {
	p := referenceProfile()
	p.EnergyBalanceFactor = 1.0

	p.TrainingFrequency = 1
	assert.Equal(t, 5.0, planner.EstimateOptimalSets(p))
	p.TrainingFrequency = 2
	assert.Equal(t, 10.0, planner.EstimateOptimalSets(p))

	p.TrainingFrequency = 3
	atThree := planner.EstimateOptimalSets(p)
	p.TrainingFrequency = 7
	assert.Equal(t, atThree, planner.EstimateOptimalSets(p))
	// 2.5 * 5 = 12.5 rounds half away from zero
	assert.Equal(t, 13.0, atThree)
}

func TestEstimateOptimalSets_FemaleOffset(t *testing.T) {
	p := referenceProfile()
	male := planner.EstimateOptimalSets(p)
	p.Sex = planner.Female
	assert.Equal(t, male+3, planner.EstimateOptimalSets(p))
}

func TestEstimateOptimalSets_TrainingStatus(t *testing.T) {
	p := referenceProfile()
	p.EnergyBalanceFactor = 1.0
	p.TrainingFrequency = 2

	p.TrainingStatus = planner.Intermediate
	// 10 * sqrt(2) = 14.14
	assert.Equal(t, 14.0, planner.EstimateOptimalSets(p))
	p.TrainingStatus = planner.Advanced
	// 10 * sqrt(3) = 17.32
	assert.Equal(t, 17.0, planner.EstimateOptimalSets(p))
}

func TestAgeFactor(t *testing.T) {
	assert.Equal(t, 1.0, planner.AgeFactor(18))
	assert.Equal(t, 1.0, planner.AgeFactor(50))
	assert.InDelta(t, 0.88, planner.AgeFactor(60), 1e-9)
	assert.InDelta(t, 0.94, planner.AgeFactor(55), 1e-9)
	assert.InDelta(t, 0.76, planner.AgeFactor(70), 1e-9)
}

func TestEstimateOptimalSets_AgePenalty(t *testing.T) {
	young := referenceProfile()
	old := referenceProfile()
	old.Age = 60

	// 13.75 * 0.88 = 12.1
	assert.Equal(t, 12.0, planner.EstimateOptimalSets(old))
	assert.Less(t, planner.EstimateOptimalSets(old), planner.EstimateOptimalSets(young))
}

func TestEstimateOptimalSets_Monotonic(t *testing.T) {
	p := referenceProfile()
	prev := planner.EstimateOptimalSets(p)
	for _, rf := range []float64{1.1, 1.2, 1.5, 2.0} {
		p.RecoveryFactor = rf
		current := planner.EstimateOptimalSets(p)
		assert.GreaterOrEqual(t, current, prev)
		prev = current
	}

	p = referenceProfile()
	prev = planner.EstimateOptimalSets(p)
	for _, eb := range []float64{1.2, 1.3, 1.6} {
		p.EnergyBalanceFactor = eb
		current := planner.EstimateOptimalSets(p)
		assert.GreaterOrEqual(t, current, prev)
		prev = current
	}
}

func TestSelectRange(t *testing.T) {
	assert.Equal(t, planner.Range{Min: 8.4, Max: 10.5}, planner.SelectRange(14, planner.DedicationA))
	assert.Equal(t, planner.Range{Min: 10.5, Max: 12.6}, planner.SelectRange(14, planner.DedicationB))
	assert.Equal(t, planner.Range{Min: 12.6, Max: 14}, planner.SelectRange(14, planner.DedicationC))
	assert.Equal(t, planner.Range{Min: 7.8, Max: 9.8}, planner.SelectRange(13, planner.DedicationA))
	assert.Equal(t, planner.Range{}, planner.SelectRange(14, planner.DedicationLevel("Z")))
}

func TestSelectRange_Ordering(t *testing.T) {
	for optimal := 1.0; optimal <= 60; optimal++ {
		a := planner.SelectRange(optimal, planner.DedicationA)
		b := planner.SelectRange(optimal, planner.DedicationB)
		c := planner.SelectRange(optimal, planner.DedicationC)
		assert.LessOrEqual(t, a.Min, a.Max)
		assert.LessOrEqual(t, a.Max, b.Min+1e-9)
		assert.LessOrEqual(t, b.Max, c.Min+1e-9)
		assert.LessOrEqual(t, c.Max, optimal)
	}
}

func TestIntensityFor(t *testing.T) {
	assert.Equal(t, 60, planner.IntensityFor(planner.Novice, planner.Compound))
	assert.Equal(t, 60, planner.IntensityFor(planner.Novice, planner.Isolation))
	assert.Equal(t, 80, planner.IntensityFor(planner.Intermediate, planner.Compound))
	assert.Equal(t, 65, planner.IntensityFor(planner.Intermediate, planner.Isolation))
	assert.Equal(t, 85, planner.IntensityFor(planner.Advanced, planner.Compound))
	assert.Equal(t, 70, planner.IntensityFor(planner.Advanced, planner.Isolation))
	assert.Equal(t, 0, planner.IntensityFor(planner.TrainingStatus(9), planner.Compound))

	_, ok := planner.IntensityGuidelineFor(planner.TrainingStatus(0))
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	s := planner.Summarize(referenceProfile())
	assert.Equal(t, "Novice", s.TrainingStatus)
	assert.Equal(t, "Male", s.Sex)
	assert.Equal(t, "A", s.DedicationLevel)
	assert.Equal(t, "Sustainability Focus (60-75% of optimal volume)", s.DedicationDescription)
	assert.Equal(t, 60, s.CompoundIntensity)
}
