package planner

import "fmt"

type TrainingStatus int

const (
	Novice       TrainingStatus = 1
	Intermediate TrainingStatus = 2
	Advanced     TrainingStatus = 3
)

func (s TrainingStatus) Valid() bool {
	return s >= Novice && s <= Advanced
}

func (s TrainingStatus) String() string {
	switch s {
	case Novice:
		return "Novice"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return fmt.Sprintf("TrainingStatus(%d)", int(s))
	}
}

type Sex int

const (
	Male   Sex = 0
	Female Sex = 1
)

func (s Sex) Valid() bool {
	return s == Male || s == Female
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// DedicationLevel trades sustainability against results; it selects the fraction of the
// estimated optimal volume a plan aims for.
type DedicationLevel string

const (
	DedicationA DedicationLevel = "A"
	DedicationB DedicationLevel = "B"
	DedicationC DedicationLevel = "C"
)

func (d DedicationLevel) Valid() bool {
	_, ok := dedicationBands[d]
	return ok
}

func (d DedicationLevel) Description() string {
	switch d {
	case DedicationA:
		return "Sustainability Focus (60-75% of optimal volume)"
	case DedicationB:
		return "Balanced Approach (75-90% of optimal volume)"
	case DedicationC:
		return "Maximum Results (90-100% of optimal volume)"
	default:
		return ""
	}
}

// TrainingProfile is the engine input. The engine assumes the profile was validated at the
// service boundary and never rejects one itself.
type TrainingProfile struct {
	TrainingStatus      TrainingStatus
	Sex                 Sex
	RecoveryFactor      float64
	EnergyBalanceFactor float64
	Age                 int
	TrainingFrequency   int
	DedicationLevel     DedicationLevel
}

// ProfileSummary carries human readable labels for a profile.
type ProfileSummary struct {
	TrainingStatus        string `json:"trainingStatus"`
	Sex                   string `json:"sex"`
	Age                   int    `json:"age"`
	TrainingFrequency     int    `json:"trainingFrequency"`
	DedicationLevel       string `json:"dedicationLevel"`
	DedicationDescription string `json:"dedicationDescription"`
	CompoundIntensity     int    `json:"compoundIntensityPercent"`
	IsolationIntensity    int    `json:"isolationIntensityPercent"`
}

func Summarize(p TrainingProfile) ProfileSummary {
	guideline, _ := IntensityGuidelineFor(p.TrainingStatus)
	return ProfileSummary{
		TrainingStatus:        p.TrainingStatus.String(),
		Sex:                   p.Sex.String(),
		Age:                   p.Age,
		TrainingFrequency:     p.TrainingFrequency,
		DedicationLevel:       string(p.DedicationLevel),
		DedicationDescription: p.DedicationLevel.Description(),
		CompoundIntensity:     guideline.Compound,
		IsolationIntensity:    guideline.Isolation,
	}
}
