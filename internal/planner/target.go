package planner

import "math"

type band struct {
	lower float64
	upper float64
}

var dedicationBands = map[DedicationLevel]band{
	DedicationA: {lower: 0.60, upper: 0.75},
	DedicationB: {lower: 0.75, upper: 0.90},
	DedicationC: {lower: 0.90, upper: 1.00},
}

// Range is an inclusive weekly set range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min-volumeEpsilon && v <= r.Max+volumeEpsilon
}

// SelectRange scales the optimal set count by the dedication band. Bounds are rounded to
// one decimal. An unknown level yields the zero range, which makes the allocator place nothing.
func SelectRange(optimal float64, level DedicationLevel) Range {
	b, ok := dedicationBands[level]
	if !ok {
		return Range{}
	}
	return Range{
		Min: roundTenth(optimal * b.lower),
		Max: roundTenth(optimal * b.upper),
	}
}

// VolumeTarget holds a weekly range per muscle group, indexed by MuscleGroup.
type VolumeTarget [MuscleGroupCount]Range

// UniformTarget applies the same range to every muscle group.
func UniformTarget(r Range) VolumeTarget {
	var t VolumeTarget
	for i := range t {
		t[i] = r
	}
	return t
}

func (t VolumeTarget) For(m MuscleGroup) Range {
	return t[m]
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
