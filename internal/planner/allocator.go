package planner

import (
	"fmt"
	"math"
	"sort"
)

const (
	// MaxSetsPerMusclePerDay caps the weighted sets a single session may put on one muscle.
	MaxSetsPerMusclePerDay = 10.0
	volumeEpsilon          = 1e-9
)

// Allocator distributes sets over the weekly split with a greedy, deficit driven loop followed
// by a bounded repair pass.
type Allocator struct {
	catalog *Catalog
}

func NewAllocator(catalog *Catalog) *Allocator {
	return &Allocator{catalog: catalog}
}

type dayState struct {
	skeletonDay
	tally     [MuscleGroupCount]float64
	sets      map[int]int
	picked    []int
	totalSets int
}

type candidate struct {
	day       int
	exercise  int
	reduction float64
	compound  bool
	daySets   int
}

// better orders candidates: larger deficit reduction, then compounds, then catalog order,
// then the emptier day, then skeleton order.
func (c candidate) better(other candidate) bool {
	if math.Abs(c.reduction-other.reduction) > volumeEpsilon {
		return c.reduction > other.reduction
	}
	if c.compound != other.compound {
		return c.compound
	}
	if c.exercise != other.exercise {
		return c.exercise < other.exercise
	}
	if c.daySets != other.daySets {
		return c.daySets < other.daySets
	}
	return c.day < other.day
}

// Allocate never fails: infeasible targets end in a plan that undershoots, and a non-positive
// frequency or target yields no days. Identical input always gives an identical result.
//
// A greedy pass fills deficits one set at a time. When it stalls with muscles still short, a
// bounded repair pass trades sets that spend scarce headroom for ones that close more of the gap.
func (a *Allocator) Allocate(target VolumeTarget, trainingFrequency int, status TrainingStatus) []WorkoutDay {
	st := newAllocation(target, weeklySkeleton(trainingFrequency))
	a.fill(st, noSlot)
	st = a.repair(st)
	return a.buildDays(st.days, status)
}

// slot is one exercise on one skeleton day.
type slot struct {
	day      int
	exercise int
}

var noSlot = slot{day: -1, exercise: -1}

// allocation is the mutable state of one Allocate call.
type allocation struct {
	target   VolumeTarget
	days     []*dayState
	realized [MuscleGroupCount]float64
}

func newAllocation(target VolumeTarget, skeleton []skeletonDay) *allocation {
	st := &allocation{
		target: target,
		days:   make([]*dayState, len(skeleton)),
	}
	for i, sd := range skeleton {
		st.days[i] = &dayState{skeletonDay: sd, sets: make(map[int]int)}
	}
	return st
}

func (st *allocation) clone() *allocation {
	c := &allocation{
		target:   st.target,
		days:     make([]*dayState, len(st.days)),
		realized: st.realized,
	}
	for i, d := range st.days {
		sets := make(map[int]int, len(d.sets))
		for ei, n := range d.sets {
			sets[ei] = n
		}
		c.days[i] = &dayState{
			skeletonDay: d.skeletonDay,
			tally:       d.tally,
			sets:        sets,
			picked:      append([]int(nil), d.picked...),
			totalSets:   d.totalSets,
		}
	}
	return c
}

// shift moves the set count of one slot by delta and updates the tallies. It leaves the
// picked order alone, so a shift undone by the opposite shift restores the state exactly.
func (st *allocation) shift(s slot, vector [MuscleGroupCount]float64, delta int) {
	d := st.days[s.day]
	for m, w := range vector {
		d.tally[m] += w * float64(delta)
		st.realized[m] += w * float64(delta*d.frequency)
	}
	d.sets[s.exercise] += delta
	d.totalSets += delta
}

func (st *allocation) add(s slot, vector [MuscleGroupCount]float64) {
	d := st.days[s.day]
	if d.sets[s.exercise] == 0 {
		d.picked = append(d.picked, s.exercise)
	}
	st.shift(s, vector, 1)
}

func (st *allocation) remove(s slot, vector [MuscleGroupCount]float64) {
	st.shift(s, vector, -1)
	d := st.days[s.day]
	if d.sets[s.exercise] > 0 {
		return
	}
	delete(d.sets, s.exercise)
	for i, ei := range d.picked {
		if ei == s.exercise {
			d.picked = append(d.picked[:i], d.picked[i+1:]...)
			break
		}
	}
}

// fits reports whether one more set keeps every activated muscle within the per-session cap
// and the weekly maximum.
func (st *allocation) fits(d *dayState, vector [MuscleGroupCount]float64) bool {
	for m, w := range vector {
		if w == 0 {
			continue
		}
		if d.tally[m]+w > MaxSetsPerMusclePerDay+volumeEpsilon {
			return false
		}
		if st.realized[m]+w*float64(d.frequency) > st.target[m].Max+volumeEpsilon {
			return false
		}
	}
	return true
}

// fill adds sets until no muscle is below its minimum or no deficit can take another set.
// The skip slot is never added to.
func (a *Allocator) fill(st *allocation, skip slot) {
	for {
		ranked := rankDeficits(st.target, st.realized)
		if len(ranked) == 0 {
			return
		}
		chosen, ok := a.pick(ranked, st, skip)
		if !ok {
			return
		}
		st.add(slot{day: chosen.day, exercise: chosen.exercise}, a.catalog.vectors[chosen.exercise])
	}
}

type deficit struct {
	muscle MuscleGroup
	amount float64
}

// rankDeficits returns muscles still below their target minimum, largest deficit first.
func rankDeficits(target VolumeTarget, realized [MuscleGroupCount]float64) []deficit {
	var ranked []deficit
	for m := range target {
		amount := target[m].Min - realized[m]
		if amount > volumeEpsilon {
			ranked = append(ranked, deficit{muscle: MuscleGroup(m), amount: amount})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if math.Abs(ranked[i].amount-ranked[j].amount) > volumeEpsilon {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].muscle < ranked[j].muscle
	})
	return ranked
}

// pick returns the best single-set addition for the highest ranked muscle that has any
// feasible candidate.
func (a *Allocator) pick(ranked []deficit, st *allocation, skip slot) (candidate, bool) {
	for _, def := range ranked {
		var best candidate
		found := false
		for di, d := range st.days {
			for ei, ex := range a.catalog.exercises {
				if !d.admits(ex.Pattern) {
					continue
				}
				if di == skip.day && ei == skip.exercise {
					continue
				}
				vector := a.catalog.vectors[ei]
				w := vector[def.muscle]
				if w == 0 {
					continue
				}
				if !st.fits(d, vector) {
					continue
				}
				c := candidate{
					day:       di,
					exercise:  ei,
					reduction: math.Min(def.amount, w*float64(d.frequency)),
					compound:  ex.IsCompound(),
					daySets:   d.totalSets,
				}
				if !found || c.better(best) {
					best = c
					found = true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return candidate{}, false
}

// buildDays drops empty days, letters the rest in skeleton order and lists compounds first.
func (a *Allocator) buildDays(days []*dayState, status TrainingStatus) []WorkoutDay {
	result := make([]WorkoutDay, 0, len(days))
	for _, d := range days {
		if d.totalSets == 0 {
			continue
		}

		order := make([]int, len(d.picked))
		copy(order, d.picked)
		sort.SliceStable(order, func(i, j int) bool {
			return a.catalog.exercises[order[i]].IsCompound() && !a.catalog.exercises[order[j]].IsCompound()
		})

		exercises := make([]ExerciseAssignment, 0, len(order))
		for _, ei := range order {
			ex := a.catalog.exercises[ei]
			exercises = append(exercises, ExerciseAssignment{
				Exercise:         ex,
				Sets:             d.sets[ei],
				IntensityPercent: IntensityFor(status, ex.Classification),
			})
		}

		result = append(result, WorkoutDay{
			Name:             fmt.Sprintf("Day %c - %s", 'A'+len(result), d.label),
			FrequencyPerWeek: d.frequency,
			Exercises:        exercises,
		})
	}
	return result
}
