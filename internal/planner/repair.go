package planner

const (
	maxRepairRounds = 100
	// minRepairGain is the smallest shortfall drop a repair move must bring to be taken.
	minRepairGain = 1e-6
)

// shortfall scores how far the realized volume sits below the minimums: the sum of squared
// relative deficits. Squaring favours lifting the worst muscle over topping up a nearly
// reached one.
func shortfall(target VolumeTarget, realized [MuscleGroupCount]float64) float64 {
	total := 0.0
	for m := range target {
		if d := target[m].Min - realized[m]; d > volumeEpsilon {
			r := d / target[m].Min
			total += r * r
		}
	}
	return total
}

// repair runs after the greedy pass stalls. Each round applies the best move of the first
// kind that lowers the shortfall:
//   - swap one set for one set of another slot, then fill again
//   - drop one set and fill again without that slot
//
// Moves never break a cap, so the result is as valid as the greedy one.
func (a *Allocator) repair(st *allocation) *allocation {
	for range maxRepairRounds {
		current := shortfall(st.target, st.realized)
		if current <= volumeEpsilon {
			return st
		}

		if from, to, ok := a.bestSwap(st, current); ok {
			st.remove(from, a.catalog.vectors[from.exercise])
			st.add(to, a.catalog.vectors[to.exercise])
			a.fill(st, noSlot)
			continue
		}

		if next, ok := a.bestDrop(st, current); ok {
			st = next
			continue
		}

		return st
	}
	return st
}

// bestSwap finds the one-for-one set exchange that lowers the shortfall the most.
func (a *Allocator) bestSwap(st *allocation, current float64) (slot, slot, bool) {
	var (
		bestFrom, bestTo slot
		bestScore        float64
		found            bool
	)
	for di, d := range st.days {
		for ei := range a.catalog.exercises {
			if d.sets[ei] == 0 {
				continue
			}
			from := slot{day: di, exercise: ei}
			fromVector := a.catalog.vectors[ei]
			st.shift(from, fromVector, -1)

			for dj, other := range st.days {
				for ej, ex := range a.catalog.exercises {
					if dj == di && ej == ei {
						continue
					}
					if !other.admits(ex.Pattern) {
						continue
					}
					vector := a.catalog.vectors[ej]
					if !st.fits(other, vector) {
						continue
					}

					realized := st.realized
					for m, w := range vector {
						realized[m] += w * float64(other.frequency)
					}
					score := shortfall(st.target, realized)
					if score < current-minRepairGain && (!found || score < bestScore-volumeEpsilon) {
						bestFrom, bestTo, bestScore, found = from, slot{day: dj, exercise: ej}, score, true
					}
				}
			}

			st.shift(from, fromVector, 1)
		}
	}
	return bestFrom, bestTo, found
}

// bestDrop removes each placed set in turn and refills without it, keeping the refill with
// the lowest shortfall.
func (a *Allocator) bestDrop(st *allocation, current float64) (*allocation, bool) {
	var (
		best      *allocation
		bestScore float64
	)
	for di, d := range st.days {
		for ei := range a.catalog.exercises {
			if d.sets[ei] == 0 {
				continue
			}
			dropped := slot{day: di, exercise: ei}
			trial := st.clone()
			trial.remove(dropped, a.catalog.vectors[ei])
			a.fill(trial, dropped)

			score := shortfall(trial.target, trial.realized)
			if score < current-minRepairGain && (best == nil || score < bestScore-volumeEpsilon) {
				best, bestScore = trial, score
			}
		}
	}
	return best, best != nil
}
