package predation

import "predprey/internal/core"

// TickStats records what happened during a single tick.
type TickStats struct {
	Births         int
	PredatorBirths int
	Deaths         int
	PredatorDeaths int
	Kills          int
	Moves          int
}

// Net returns the change in occupant count implied by the recorded events.
func (s TickStats) Net() int {
	return s.Births + s.PredatorBirths - s.Deaths - s.PredatorDeaths - s.Kills
}

// Add accumulates other into s.
func (s *TickStats) Add(other TickStats) {
	s.Births += other.Births
	s.PredatorBirths += other.PredatorBirths
	s.Deaths += other.Deaths
	s.PredatorDeaths += other.PredatorDeaths
	s.Kills += other.Kills
	s.Moves += other.Moves
}

// Advance computes the grid that follows prev. prev is left untouched.
func Advance(prev *Grid, rng *core.RNG) (*Grid, TickStats) {
	next := prev.Clone()
	stats := AdvanceInto(next, prev, rng)
	return next, stats
}

// AdvanceInto writes the grid that follows prev into next, which must have
// the same size. Every decision reads prev; every write lands in next.
// Predators act first so a hunted prey is caught wherever it sits in the
// scan, then the surviving prey act.
func AdvanceInto(next, prev *Grid, rng *core.RNG) TickStats {
	var stats TickStats
	if !next.cells.CopyFrom(prev.cells) {
		return stats
	}
	next.params = prev.params

	for y := 0; y < prev.size; y++ {
		for x := 0; x < prev.size; x++ {
			if Cell(prev.cells.At(x, y)) == Predator {
				stepPredator(prev, next, Point{x, y}, rng, &stats)
			}
		}
	}
	for y := 0; y < prev.size; y++ {
		for x := 0; x < prev.size; x++ {
			cell := Cell(prev.cells.At(x, y))
			if !cell.IsPrey() {
				continue
			}
			// Eaten by a predator this tick.
			if Cell(next.cells.At(x, y)) != cell {
				continue
			}
			stepPrey(prev, next, Point{x, y}, cell, rng, &stats)
		}
	}
	return stats
}

func stepPredator(prev, next *Grid, p Point, rng *core.RNG, stats *TickStats) {
	params := prev.params
	if rng.Chance(params.PredatorDeathChance) {
		next.Set(p.X, p.Y, Empty)
		stats.PredatorDeaths++
		return
	}

	target, hunting := PreyTarget(prev, p)
	if !hunting {
		target = prev.RandomAdjacentTarget(p.X, p.Y, rng)
	}
	if target == p {
		return
	}
	victim := next.at(target)
	if !next.MoveCell(Predator, p, target) {
		return
	}
	stats.Moves++
	if !victim.IsPrey() {
		return
	}
	stats.Kills++
	if rng.Chance(params.PredatorReproduceChance) {
		next.Set(p.X, p.Y, Predator)
		stats.PredatorBirths++
	}
}

func stepPrey(prev, next *Grid, p Point, cell Cell, rng *core.RNG, stats *TickStats) {
	params := prev.params
	if rng.Chance(params.DeathChance) {
		next.Set(p.X, p.Y, Empty)
		stats.Deaths++
		return
	}

	if _, paired := ReproductionPartner(prev, p); paired {
		if rng.Chance(params.ReproduceChance) {
			spawnOffspring(prev, next, p, rng, stats)
		}
		return
	}

	target := prev.RandomAdjacentTarget(p.X, p.Y, rng)
	if target == p || prev.at(target) != Empty {
		return
	}
	if next.MoveCell(cell, p, target) {
		stats.Moves++
	}
}

// spawnOffspring places a male or female on the first random neighbor of p
// that is free in both grids, giving up after ReproduceAttempts picks.
func spawnOffspring(prev, next *Grid, p Point, rng *core.RNG, stats *TickStats) {
	for i := 0; i < prev.params.ReproduceAttempts; i++ {
		target := prev.RandomAdjacentTarget(p.X, p.Y, rng)
		if target == p {
			return
		}
		if prev.at(target) != Empty || next.at(target) != Empty {
			continue
		}
		child := Male
		if rng.Bool() {
			child = Female
		}
		next.Set(target.X, target.Y, child)
		stats.Births++
		return
	}
}
