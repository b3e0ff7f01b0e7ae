package predation

import (
	"fmt"

	"predprey/internal/core"
)

// World adapts a predation grid to the core.Sim contract. It keeps two grids
// and swaps them after every tick.
type World struct {
	cfg Config

	cur *Grid
	nxt *Grid

	tick   int
	last   TickStats
	totals TickStats

	rng *core.RNG
}

// NewWorld validates cfg and returns a world populated from cfg.Seed.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("predation: %w", err)
	}
	cur, err := NewEmpty(cfg.Size, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("predation: %w", err)
	}
	w := &World{cfg: cfg, cur: cur, nxt: cur.Clone()}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "predation" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Cells exposes the current grid for rendering.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Grid returns the current grid.
func (w *World) Grid() *Grid { return w.cur }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Tick returns the number of steps taken since the last reset.
func (w *World) Tick() int { return w.tick }

// LastStats returns the events recorded by the most recent step.
func (w *World) LastStats() TickStats { return w.last }

// Totals returns the events accumulated since the last reset.
func (w *World) Totals() TickStats { return w.totals }

// Census counts the cells of the current grid.
func (w *World) Census() Census { return w.cur.Census() }

// Extinct reports whether no occupants remain.
func (w *World) Extinct() bool { return w.cur.Census().Occupants() == 0 }

// Reset repopulates the grid. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.cur.populate(w.rng)
	w.tick = 0
	w.last = TickStats{}
	w.totals = TickStats{}
}

// Load replaces the current grid with a copy of g, keeping the RNG stream.
// g must match the world's size.
func (w *World) Load(g *Grid) error {
	if g == nil || g.size != w.cfg.Size {
		return fmt.Errorf("predation: load grid: %w", ErrInvalidSize)
	}
	w.cur = g.Clone()
	w.nxt = g.Clone()
	w.cfg.Params = g.params
	w.tick = 0
	w.last = TickStats{}
	w.totals = TickStats{}
	return nil
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.last = AdvanceInto(w.nxt, w.cur, w.rng)
	w.totals.Add(w.last)
	w.cur, w.nxt = w.nxt, w.cur
	w.tick++
}

// StatusLines summarises the run for status bars and HUDs.
func (w *World) StatusLines() []string {
	c := w.Census()
	s := w.last
	return []string{
		fmt.Sprintf("tick %d", w.tick),
		fmt.Sprintf("male %d  female %d  predator %d", c.Male, c.Female, c.Predator),
		fmt.Sprintf("births %d  predator births %d  kills %d  deaths %d", s.Births, s.PredatorBirths, s.Kills, s.Deaths+s.PredatorDeaths),
	}
}

func init() {
	core.Register("predation", func(cfg map[string]string) (core.Sim, error) {
		return NewWorld(FromMap(cfg))
	})
}
