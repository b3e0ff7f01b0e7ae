package predation

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"predprey/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 32
	cfg.Seed = 99
	cfg.Params.SpawnChance = 0.5

	world, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := slices.Clone(world.Cells())

	world.Step()
	world.Step()
	if world.Tick() != 2 {
		t.Fatalf("expected tick 2, got %d", world.Tick())
	}

	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Tick() != 0 || world.Totals() != (TickStats{}) {
		t.Fatal("Reset did not clear run counters")
	}

	world.Reset(777)
	seeded := slices.Clone(world.Cells())
	world.Reset(777)
	if !slices.Equal(seeded, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different populations")
	}
}

func TestStepDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 20
	cfg.Params.SpawnChance = 0.4

	a, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 15; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("worlds diverged at tick %d", i+1)
		}
	}
}

func TestStepTracksStats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Params.SpawnChance = 0.6
	cfg.Params.ReproduceChance = 0.5

	world, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	start := world.Census().Occupants()
	for i := 0; i < 30; i++ {
		before := world.Census().Occupants()
		world.Step()
		if got := world.Census().Occupants() - before; got != world.LastStats().Net() {
			t.Fatalf("tick %d: occupants changed by %d, stats %+v", world.Tick(), got, world.LastStats())
		}
	}
	if got := world.Census().Occupants() - start; got != world.Totals().Net() {
		t.Fatalf("occupants changed by %d over the run, totals %+v", got, world.Totals())
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	if _, err := NewWorld(cfg); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Params.ReproduceChance = 2
	if _, err := NewWorld(cfg); !errors.Is(err, ErrInvalidProbability) {
		t.Fatalf("expected ErrInvalidProbability, got %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 3
	world, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}

	g := mustEmpty(t, 3, Params{PredatorReproduceChance: 1})
	g.Set(1, 1, Predator)
	g.Set(0, 1, Female)
	if err := world.Load(g); err != nil {
		t.Fatal(err)
	}
	g.Set(2, 2, Male)
	if c, _ := world.Grid().Get(2, 2); c != Empty {
		t.Fatal("Load kept a reference to the caller's grid")
	}

	world.Step()
	if c, _ := world.Grid().Get(0, 1); c != Predator {
		t.Fatalf("(0,1) holds %v after one tick, expected predator", c)
	}
	if c, _ := world.Grid().Get(1, 1); c != Predator {
		t.Fatalf("(1,1) holds %v after one tick, expected offspring", c)
	}
	if c := world.Census(); c.Female != 0 || c.Predator != 2 {
		t.Fatalf("census %+v after one tick, expected the female eaten", c)
	}
	if stats := world.LastStats(); stats.Kills != 1 || stats.PredatorBirths != 1 {
		t.Fatalf("stats %+v, expected one kill and one predator birth", stats)
	}

	if err := world.Load(mustEmpty(t, 4, Params{})); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected size mismatch error, got %v", err)
	}
}

func TestExtinction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 6
	cfg.Params.SpawnChance = 0
	world, err := NewWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !world.Extinct() {
		t.Fatal("world without occupants should report extinction")
	}
}

func TestRegistryBuildsPredation(t *testing.T) {
	sim, err := core.Build("predation", map[string]string{"size": "7", "seed": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Size(); got.W != 7 || got.H != 7 {
		t.Fatalf("expected 7x7, got %+v", got)
	}
	if len(sim.Cells()) != 49 {
		t.Fatalf("expected 49 cells, got %d", len(sim.Cells()))
	}
	if !slices.Contains(core.Names(), "predation") {
		t.Fatalf("predation missing from %v", core.Names())
	}
}

func TestStatusAndParameters(t *testing.T) {
	world, err := NewWorld(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	world.Step()

	lines := world.StatusLines()
	if len(lines) != 3 || lines[0] != "tick 1" {
		t.Fatalf("unexpected status lines %q", lines)
	}
	c := world.Census()
	if !strings.Contains(lines[1], "predator "+strconv.Itoa(c.Predator)) {
		t.Fatalf("status %q missing predator count %d", lines[1], c.Predator)
	}

	snap := world.Parameters()
	for key, want := range map[string]string{
		"size":                  "12",
		"seed":                  "1337",
		"predator_death_chance": "0.1",
		"reproduce_attempts":    "8",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %s = %+v, expected %s", key, p, want)
		}
	}
}
