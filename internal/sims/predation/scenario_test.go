package predation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRunScenarioEmptyWorld(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.SpawnChance = 0

	res, err := RunScenario(cfg, 50)
	if err != nil {
		t.Fatal(err)
	}
	if res.ExtinctStep != 0 || res.StepsSimulated != 0 {
		t.Fatalf("empty world should be extinct immediately, got %s", res)
	}
	if _, err := uuid.Parse(res.RunID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", res.RunID, err)
	}
	if res.Survived() {
		t.Fatal("an empty world did not survive")
	}
}

func TestRunScenarioPredatorsStarve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	cfg.Params.SpawnChance = 1
	cfg.Params.PredatorSpawnChance = 1
	cfg.Params.PredatorDeathChance = 1

	res, err := RunScenario(cfg, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Initial.Predator != 64 || res.PeakPredators != 64 {
		t.Fatalf("expected a full board of predators, got %s", res)
	}
	if res.ExtinctStep != 1 || res.PredatorExtinctStep != 1 || res.PreyExtinctStep != 0 {
		t.Fatalf("unexpected extinction ticks: %s", res)
	}
	if res.Totals.PredatorDeaths != 64 {
		t.Fatalf("expected 64 predator deaths, got %+v", res.Totals)
	}
}

func TestSweep(t *testing.T) {
	base := DefaultConfig()
	base.Size = 10
	base.Params.SpawnChance = 0.4

	var cfgs []Config
	for seed := int64(1); seed <= 4; seed++ {
		cfg := base
		cfg.Seed = seed
		cfgs = append(cfgs, cfg)
	}
	starving := base
	starving.Params.PredatorDeathChance = 1
	starving.Params.DeathChance = 1
	cfgs = append(cfgs, starving)

	results, err := Sweep(cfgs, 20, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(cfgs) {
		t.Fatalf("expected %d results, got %d", len(cfgs), len(results))
	}
	ids := map[string]bool{}
	for _, res := range results {
		if ids[res.RunID] {
			t.Fatalf("duplicate run id %s", res.RunID)
		}
		ids[res.RunID] = true
	}
	last := results[len(results)-1]
	if last.Params.DeathChance != 1 || last.ExtinctStep != 1 {
		t.Fatalf("certain-death run should sort last, got %s", last)
	}
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	bad := DefaultConfig()
	bad.Size = 0
	if _, err := Sweep([]Config{DefaultConfig(), bad}, 5, 2); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
