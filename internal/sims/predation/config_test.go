package predation

import (
	"flag"
	"testing"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":                      "40",
		"seed":                      "-5",
		"predator_death_chance":     "0.25",
		"predator_reproduce_chance": "1",
		"death_chance":              "0.01",
		"reproduce_chance":          "0.75",
		"spawn_chance":              "0.3",
		"predator_spawn_chance":     "0",
		"reproduce_attempts":        "3",
	})

	want := Config{
		Size: 40,
		Seed: -5,
		Params: Params{
			PredatorDeathChance:     0.25,
			PredatorReproduceChance: 1,
			DeathChance:             0.01,
			ReproduceChance:         0.75,
			SpawnChance:             0.3,
			PredatorSpawnChance:     0,
			ReproduceAttempts:       3,
		},
	}
	if cfg != want {
		t.Fatalf("FromMap = %+v, expected %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("parsed config invalid: %v", err)
	}
}

func TestFromMapKeepsDefaultsForBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":               "0",
		"seed":               "abc",
		"spawn_chance":       "1.5",
		"death_chance":       "-0.2",
		"reproduce_chance":   "NaN",
		"reproduce_attempts": "-4",
	})
	if cfg != DefaultConfig() {
		t.Fatalf("invalid values overrode defaults: %+v", cfg)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "9", "-spawn_chance", "0.9", "-predator_reproduce_chance", "0.5"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 9 || cfg.Params.SpawnChance != 0.9 || cfg.Params.PredatorReproduceChance != 0.5 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Params.ReproduceAttempts != DefaultConfig().Params.ReproduceAttempts {
		t.Fatal("unset flag changed its default")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}
