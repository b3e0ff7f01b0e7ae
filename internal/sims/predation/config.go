package predation

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidSize reports a grid dimension below one.
	ErrInvalidSize = errors.New("grid size must be positive")
	// ErrInvalidProbability reports a chance outside [0,1].
	ErrInvalidProbability = errors.New("probability must be within [0,1]")
	// ErrInvalidAttempts reports a negative reproduction retry budget.
	ErrInvalidAttempts = errors.New("reproduce attempts must not be negative")
)

// Params holds the probabilities that drive spawning, movement and death.
type Params struct {
	// PredatorDeathChance is the per-tick chance of a predator dying.
	PredatorDeathChance float64
	// PredatorReproduceChance is the chance of a hunting predator leaving
	// offspring on the square it vacated.
	PredatorReproduceChance float64
	// DeathChance is the per-tick chance of a male or female dying.
	DeathChance float64
	// ReproduceChance is the chance of a male or female with a partner
	// producing offspring.
	ReproduceChance float64
	// SpawnChance is the chance of a cell starting occupied.
	SpawnChance float64
	// PredatorSpawnChance is the chance of an occupied starting cell
	// holding a predator.
	PredatorSpawnChance float64

	// ReproduceAttempts bounds the random picks made when placing offspring.
	ReproduceAttempts int
}

// Config controls the predation simulation dimensions and parameters.
type Config struct {
	Size int
	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 12,
		Seed: 1337,
		Params: Params{
			PredatorDeathChance:     0.1,
			PredatorReproduceChance: 0.1,
			DeathChance:             0,
			ReproduceChance:         0.1,
			SpawnChance:             0.1,
			PredatorSpawnChance:     0.1,
			ReproduceAttempts:       8,
		},
	}
}

// Validate rejects configurations that cannot produce a grid.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	return c.Params.Validate()
}

// Validate checks every probability and the retry budget.
func (p Params) Validate() error {
	for _, chance := range []struct {
		key   string
		value float64
	}{
		{"predator_death_chance", p.PredatorDeathChance},
		{"predator_reproduce_chance", p.PredatorReproduceChance},
		{"death_chance", p.DeathChance},
		{"reproduce_chance", p.ReproduceChance},
		{"spawn_chance", p.SpawnChance},
		{"predator_spawn_chance", p.PredatorSpawnChance},
	} {
		if !validProbability(chance.value) {
			return fmt.Errorf("%s=%v: %w", chance.key, chance.value, ErrInvalidProbability)
		}
	}
	if p.ReproduceAttempts < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAttempts, p.ReproduceAttempts)
	}
	return nil
}

func validProbability(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall out of range keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for key, dst := range c.Params.chances() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validProbability(parsed) {
			*dst = parsed
		}
	}
	if v, ok := cfg["reproduce_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ReproduceAttempts = parsed
		}
	}
	return c
}

func (p *Params) chances() map[string]*float64 {
	return map[string]*float64{
		"predator_death_chance":     &p.PredatorDeathChance,
		"predator_reproduce_chance": &p.PredatorReproduceChance,
		"death_chance":              &p.DeathChance,
		"reproduce_chance":          &p.ReproduceChance,
		"spawn_chance":              &p.SpawnChance,
		"predator_spawn_chance":     &p.PredatorSpawnChance,
	}
}

// Bind attaches the configuration to the provided FlagSet. Flag names match
// the FromMap keys.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid size (cells per side)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population and tick randomness")
	fs.Float64Var(&c.Params.PredatorDeathChance, "predator_death_chance", c.Params.PredatorDeathChance, "per-tick predator death chance")
	fs.Float64Var(&c.Params.PredatorReproduceChance, "predator_reproduce_chance", c.Params.PredatorReproduceChance, "predator reproduction chance after hunting")
	fs.Float64Var(&c.Params.DeathChance, "death_chance", c.Params.DeathChance, "per-tick male/female death chance")
	fs.Float64Var(&c.Params.ReproduceChance, "reproduce_chance", c.Params.ReproduceChance, "male/female reproduction chance when paired")
	fs.Float64Var(&c.Params.SpawnChance, "spawn_chance", c.Params.SpawnChance, "initial occupied-cell chance")
	fs.Float64Var(&c.Params.PredatorSpawnChance, "predator_spawn_chance", c.Params.PredatorSpawnChance, "chance an initial occupant is a predator")
	fs.IntVar(&c.Params.ReproduceAttempts, "reproduce_attempts", c.Params.ReproduceAttempts, "random picks when placing offspring")
}
