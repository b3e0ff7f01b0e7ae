package predation

import (
	"strconv"

	"predprey/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", w.cfg.Size),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Spawning",
			Params: []core.Parameter{
				floatParam("spawn_chance", "Spawn chance", params.SpawnChance),
				floatParam("predator_spawn_chance", "Predator spawn chance", params.PredatorSpawnChance),
			},
		},
		{
			Name: "Prey",
			Params: []core.Parameter{
				floatParam("death_chance", "Death chance", params.DeathChance),
				floatParam("reproduce_chance", "Reproduce chance", params.ReproduceChance),
				intParam("reproduce_attempts", "Reproduce attempts", params.ReproduceAttempts),
			},
		},
		{
			Name: "Predators",
			Params: []core.Parameter{
				floatParam("predator_death_chance", "Predator death chance", params.PredatorDeathChance),
				floatParam("predator_reproduce_chance", "Predator reproduce chance", params.PredatorReproduceChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
