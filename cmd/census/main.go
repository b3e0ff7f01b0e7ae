package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"predprey/internal/sims/predation"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	base := predation.DefaultConfig()
	base.Size = 48
	base.Params.SpawnChance = 0.3
	base.Bind(flag.CommandLine)

	steps := flag.Int("steps", 500, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds to run per parameter set, starting from -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "results to print")
	var reproduce, predatorDeath, predatorReproduce floatList
	flag.Var(&reproduce, "sweep_reproduce", "reproduce_chance values to sweep (comma separated)")
	flag.Var(&predatorDeath, "sweep_predator_death", "predator_death_chance values to sweep (comma separated)")
	flag.Var(&predatorReproduce, "sweep_predator_reproduce", "predator_reproduce_chance values to sweep (comma separated)")
	flag.Parse()

	if len(reproduce) == 0 {
		reproduce = floatList{0.05, 0.1, 0.2}
	}
	if len(predatorDeath) == 0 {
		predatorDeath = floatList{0.02, 0.05, 0.1}
	}
	if len(predatorReproduce) == 0 {
		predatorReproduce = floatList{0.05, 0.1, 0.3}
	}

	var cfgs []predation.Config
	for _, r := range reproduce {
		for _, d := range predatorDeath {
			for _, pr := range predatorReproduce {
				for s := 0; s < *seeds; s++ {
					cfg := base
					cfg.Seed = base.Seed + int64(s)
					cfg.Params.ReproduceChance = r
					cfg.Params.PredatorDeathChance = d
					cfg.Params.PredatorReproduceChance = pr
					cfgs = append(cfgs, cfg)
				}
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d grid)\n", len(cfgs), *workers, *steps, base.Size, base.Size)

	start := time.Now()
	results, err := predation.Sweep(cfgs, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	survivors := 0
	for _, res := range results {
		if res.Survived() {
			survivors++
		}
	}

	fmt.Printf("\n%d/%d scenarios kept both populations alive (elapsed %s)\n", survivors, len(results), elapsed.Round(time.Millisecond))
	fmt.Printf("Top %d results:\n", min(*top, len(results)))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) reproduce=%.3f predDeath=%.3f predReproduce=%.3f %s\n",
			i+1, res.Params.ReproduceChance, res.Params.PredatorDeathChance, res.Params.PredatorReproduceChance, res)
	}
}
