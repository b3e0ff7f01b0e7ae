package predation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ScenarioResult captures population telemetry from a headless run.
type ScenarioResult struct {
	// RunID uniquely identifies the run in sweep output.
	RunID string
	Seed  int64

	Params Params

	// StepsSimulated reports how many ticks were executed. Runs stop early
	// once no occupants remain.
	StepsSimulated int
	// ExtinctStep is the tick at which every occupant was gone, or -1.
	ExtinctStep int
	// PredatorExtinctStep is the first tick with no predators, or -1.
	PredatorExtinctStep int
	// PreyExtinctStep is the first tick with no males or females, or -1.
	PreyExtinctStep int

	Initial Census
	Final   Census

	PeakPredators int
	PeakPrey      int

	Totals TickStats
}

// Survived reports whether both predators and prey outlived the run.
func (r ScenarioResult) Survived() bool {
	return r.PredatorExtinctStep < 0 && r.PreyExtinctStep < 0
}

func (r ScenarioResult) String() string {
	return fmt.Sprintf("run=%s seed=%d steps=%d final[m=%d f=%d p=%d] peak[prey=%d pred=%d] extinct[prey=%d pred=%d]",
		r.RunID, r.Seed, r.StepsSimulated, r.Final.Male, r.Final.Female, r.Final.Predator,
		r.PeakPrey, r.PeakPredators, r.PreyExtinctStep, r.PredatorExtinctStep)
}

// RunScenario builds a world from cfg and advances it for up to steps ticks.
func RunScenario(cfg Config, steps int) (ScenarioResult, error) {
	world, err := NewWorld(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}

	initial := world.Census()
	res := ScenarioResult{
		RunID:               uuid.NewString(),
		Seed:                cfg.Seed,
		Params:              cfg.Params,
		ExtinctStep:         -1,
		PredatorExtinctStep: -1,
		PreyExtinctStep:     -1,
		Initial:             initial,
		PeakPredators:       initial.Predator,
		PeakPrey:            initial.Prey(),
	}
	res.observe(initial, 0)

	for step := 1; step <= steps && res.ExtinctStep < 0; step++ {
		world.Step()
		res.StepsSimulated = step
		res.observe(world.Census(), step)
	}

	res.Final = world.Census()
	res.Totals = world.Totals()
	return res, nil
}

func (r *ScenarioResult) observe(c Census, step int) {
	r.PeakPredators = max(r.PeakPredators, c.Predator)
	r.PeakPrey = max(r.PeakPrey, c.Prey())
	if c.Predator == 0 && r.PredatorExtinctStep < 0 {
		r.PredatorExtinctStep = step
	}
	if c.Prey() == 0 && r.PreyExtinctStep < 0 {
		r.PreyExtinctStep = step
	}
	if c.Occupants() == 0 && r.ExtinctStep < 0 {
		r.ExtinctStep = step
	}
}

// Sweep runs every config for the requested number of steps using a pool of
// workers and returns the results ordered by longevity: surviving runs first,
// then by the later of the two extinction ticks.
func Sweep(cfgs []Config, steps, workers int) ([]ScenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}

	type outcome struct {
		res ScenarioResult
		err error
	}

	jobs := make(chan Config)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				res, err := RunScenario(cfg, steps)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range cfgs {
			jobs <- cfg
		}
		close(jobs)
	}()

	var all []ScenarioResult
	var firstErr error
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
			}
			continue
		}
		all = append(all, out.res)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Survived() != all[j].Survived() {
			return all[i].Survived()
		}
		return longevity(all[i]) > longevity(all[j])
	})
	return all, nil
}

func longevity(r ScenarioResult) int {
	if r.Survived() {
		return r.StepsSimulated
	}
	last := r.StepsSimulated
	if r.PredatorExtinctStep >= 0 && r.PreyExtinctStep >= 0 {
		last = max(r.PredatorExtinctStep, r.PreyExtinctStep)
	}
	return last
}
