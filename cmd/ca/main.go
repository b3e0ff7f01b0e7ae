//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"predprey/internal/app"
	"predprey/internal/core"
	_ "predprey/internal/sims/predation"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	size := flag.Int("size", 32, "grid size (cells per side)")
	flag.Parse()

	sim, err := core.Build(cfg.Sim, map[string]string{
		"size": strconv.Itoa(*size),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("predprey: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
