package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"predprey/internal/sims/predation"
	"predprey/internal/term"
)

func main() {
	cfg := predation.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	mode := flag.String("mode", "term", "renderer: term (full-screen terminal) or text (glyph rows on stdout)")
	delay := flag.Duration("delay", 100*time.Millisecond, "pause between ticks")
	ticks := flag.Int("ticks", 0, "stop after this many ticks (0 runs until quit)")
	stopExtinct := flag.Bool("stop-extinct", false, "stop once no occupants remain")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else if *mode == "term" {
		log.SetOutput(io.Discard)
	}

	world, err := predation.NewWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range world.Parameters().Lines() {
		log.Print(line)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := func(tick int) bool {
		if *ticks > 0 && tick >= *ticks {
			return true
		}
		return *stopExtinct && world.Extinct()
	}

	switch *mode {
	case "term":
		err = runTerminal(ctx, world, *delay, done)
	case "text":
		err = runText(ctx, world, *delay, done)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	c := world.Census()
	log.Printf("stopped at tick %d: male=%d female=%d predator=%d", world.Tick(), c.Male, c.Female, c.Predator)
}

func runTerminal(ctx context.Context, world *predation.World, delay time.Duration, done func(int) bool) error {
	screen, err := term.New()
	if err != nil {
		return err
	}
	defer screen.Close()
	return screen.Run(ctx, world, term.Options{Delay: delay, Stop: done})
}

func runText(ctx context.Context, world *predation.World, delay time.Duration, done func(int) bool) error {
	if err := predation.WriteText(os.Stdout, world.Grid()); err != nil {
		return err
	}
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		world.Step()
		if err := predation.WriteText(os.Stdout, world.Grid()); err != nil {
			return err
		}
		if done(world.Tick()) {
			return nil
		}
	}
}
