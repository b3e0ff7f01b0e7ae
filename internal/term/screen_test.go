package term

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"predprey/internal/core"

	"github.com/gdamore/tcell/v2"
)

type fakeSim struct {
	cells []uint8
	steps int
}

func (f *fakeSim) Name() string    { return "fake" }
func (f *fakeSim) Size() core.Size { return core.Size{W: 2, H: 1} }
func (f *fakeSim) Reset(int64)     {}
func (f *fakeSim) Step()           { f.steps++ }
func (f *fakeSim) Cells() []uint8  { return f.cells }
func (f *fakeSim) Palette() []color.RGBA {
	return []color.RGBA{{R: 10, G: 20, B: 30, A: 255}, {R: 200, G: 0, B: 0, A: 255}}
}
func (f *fakeSim) StatusLines() []string { return []string{"hello"} }

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(sim.Fini)
	return NewWithScreen(sim), sim
}

func TestDrawUsesPalette(t *testing.T) {
	screen, raw := newTestScreen(t)
	sim := &fakeSim{cells: []uint8{0, 1}}

	screen.Draw(sim)

	check := func(x int, want tcell.Color) {
		t.Helper()
		_, _, style, _ := raw.GetContent(x, 0)
		_, bg, _ := style.Decompose()
		if bg != want {
			t.Fatalf("column %d background %v, expected %v", x, bg, want)
		}
	}
	first := tcell.NewRGBColor(10, 20, 30)
	second := tcell.NewRGBColor(200, 0, 0)
	check(0, first)
	check(1, first)
	check(2, second)
	check(3, second)

	// Status text starts one row below the grid.
	if r, _, _, _ := raw.GetContent(0, 2); r != 'h' {
		t.Fatalf("expected status text at row 2, found %q", r)
	}
}

func TestRunStopsAfterRequestedTicks(t *testing.T) {
	screen, _ := newTestScreen(t)
	sim := &fakeSim{cells: []uint8{0, 1}}

	err := screen.Run(context.Background(), sim, Options{
		Delay: time.Millisecond,
		Stop:  func(tick int) bool { return tick >= 3 },
	})
	if err != nil {
		t.Fatal(err)
	}
	if sim.steps != 3 {
		t.Fatalf("expected 3 steps, got %d", sim.steps)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen, raw := newTestScreen(t)
	sim := &fakeSim{cells: []uint8{0, 0}}

	raw.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	done := make(chan error, 1)
	go func() {
		done <- screen.Run(context.Background(), sim, Options{Delay: time.Hour})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("quit returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunHonoursContext(t *testing.T) {
	screen, _ := newTestScreen(t)
	sim := &fakeSim{cells: []uint8{0, 0}}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := screen.Run(ctx, sim, Options{Delay: time.Hour})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
