// Package term renders simulations to a terminal and drives their tick loop.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"predprey/internal/core"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 10 * time.Millisecond

type paletteProvider interface {
	Palette() []color.RGBA
}

// Options control a terminal run.
type Options struct {
	// Delay is the pause between ticks.
	Delay time.Duration
	// Stop ends the run after any tick for which it returns true.
	Stop func(tick int) bool
}

// Screen draws a simulation as a grid of two-column colored blocks with
// status text underneath and parameters to the right.
type Screen struct {
	screen tcell.Screen
	base   tcell.Style
}

// New initialises the controlling terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an already initialised tcell screen.
func NewWithScreen(s tcell.Screen) *Screen {
	base := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	s.SetStyle(base)
	s.Clear()
	return &Screen{screen: s, base: base}
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// Draw paints the current state of sim.
func (s *Screen) Draw(sim core.Sim) {
	s.screen.Clear()

	size := sim.Size()
	styles := cellStyles(sim)
	cells := sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			if idx >= len(cells) {
				continue
			}
			v := int(cells[idx])
			if v >= len(styles) {
				v = len(styles) - 1
			}
			s.screen.SetContent(x*2, y, ' ', nil, styles[v])
			s.screen.SetContent(x*2+1, y, ' ', nil, styles[v])
		}
	}

	row := size.H + 1
	if status, ok := sim.(core.StatusProvider); ok {
		for _, line := range status.StatusLines() {
			s.drawText(0, row, line)
			row++
		}
	}
	s.drawText(0, row, "q quit  space pause  n step")

	if params, ok := sim.(core.ParameterProvider); ok {
		col := size.W*2 + 2
		for i, line := range params.Parameters().Lines() {
			s.drawText(col, i, line)
		}
	}
	s.screen.Show()
}

func (s *Screen) drawText(x, y int, text string) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, s.base)
		x++
	}
}

func cellStyles(sim core.Sim) []tcell.Style {
	if p, ok := sim.(paletteProvider); ok && len(p.Palette()) > 0 {
		palette := p.Palette()
		styles := make([]tcell.Style, len(palette))
		for i, c := range palette {
			styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
		return styles
	}
	return []tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorBlack),
		tcell.StyleDefault.Background(tcell.ColorWhite),
	}
}

// Run steps sim once per Delay and redraws after every tick until the user
// quits, opts.Stop returns true, or ctx is done. Space pauses and n advances a
// single tick.
func (s *Screen) Run(ctx context.Context, sim core.Sim, opts Options) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)
	defer close(quit)

	step := core.NewFixedInterval(opts.Delay)
	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	paused, once := false, false
	tick := 0
	s.Draw(sim)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					once = true
				}
			case *tcell.EventResize:
				s.screen.Sync()
				s.Draw(sim)
			}
		case <-frame.C:
			due := step.ShouldStep()
			if !once && (paused || !due) {
				continue
			}
			once = false
			sim.Step()
			tick++
			s.Draw(sim)
			if opts.Stop != nil && opts.Stop(tick) {
				return nil
			}
		}
	}
}
