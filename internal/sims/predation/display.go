package predation

import (
	"bufio"
	"image/color"
	"io"
)

var glyphs = [...]string{
	Empty:    "\u2b1c\ufe0f",
	Male:     "🟦",
	Female:   "🟥",
	Predator: "\u2b1b\ufe0f",
}

// Glyph returns the console symbol for a cell.
func Glyph(c Cell) string {
	if int(c) < len(glyphs) {
		return glyphs[c]
	}
	return "?"
}

// WriteText prints the grid one row per line, preceded by blank lines so
// successive frames are visually separated on a scrolling console.
func WriteText(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\n\n\n\n")
	cells := g.Cells()
	for y := 0; y < g.size; y++ {
		for _, v := range cells[y*g.size : (y+1)*g.size] {
			bw.WriteString(Glyph(Cell(v)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

var predationPalette = []color.RGBA{
	Empty:    {R: 235, G: 235, B: 235, A: 255},
	Male:     {R: 40, G: 110, B: 220, A: 255},
	Female:   {R: 215, G: 45, B: 45, A: 255},
	Predator: {R: 20, G: 20, B: 20, A: 255},
}

// Palette exposes the colors used for rendering the world, indexed by Cell.
func (w *World) Palette() []color.RGBA {
	return predationPalette
}
