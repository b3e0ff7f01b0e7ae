package render

import "image/color"

// BinaryPalette builds a two-entry palette for sims without their own colors:
// zero cells use off, everything else on.
func BinaryPalette(on, off color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// FillRGBA converts cell values into RGBA pixels using a palette. Values past
// the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(buf) < len(cells)*4 {
		return
	}
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
