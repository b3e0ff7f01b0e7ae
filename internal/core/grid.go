package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). Callers must check InBounds first.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// SetAt stores v at (x, y). Callers must check InBounds first.
func (g *ByteGrid) SetAt(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Window returns the half-open bounds [x0,x1)×[y0,y1) of the 3×3 block
// centred on (x, y), clamped to the grid. Edges never wrap.
func (g *ByteGrid) Window(x, y int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x-1, 0), max(y-1, 0)
	x1, y1 = min(x+2, g.W), min(y+2, g.H)
	return x0, y0, x1, y1
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &ByteGrid{W: g.W, H: g.H, data: data}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions; mismatched grids are left untouched.
func (g *ByteGrid) CopyFrom(src *ByteGrid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}
