package predation

import "predprey/internal/core"

// Grid is a square board of cells plus the parameters that drive it.
// Parameters are fixed for the lifetime of the grid.
type Grid struct {
	cells  *core.ByteGrid
	size   int
	params Params
}

// New builds a size×size grid and populates it randomly: each cell is
// occupied with SpawnChance, an occupant is a predator with
// PredatorSpawnChance, and otherwise a male or female with equal odds.
func New(size int, params Params, rng *core.RNG) (*Grid, error) {
	g, err := NewEmpty(size, params)
	if err != nil {
		return nil, err
	}
	g.populate(rng)
	return g, nil
}

// NewEmpty builds a size×size grid with every cell Empty.
func NewEmpty(size int, params Params) (*Grid, error) {
	cfg := Config{Size: size, Params: params}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Grid{cells: core.NewByteGrid(size, size), size: size, params: params}, nil
}

func (g *Grid) populate(rng *core.RNG) {
	cells := g.cells.Cells()
	for i := range cells {
		cell := Empty
		if rng.Chance(g.params.SpawnChance) {
			switch {
			case rng.Chance(g.params.PredatorSpawnChance):
				cell = Predator
			case rng.Bool():
				cell = Male
			default:
				cell = Female
			}
		}
		cells[i] = uint8(cell)
	}
}

// Size returns the number of cells per side.
func (g *Grid) Size() int { return g.size }

// Params returns the grid's parameters by value.
func (g *Grid) Params() Params { return g.params }

// Cells exposes the row-major backing slice for renderers. Callers must
// treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Rows returns a copy of the board as a 2-D slice indexed [y][x].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for y := range rows {
		row := make([]Cell, g.size)
		for x := range row {
			row[x] = Cell(g.cells.At(x, y))
		}
		rows[y] = row
	}
	return rows
}

// Get returns the cell at (x, y). The boolean is false outside the grid.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.cells.InBounds(x, y) {
		return Empty, false
	}
	return Cell(g.cells.At(x, y)), true
}

// Set overwrites the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, cell Cell) {
	if !g.cells.InBounds(x, y) {
		return
	}
	g.cells.SetAt(x, y, uint8(cell))
}

func (g *Grid) at(p Point) Cell {
	c, _ := g.Get(p.X, p.Y)
	return c
}

// MoveCell relocates cell from one square to another. The move is refused
// when the destination holds a predator, or when a non-predator would land
// on a male or female. On success the origin becomes Empty.
func (g *Grid) MoveCell(cell Cell, from, to Point) bool {
	if !g.cells.InBounds(from.X, from.Y) || !g.cells.InBounds(to.X, to.Y) {
		return false
	}
	dst := Cell(g.cells.At(to.X, to.Y))
	if dst == Predator {
		return false
	}
	if cell != Predator && dst.IsPrey() {
		return false
	}
	g.cells.SetAt(from.X, from.Y, uint8(Empty))
	g.cells.SetAt(to.X, to.Y, uint8(cell))
	return true
}

// Neighbors lists the up to eight cells around (x, y) in row-major order.
// The neighborhood is clamped at the edges: corners have three neighbors and
// other edge cells five. Out-of-range centres have none.
func (g *Grid) Neighbors(x, y int) []Neighbor {
	if !g.cells.InBounds(x, y) {
		return nil
	}
	x0, y0, x1, y1 := g.cells.Window(x, y)
	out := make([]Neighbor, 0, 8)
	for ny := y0; ny < y1; ny++ {
		for nx := x0; nx < x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			out = append(out, Neighbor{At: Point{nx, ny}, Cell: Cell(g.cells.At(nx, ny))})
		}
	}
	return out
}

// RandomAdjacentTarget picks one of the neighbors of (x, y) uniformly. It
// returns (x, y) itself only when there is nothing to pick from.
func (g *Grid) RandomAdjacentTarget(x, y int, rng *core.RNG) Point {
	if !g.cells.InBounds(x, y) {
		return Point{x, y}
	}
	x0, y0, x1, y1 := g.cells.Window(x, y)
	k := rng.IntN((x1-x0)*(y1-y0) - 1)
	for ny := y0; ny < y1; ny++ {
		for nx := x0; nx < x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if k == 0 {
				return Point{nx, ny}
			}
			k--
		}
	}
	return Point{x, y}
}

// FindNeighborMatching returns the first neighbor in list order holding target.
func FindNeighborMatching(neighbors []Neighbor, target Cell) (Point, bool) {
	for _, n := range neighbors {
		if n.Cell == target {
			return n.At, true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: g.cells.Clone(), size: g.size, params: g.params}
}

// Census counts cells by state.
func (g *Grid) Census() Census {
	var c Census
	for _, v := range g.cells.Cells() {
		switch Cell(v) {
		case Male:
			c.Male++
		case Female:
			c.Female++
		case Predator:
			c.Predator++
		default:
			c.Empty++
		}
	}
	return c
}
