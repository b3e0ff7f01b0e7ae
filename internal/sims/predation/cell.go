package predation

// Cell is the occupant state of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	Male
	Female
	Predator
)

// IsOccupant reports whether the cell holds a live male, female or predator.
func (c Cell) IsOccupant() bool { return c == Male || c == Female || c == Predator }

// IsPrey reports whether the cell holds a male or female.
func (c Cell) IsPrey() bool { return c == Male || c == Female }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Male:
		return "male"
	case Female:
		return "female"
	case Predator:
		return "predator"
	default:
		return "invalid"
	}
}

// Point addresses a grid cell.
type Point struct {
	X, Y int
}

// Neighbor pairs a neighboring coordinate with the cell found there.
type Neighbor struct {
	At   Point
	Cell Cell
}

// Census counts cells by state.
type Census struct {
	Empty    int
	Male     int
	Female   int
	Predator int
}

// Occupants returns the number of live cells.
func (c Census) Occupants() int { return c.Male + c.Female + c.Predator }

// Prey returns the number of males and females.
func (c Census) Prey() int { return c.Male + c.Female }
