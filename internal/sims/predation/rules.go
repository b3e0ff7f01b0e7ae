package predation

// PreyTarget returns the square a predator at p should attack: a
// neighboring female if there is one, otherwise a neighboring male.
func PreyTarget(g *Grid, p Point) (Point, bool) {
	neighbors := g.Neighbors(p.X, p.Y)
	if at, ok := FindNeighborMatching(neighbors, Female); ok {
		return at, true
	}
	return FindNeighborMatching(neighbors, Male)
}

// ReproductionPartner returns a neighboring mate for the cell at p: a male
// for a female, a female for a male. Empty cells and predators never pair.
func ReproductionPartner(g *Grid, p Point) (Point, bool) {
	var mate Cell
	switch g.at(p) {
	case Female:
		mate = Male
	case Male:
		mate = Female
	default:
		return Point{}, false
	}
	return FindNeighborMatching(g.Neighbors(p.X, p.Y), mate)
}
