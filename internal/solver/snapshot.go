// Package solver implements the deduction and probability engine: given a
// read-only board snapshot it decides the next move. It never mutates the
// board and performs no I/O.
package solver

// Coord is a zero-based board position, (0,0) is upper left.
type Coord struct {
	X, Y int
}

// CellState identifies which variant of CellView a cell holds.
type CellState int

const (
	// Hidden means the cell's contents are unknown to the engine.
	Hidden CellState = iota
	// Revealed means the cell shows an adjacent-mine count.
	Revealed
	// FlaggedState means the cell has been asserted as a mine.
	FlaggedState
)

// CellView is the engine's view of one cell: opaque for Hidden and
// FlaggedState, numeric for Revealed.
type CellView struct {
	State CellState
	Value int // adjacent-mine count, meaningful only when State == Revealed
}

// Snapshot is an immutable, read-only view of the board for one decision.
// Implementations must never mutate underlying board state and must treat
// Hidden cells as opaque — they must not leak mine identity.
type Snapshot interface {
	Width() int
	Height() int
	Cell(c Coord) CellView
	// Neighbors returns the up to 8 in-bounds neighbors of c.
	Neighbors(c Coord) []Coord
	// CardinalNeighbors returns the up to 4 in-bounds cardinal neighbors of c.
	CardinalNeighbors(c Coord) []Coord
	// TwoHopNeighbors returns in-bounds cells within two king-move hops of
	// c, excluding c itself and duplicates.
	TwoHopNeighbors(c Coord) []Coord
}

// GridSnapshot is the straightforward rectangular-grid Snapshot
// implementation: a dense slice of CellViews in row-major (y, x) order.
type GridSnapshot struct {
	width, height int
	cells         []CellView
}

// NewGridSnapshot builds a GridSnapshot from a width/height and a function
// supplying the view for each in-bounds coordinate. It is the engine's
// only supported construction path so callers cannot hand it a partially
// filled grid.
func NewGridSnapshot(width, height int, at func(c Coord) CellView) *GridSnapshot {
	cells := make([]CellView, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = at(Coord{X: x, Y: y})
		}
	}
	return &GridSnapshot{width: width, height: height, cells: cells}
}

func (g *GridSnapshot) Width() int  { return g.width }
func (g *GridSnapshot) Height() int { return g.height }

func (g *GridSnapshot) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the zero CellView (Hidden) for out-of-bounds coordinates.
func (g *GridSnapshot) Cell(c Coord) CellView {
	if !g.inBounds(c) {
		return CellView{State: Hidden}
	}
	return g.cells[c.Y*g.width+c.X]
}

func (g *GridSnapshot) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if g.inBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

func (g *GridSnapshot) CardinalNeighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, n := range [...]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
	} {
		if g.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func (g *GridSnapshot) TwoHopNeighbors(c Coord) []Coord {
	seen := map[Coord]bool{c: true}
	out := make([]Coord, 0, 24)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if !g.inBounds(n) || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
