package solver

// Constraint means "exactly Mines of Cells are mines." Cells is always
// non-empty; callers must discard constraints with no cells.
type Constraint struct {
	Cells []Coord
	Mines int
}

// cellSet returns Cells as a set, used by the grouper and pattern rules
// for subset/overlap comparisons.
func (c Constraint) cellSet() map[Coord]bool {
	set := make(map[Coord]bool, len(c.Cells))
	for _, cell := range c.Cells {
		set[cell] = true
	}
	return set
}

// ExtractConstraints produces one Constraint per revealed numbered cell:
// for a revealed cell c with value v, cells = hidden neighbors of c,
// mines = v - (flagged neighbor count). Cells with v == 0 or with no
// hidden neighbors yield nothing. Duplicate constraints (same cells and
// mine count, from distinct anchors) may appear; callers must tolerate
// them.
//
// Returns ErrIllegalPosition if any revealed cell's flagged-neighbor count
// exceeds its value — the snapshot cannot be a legal board.
func ExtractConstraints(s Snapshot) ([]Constraint, error) {
	var constraints []Constraint

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := Coord{X: x, Y: y}
			view := s.Cell(c)
			if view.State != Revealed || view.Value == 0 {
				continue
			}

			var hidden []Coord
			flagged := 0
			for _, n := range s.Neighbors(c) {
				switch s.Cell(n).State {
				case Hidden:
					hidden = append(hidden, n)
				case FlaggedState:
					flagged++
				}
			}

			mines := view.Value - flagged
			if mines < 0 {
				return nil, ErrIllegalPosition
			}
			if len(hidden) == 0 {
				continue
			}
			constraints = append(constraints, Constraint{Cells: hidden, Mines: mines})
		}
	}

	return constraints, nil
}
