package solver

// RuleR4 is the transitive 1-2 pattern: a specialization of R3 expressed
// over cardinal-adjacent anchor/neighbor pairs.
func RuleR4(s Snapshot, anchor Coord) (Action, bool) {
	a, ok := anchorAt(s, anchor)
	if !ok {
		return Action{}, false
	}
	if !hasHiddenCardinalNeighbor(s, anchor) {
		return Action{}, false
	}

	for _, nCoord := range s.CardinalNeighbors(anchor) {
		if s.Cell(nCoord).State != Revealed {
			continue
		}
		n, ok := anchorAt(s, nCoord)
		if !ok {
			continue
		}

		direction := Coord{X: nCoord.X - anchor.X, Y: nCoord.Y - anchor.Y}

		switch {
		case matchesSafePattern(n, a):
			if cell, ok := directionalTile(direction, n.hidden); ok {
				return Action{Kind: RevealAction, Cell: cell}, true
			}
		case matchesBombPattern(n, a):
			if cell, ok := directionalTile(direction, n.hidden); ok {
				return Action{Kind: FlagAction, Cell: cell}, true
			}
		}
	}

	return Action{}, false
}

func hasHiddenCardinalNeighbor(s Snapshot, c Coord) bool {
	for _, n := range s.CardinalNeighbors(c) {
		if s.Cell(n).State == Hidden {
			return true
		}
	}
	return false
}

// matchesSafePattern: neighbor has 3 unknowns, anchor has 2, and both
// need the same number of remaining mines, 1 or 2.
func matchesSafePattern(neighbor, anchor anchorInfo) bool {
	rn, ra := neighbor.remainingMines(), anchor.remainingMines()
	return len(neighbor.hidden) == 3 &&
		len(anchor.hidden) == 2 &&
		rn == ra &&
		(rn == 1 || rn == 2)
}

// matchesBombPattern: neighbor has 3 unknowns and needs 2 mines, anchor
// needs exactly 1 and has 2 or 3 unknowns.
func matchesBombPattern(neighbor, anchor anchorInfo) bool {
	ra := anchor.remainingMines()
	return len(neighbor.hidden) == 3 &&
		neighbor.remainingMines() == 2 &&
		ra == 1 &&
		(len(anchor.hidden) == 2 || len(anchor.hidden) == 3)
}

// directionalTile picks the hidden cell, among possibilities, that lies
// farthest from the anchor along the cardinal axis of direction. All
// possibilities must share the coordinate perpendicular to that axis —
// i.e. lie on a common perpendicular line — otherwise the pattern does
// not apply and ok is false.
func directionalTile(direction Coord, possibilities []Coord) (Coord, bool) {
	var coordIndex int // 0 = compare X, 1 = compare Y
	var compareMax bool

	switch direction {
	case Coord{X: 0, Y: -1}: // neighbor is north of anchor
		coordIndex, compareMax = 1, false
	case Coord{X: -1, Y: 0}: // neighbor is west of anchor
		coordIndex, compareMax = 0, false
	case Coord{X: 1, Y: 0}: // neighbor is east of anchor
		coordIndex, compareMax = 0, true
	case Coord{X: 0, Y: 1}: // neighbor is south of anchor
		coordIndex, compareMax = 1, true
	default:
		return Coord{}, false
	}

	if len(possibilities) == 0 {
		return Coord{}, false
	}

	fixed := fixedCoord(possibilities[0], coordIndex)
	for _, p := range possibilities {
		if fixedCoord(p, coordIndex) != fixed {
			return Coord{}, false
		}
	}

	best := possibilities[0]
	for _, p := range possibilities[1:] {
		if compareMax == (varyingCoord(p, coordIndex) > varyingCoord(best, coordIndex)) {
			best = p
		}
	}
	return best, true
}

func varyingCoord(c Coord, coordIndex int) int {
	if coordIndex == 0 {
		return c.X
	}
	return c.Y
}

func fixedCoord(c Coord, coordIndex int) int {
	if coordIndex == 0 {
		return c.Y
	}
	return c.X
}
