package solver

// anchorInfo is the per-anchor bookkeeping pattern rules share: a
// revealed numbered cell's value, its flagged-neighbor count, and its
// hidden neighbors in a fixed (Neighbors-order) iteration order.
type anchorInfo struct {
	coord   Coord
	value   int
	flagged int
	hidden  []Coord
}

// remainingMines is the number of mines still needed among the anchor's
// hidden neighbors to satisfy its constraint.
func (a anchorInfo) remainingMines() int {
	return a.value - a.flagged
}

func anchorAt(s Snapshot, c Coord) (anchorInfo, bool) {
	view := s.Cell(c)
	if view.State != Revealed {
		return anchorInfo{}, false
	}
	info := anchorInfo{coord: c, value: view.Value}
	for _, n := range s.Neighbors(c) {
		switch s.Cell(n).State {
		case Hidden:
			info.hidden = append(info.hidden, n)
		case FlaggedState:
			info.flagged++
		}
	}
	return info, true
}

// RuleR1 is the saturation rule: if the anchor's hidden-neighbor count
// equals its remaining mine count (and that count is positive), every
// hidden neighbor is a mine. Flags the first one in Neighbors order.
func RuleR1(s Snapshot, anchor Coord) (Action, bool) {
	info, ok := anchorAt(s, anchor)
	if !ok {
		return Action{}, false
	}
	remaining := info.remainingMines()
	if remaining <= 0 || len(info.hidden) != remaining {
		return Action{}, false
	}
	return Action{Kind: FlagAction, Cell: info.hidden[0]}, true
}

// RuleR2 is the completion rule: if the anchor's flagged-neighbor count
// equals its value, every hidden neighbor is safe. Reveals the first one
// in Neighbors order.
func RuleR2(s Snapshot, anchor Coord) (Action, bool) {
	info, ok := anchorAt(s, anchor)
	if !ok {
		return Action{}, false
	}
	if info.flagged != info.value || len(info.hidden) == 0 {
		return Action{}, false
	}
	return Action{Kind: RevealAction, Cell: info.hidden[0]}, true
}
