package solver

// RuleR3 is the subset/overlap subtraction rule. For anchor a it examines
// every other numbered cell b within two hops whose own constraint is
// nonempty with a positive remaining-mine count, and applies (in order)
// subset-mines, subset-safe, and overlap deduction.
func RuleR3(s Snapshot, anchor Coord) (Action, bool) {
	a, ok := anchorAt(s, anchor)
	if !ok || len(a.hidden) == 0 || a.remainingMines() <= 0 {
		return Action{}, false
	}

	for _, bCoord := range s.TwoHopNeighbors(anchor) {
		b, ok := anchorAt(s, bCoord)
		if !ok || len(b.hidden) == 0 || b.remainingMines() <= 0 {
			continue
		}
		if action, ok := subsetMinesOrSafe(a, b); ok {
			return action, true
		}
		if action, ok := subsetMinesOrSafe(b, a); ok {
			return action, true
		}
		if action, ok := overlapDeduction(a, b); ok {
			return action, true
		}
	}

	return Action{}, false
}

// subsetMinesOrSafe checks whether b's hidden set is a (non-strict)
// subset of a's, and if so whether the difference is provably mines
// (subset-mines) or provably safe (subset-safe).
func subsetMinesOrSafe(a, b anchorInfo) (Action, bool) {
	bSet := toSet(b.hidden)
	if !isSubset(bSet, toSet(a.hidden)) {
		return Action{}, false
	}

	diff := difference(a.hidden, bSet)
	if len(diff) == 0 {
		return Action{}, false
	}

	ka, kb := a.remainingMines(), b.remainingMines()
	if ka-kb == len(diff) {
		return Action{Kind: FlagAction, Cell: diff[0]}, true
	}
	if ka == kb {
		return Action{Kind: RevealAction, Cell: diff[0]}, true
	}
	return Action{}, false
}

// overlapDeduction handles the case where neither hidden set is a subset
// of the other but each difference is exactly one cell and the sets
// overlap.
func overlapDeduction(a, b anchorInfo) (Action, bool) {
	aSet, bSet := toSet(a.hidden), toSet(b.hidden)

	intersection := intersect(aSet, bSet)
	if len(intersection) == 0 {
		return Action{}, false
	}

	diffA := difference(a.hidden, bSet)
	diffB := difference(b.hidden, aSet)
	if len(diffA) != 1 || len(diffB) != 1 {
		return Action{}, false
	}
	alpha, beta := diffA[0], diffB[0]
	ka, kb := a.remainingMines(), b.remainingMines()

	maxI := min3(len(intersection), ka, kb)
	if ka > maxI {
		return Action{Kind: FlagAction, Cell: alpha}, true
	}
	if kb > maxI {
		return Action{Kind: FlagAction, Cell: beta}, true
	}

	minI := max3(0, ka-1, kb-1)
	if ka == minI {
		return Action{Kind: RevealAction, Cell: alpha}, true
	}
	if kb == minI {
		return Action{Kind: RevealAction, Cell: beta}, true
	}

	return Action{}, false
}

func toSet(cells []Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func isSubset(sub, super map[Coord]bool) bool {
	for c := range sub {
		if !super[c] {
			return false
		}
	}
	return true
}

// difference returns the cells of ordered (in ordered's original order)
// that are not present in other.
func difference(ordered []Coord, other map[Coord]bool) []Coord {
	var out []Coord
	for _, c := range ordered {
		if !other[c] {
			out = append(out, c)
		}
	}
	return out
}

func intersect(a, b map[Coord]bool) map[Coord]bool {
	out := make(map[Coord]bool)
	for c := range a {
		if b[c] {
			out[c] = true
		}
	}
	return out
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
