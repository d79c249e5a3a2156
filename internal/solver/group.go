package solver

// ConstraintGroup is a maximal connected component in the bipartite graph
// of constraints and the cells they mention.
type ConstraintGroup struct {
	Constraints []Constraint
	Cells       map[Coord]bool
}

// GroupConstraints partitions constraints into connected components via
// their shared cells (union-find by repeated scan, same approach as the
// constraint grouper this is modeled on). Empty input yields empty
// output.
func GroupConstraints(constraints []Constraint) []ConstraintGroup {
	if len(constraints) == 0 {
		return nil
	}

	cellSets := make([]map[Coord]bool, len(constraints))
	for i, c := range constraints {
		cellSets[i] = c.cellSet()
	}

	used := make([]bool, len(constraints))
	var groups []ConstraintGroup

	for i := range constraints {
		if used[i] {
			continue
		}

		group := ConstraintGroup{
			Constraints: []Constraint{constraints[i]},
			Cells:       copySet(cellSets[i]),
		}
		used[i] = true

		for changed := true; changed; {
			changed = false
			for j := range constraints {
				if used[j] {
					continue
				}
				if sharesCell(group.Cells, cellSets[j]) {
					group.Constraints = append(group.Constraints, constraints[j])
					for c := range cellSets[j] {
						group.Cells[c] = true
					}
					used[j] = true
					changed = true
				}
			}
		}

		groups = append(groups, group)
	}

	return groups
}

func sharesCell(a, b map[Coord]bool) bool {
	for c := range b {
		if a[c] {
			return true
		}
	}
	return false
}

func copySet(s map[Coord]bool) map[Coord]bool {
	out := make(map[Coord]bool, len(s))
	for c := range s {
		out[c] = true
	}
	return out
}
