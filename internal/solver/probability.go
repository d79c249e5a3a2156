package solver

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
)

// Probability holds the per-cell mine probability for every Hidden cell
// on a snapshot, plus enough context to answer the tie-breaking and
// debugging queries below.
type Probability struct {
	values      map[Coord]float64
	snap        Snapshot
	constraints []Constraint
}

// Calculate computes per-cell mine probability for every Hidden cell,
// combining constraint extraction, grouping, configuration generation,
// and global-mine-budget weighting across the union of constraint
// groups (never per-group, which would miscount unconstrained
// placements). rng controls the sampler used for large groups; a nil
// rng gets a freshly seeded one. logger receives a warning (never an
// error) when the generator finds no valid configuration and the
// engine silently falls back to a uniform estimate; a nil logger uses
// log.Default().
func Calculate(s Snapshot, totalMines int, rng *rand.Rand, params Params, logger *log.Logger) (*Probability, error) {
	if logger == nil {
		logger = log.Default()
	}

	constraints, err := ExtractConstraints(s)
	if err != nil {
		return nil, err
	}

	hidden, flagged := censusHidden(s)
	remaining := totalMines - flagged
	u := len(hidden)

	uniform := uniformProbability(hidden, u, remaining)

	if len(constraints) == 0 {
		return &Probability{values: uniform, snap: s, constraints: constraints}, nil
	}

	groups := GroupConstraints(constraints)
	allCells := unionCells(groups)
	allConstraints := unionConstraints(groups)

	sortedCells := sortedCoords(allCells)
	configs := GenerateConfigurations(rng, sortedCells, allConstraints, params)

	if len(configs) == 0 {
		logger.Printf("solver: %v, falling back to uniform probability", ErrNoValidConfiguration)
		return &Probability{values: uniform, snap: s, constraints: constraints}, nil
	}

	unconstrainedCount := u - len(allCells)

	type weighted struct {
		config Configuration
		logW   float64
	}
	var kept []weighted
	for _, cfg := range configs {
		logW := logComb(unconstrainedCount, remaining-cfg.MineCount)
		if math.IsInf(logW, -1) {
			continue
		}
		kept = append(kept, weighted{config: cfg, logW: logW})
	}

	if len(kept) == 0 {
		logger.Printf("solver: %v, falling back to uniform probability", ErrNoValidConfiguration)
		return &Probability{values: uniform, snap: s, constraints: constraints}, nil
	}

	logWeights := make([]float64, len(kept))
	for i, k := range kept {
		logWeights[i] = k.logW
	}
	logTotal := logSumExp(logWeights)

	values := make(map[Coord]float64, u)

	perCellLogW := make(map[Coord][]float64, len(allCells))
	for _, k := range kept {
		for cell := range k.config.Mines {
			perCellLogW[cell] = append(perCellLogW[cell], k.logW)
		}
	}
	for _, cell := range sortedCells {
		ws := perCellLogW[cell]
		if len(ws) == 0 {
			values[cell] = 0
			continue
		}
		values[cell] = math.Exp(logSumExp(ws) - logTotal)
	}

	if unconstrainedCount > 0 {
		fractions := make([]float64, len(kept))
		for i, k := range kept {
			fractions[i] = float64(remaining-k.config.MineCount) / float64(unconstrainedCount)
		}
		unconstrainedProb := weightedMeanLog(logWeights, fractions)
		for _, c := range hidden {
			if !allCells[c] {
				values[c] = unconstrainedProb
			}
		}
	} else {
		for _, c := range hidden {
			if !allCells[c] {
				values[c] = 0
			}
		}
	}

	return &Probability{values: values, snap: s, constraints: constraints}, nil
}

// Value returns the computed mine probability for c, or 0 if c was never
// part of the computation (e.g. not Hidden).
func (p *Probability) Value(c Coord) float64 {
	return p.values[c]
}

// All returns the full per-cell probability map. Callers must not mutate
// it.
func (p *Probability) All() map[Coord]float64 {
	return p.values
}

// FindHighest returns the Hidden cell with the highest mine probability,
// if it meets or exceeds threshold. Ties are broken by coordinate order
// for determinism.
func (p *Probability) FindHighest(threshold float64) (Coord, float64, bool) {
	if len(p.values) == 0 {
		return Coord{}, 0, false
	}

	best, bestP, found := Coord{}, -1.0, false
	for _, c := range sortedCoords(setFromMap(p.values)) {
		v := p.values[c]
		if !found || v > bestP {
			best, bestP, found = c, v, true
		}
	}
	if !found || bestP < threshold {
		return Coord{}, 0, false
	}
	return best, bestP, true
}

// FindLowest returns the Hidden cell with the lowest mine probability,
// breaking ties by Manhattan distance to the nearest revealed cell
// (frontier proximity), then by uniform random choice among remaining
// ties. rng may be nil, meaning a fresh source is used for the random
// tie-break.
func (p *Probability) FindLowest(rng *rand.Rand) (Coord, float64, bool) {
	if len(p.values) == 0 {
		return Coord{}, 0, false
	}

	minProb := math.Inf(1)
	for _, v := range p.values {
		if v < minProb {
			minProb = v
		}
	}

	var candidates []Coord
	for _, c := range sortedCoords(setFromMap(p.values)) {
		if p.values[c] == minProb {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], minProb, true
	}

	minDist := math.MaxInt64
	distances := make(map[Coord]int, len(candidates))
	for _, c := range candidates {
		d := p.distanceToFrontier(c)
		distances[c] = d
		if d < minDist {
			minDist = d
		}
	}

	var closest []Coord
	for _, c := range candidates {
		if distances[c] == minDist {
			closest = append(closest, c)
		}
	}
	if len(closest) == 1 {
		return closest[0], minProb, true
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return closest[rng.IntN(len(closest))], minProb, true
}

// distanceToFrontier returns the minimum Manhattan distance from c to any
// non-hidden, non-flagged (i.e. Revealed) cell, or 1000 if no such cell
// exists.
func (p *Probability) distanceToFrontier(c Coord) int {
	minDist := -1
	for y := 0; y < p.snap.Height(); y++ {
		for x := 0; x < p.snap.Width(); x++ {
			other := Coord{X: x, Y: y}
			if p.snap.Cell(other).State != Revealed {
				continue
			}
			d := abs(c.X-other.X) + abs(c.Y-other.Y)
			if minDist == -1 || d < minDist {
				minDist = d
			}
		}
	}
	if minDist == -1 {
		return 1000
	}
	return minDist
}

// TileConstraints returns every extracted constraint that mentions c, for
// debugging/display purposes.
func (p *Probability) TileConstraints(c Coord) []Constraint {
	var out []Constraint
	for _, con := range p.constraints {
		for _, cell := range con.Cells {
			if cell == c {
				out = append(out, con)
				break
			}
		}
	}
	return out
}

// FormatReadout renders the probability map lowest-first (safest first),
// capped at maxResults lines, for the harness's debug/engine-readout
// display.
func (p *Probability) FormatReadout(maxResults int) string {
	if len(p.values) == 0 {
		return "No probabilities available (no hidden tiles or calculation failed)"
	}

	type entry struct {
		c Coord
		v float64
	}
	entries := make([]entry, 0, len(p.values))
	for c, v := range p.values {
		entries = append(entries, entry{c, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].v != entries[j].v {
			return entries[i].v < entries[j].v
		}
		if entries[i].c.Y != entries[j].c.Y {
			return entries[i].c.Y < entries[j].c.Y
		}
		return entries[i].c.X < entries[j].c.X
	})

	var b strings.Builder
	b.WriteString("Mine Probabilities (lowest = safest):\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")

	limit := len(entries)
	if maxResults > 0 && maxResults < limit {
		limit = maxResults
	}
	for _, e := range entries[:limit] {
		barLen := int(e.v * 20)
		bar := strings.Repeat("#", barLen) + strings.Repeat(".", 20-barLen)
		fmt.Fprintf(&b, "(%d,%d): %5.1f%% %s\n", e.c.X, e.c.Y, e.v*100, bar)
	}
	if len(entries) > limit {
		fmt.Fprintf(&b, "... and %d more tiles\n", len(entries)-limit)
	}
	return b.String()
}

func censusHidden(s Snapshot) (hidden []Coord, flagged int) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := Coord{X: x, Y: y}
			switch s.Cell(c).State {
			case Hidden:
				hidden = append(hidden, c)
			case FlaggedState:
				flagged++
			}
		}
	}
	return hidden, flagged
}

func uniformProbability(hidden []Coord, u, remaining int) map[Coord]float64 {
	values := make(map[Coord]float64, len(hidden))
	p := 0.0
	if u > 0 {
		p = float64(remaining) / float64(u)
	}
	for _, c := range hidden {
		values[c] = p
	}
	return values
}

func unionCells(groups []ConstraintGroup) map[Coord]bool {
	all := make(map[Coord]bool)
	for _, g := range groups {
		for c := range g.Cells {
			all[c] = true
		}
	}
	return all
}

func unionConstraints(groups []ConstraintGroup) []Constraint {
	var all []Constraint
	for _, g := range groups {
		all = append(all, g.Constraints...)
	}
	return all
}

func sortedCoords(set map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func setFromMap(m map[Coord]float64) map[Coord]bool {
	out := make(map[Coord]bool, len(m))
	for c := range m {
		out[c] = true
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
