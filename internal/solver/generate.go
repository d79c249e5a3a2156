package solver

import "math/rand/v2"

// Params are the engine's tuning parameters: the tile-count threshold
// below which a group is exactly enumerated, the number of random
// configurations sampled above that threshold, and the minimum
// probability to flag a cell. They are always passed in, never read
// from process-wide state.
type Params struct {
	ExactThreshold int
	SampleSize     int
	FlagThreshold  float64
}

// DefaultParams returns the engine's default tuning parameters.
func DefaultParams() Params {
	return Params{
		ExactThreshold: 20,
		SampleSize:     100_000,
		FlagThreshold:  0.90,
	}
}

// Configuration is a subset of a constrained-cell set interpreted as
// "these cells are mines, the rest are safe."
type Configuration struct {
	Mines     map[Coord]bool
	MineCount int
}

// GenerateConfigurations yields every valid mine assignment for the given
// cells under constraints. At or below params.ExactThreshold tiles it
// enumerates exhaustively; above it, it draws
// params.SampleSize random subsets (each cell independently a mine with
// probability 0.5) and keeps the valid ones. rng may be nil, in which
// case a freshly seeded source is used; callers that need determinism
// (tests, replay) must supply their own.
func GenerateConfigurations(rng *rand.Rand, cells []Coord, constraints []Constraint, params Params) []Configuration {
	if len(cells) == 0 {
		return nil
	}
	if len(cells) <= params.ExactThreshold {
		return enumerateExact(cells, constraints)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return sampleConfigurations(rng, cells, constraints, params.SampleSize)
}

func enumerateExact(cells []Coord, constraints []Constraint) []Configuration {
	n := len(cells)
	index := make(map[Coord]int, n)
	for i, c := range cells {
		index[c] = i
	}

	type bitConstraint struct {
		mask  uint64
		mines int
	}
	masks := make([]bitConstraint, len(constraints))
	for i, c := range constraints {
		var mask uint64
		for _, cell := range c.Cells {
			if bit, ok := index[cell]; ok {
				mask |= 1 << uint(bit)
			}
		}
		masks[i] = bitConstraint{mask: mask, mines: c.Mines}
	}

	var configs []Configuration
	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		valid := true
		for _, bc := range masks {
			if popcount(mask&bc.mask) != bc.mines {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		mines := make(map[Coord]bool)
		for i, cell := range cells {
			if mask&(1<<uint(i)) != 0 {
				mines[cell] = true
			}
		}
		configs = append(configs, Configuration{Mines: mines, MineCount: len(mines)})
	}
	return configs
}

func sampleConfigurations(rng *rand.Rand, cells []Coord, constraints []Constraint, sampleSize int) []Configuration {
	var configs []Configuration
	for i := 0; i < sampleSize; i++ {
		mines := make(map[Coord]bool)
		for _, c := range cells {
			if rng.Float64() < 0.5 {
				mines[c] = true
			}
		}
		if satisfiesAll(mines, constraints) {
			configs = append(configs, Configuration{Mines: mines, MineCount: len(mines)})
		}
	}
	return configs
}

func satisfiesAll(mines map[Coord]bool, constraints []Constraint) bool {
	for _, c := range constraints {
		count := 0
		for _, cell := range c.Cells {
			if mines[cell] {
				count++
			}
		}
		if count != c.Mines {
			return false
		}
	}
	return true
}

func popcount(x uint64) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}
