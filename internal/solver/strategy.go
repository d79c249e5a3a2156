package solver

import (
	"log"
	"math/rand/v2"
)

// Decision is the result of a single call to Decide: the chosen Action
// plus whether this decision should count toward win-rate statistics —
// forced random seed moves do not.
type Decision struct {
	Action    Action
	Evaluable bool
}

// ruleOrder is the fixed per-anchor rule cascade. R4 is kept ahead of R3
// because it sometimes succeeds where R3 short-circuits on the wrong
// candidate during early iterations.
var ruleOrder = []func(Snapshot, Coord) (Action, bool){
	RuleR1,
	RuleR2,
	RuleR4,
	RuleR3,
}

// Decide is the engine's top-level policy: cascade the deterministic
// pattern rules across every revealed numbered anchor; on failure
// consult the probability calculator; fall back to a random seed move
// when the board has no revealed zero cells at all.
//
// rng controls both the random seed move and the sampler/tie-break
// randomness used by the probability calculator; pass nil for a freshly
// seeded source, or a seeded *rand.Rand for deterministic replay.
func Decide(s Snapshot, totalMines int, rng *rand.Rand, params Params, logger *log.Logger) (Decision, error) {
	hiddenCells := allHidden(s)
	if len(hiddenCells) == 0 {
		return Decision{Action: Action{Kind: NoMove}, Evaluable: true}, ErrNoMovePossible
	}

	if !hasRevealedZero(s) {
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		cell := hiddenCells[rng.IntN(len(hiddenCells))]
		return Decision{Action: Action{Kind: RevealAction, Cell: cell}, Evaluable: false}, nil
	}

	for _, anchor := range revealedNumberedAnchors(s) {
		for _, rule := range ruleOrder {
			if action, ok := rule(s, anchor); ok {
				return Decision{Action: action, Evaluable: true}, nil
			}
		}
	}

	prob, err := Calculate(s, totalMines, rng, params, logger)
	if err != nil {
		return Decision{}, err
	}

	if cell, _, ok := prob.FindHighest(params.FlagThreshold); ok {
		return Decision{Action: Action{Kind: FlagAction, Cell: cell}, Evaluable: true}, nil
	}
	if cell, _, ok := prob.FindLowest(rng); ok {
		return Decision{Action: Action{Kind: RevealAction, Cell: cell}, Evaluable: true}, nil
	}

	return Decision{Action: Action{Kind: NoMove}, Evaluable: true}, nil
}

func allHidden(s Snapshot) []Coord {
	var out []Coord
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := Coord{X: x, Y: y}
			if s.Cell(c).State == Hidden {
				out = append(out, c)
			}
		}
	}
	return out
}

func hasRevealedZero(s Snapshot) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			view := s.Cell(Coord{X: x, Y: y})
			if view.State == Revealed && view.Value == 0 {
				return true
			}
		}
	}
	return false
}

func revealedNumberedAnchors(s Snapshot) []Coord {
	var out []Coord
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			view := s.Cell(Coord{X: x, Y: y})
			if view.State == Revealed && view.Value > 0 {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}
