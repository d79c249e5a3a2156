package minesweeper

import "github.com/jfallows/minesweeper-ai/internal/solver"

// Snapshot returns a read-only solver.Snapshot view of the current board.
// Coordinates map Game's (row, col) to solver.Coord{X: col, Y: row}.
// Mines are never leaked: hidden cells always report solver.Hidden
// regardless of Cell.Mine.
func (g *Game) Snapshot() solver.Snapshot {
	return solver.NewGridSnapshot(g.Cols, g.Rows, func(c solver.Coord) solver.CellView {
		cell := g.Grid[c.Y][c.X]
		switch cell.State {
		case Flagged:
			return solver.CellView{State: solver.FlaggedState}
		case Revealed:
			return solver.CellView{State: solver.Revealed, Value: cell.Adjacent}
		default:
			return solver.CellView{State: solver.Hidden}
		}
	})
}

// FlaggedCount returns the number of cells currently flagged.
func (g *Game) FlaggedCount() int {
	return g.FlagsUsed
}

// solverEmitter adapts *Game to solver.Emitter so the engine's chosen
// Action can be applied directly through the harness's own Reveal/
// ToggleFlag, without the engine ever touching Game's mutable state
// itself.
type solverEmitter struct {
	game *Game
}

func (e solverEmitter) Reveal(c solver.Coord) {
	e.game.Reveal(c.Y, c.X)
}

func (e solverEmitter) Flag(c solver.Coord) {
	e.game.ToggleFlag(c.Y, c.X)
}

// Apply validates and applies a solver Action against the live board
// through Emit, using the same snapshot the decision was computed from.
func (g *Game) Apply(snap solver.Snapshot, action solver.Action) bool {
	return solver.Emit(snap, action, solverEmitter{game: g})
}
