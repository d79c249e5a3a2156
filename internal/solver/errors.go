package solver

import "errors"

// ErrIllegalPosition is returned when constraint extraction finds a
// revealed cell whose flagged-neighbor count exceeds its value — the
// board cannot be a legal completion.
var ErrIllegalPosition = errors.New("solver: illegal position (negative remaining mine count)")

// ErrNoValidConfiguration signals that configuration generation produced
// nothing for a constrained group. It is non-fatal: callers fall back to
// a uniform probability estimate.
var ErrNoValidConfiguration = errors.New("solver: no valid configuration found")

// ErrNoMovePossible signals that no Hidden cell remains on the board.
var ErrNoMovePossible = errors.New("solver: no hidden cells remain")
