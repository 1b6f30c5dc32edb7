package game

import "errors"

var (
	// ErrInvalidDimension is returned when rows or cols is less than one.
	ErrInvalidDimension = errors.New("invalid board dimension")

	// ErrInvalidMineCount is returned when the mine count is outside [0, rows*cols).
	ErrInvalidMineCount = errors.New("invalid mine count")

	// ErrOutOfBounds is returned by moves that target a cell outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrGameEnded marks a move made after a terminal state. The engine itself
	// treats such moves as no-ops and never returns it; callers that want to
	// tell the player use it to report the condition.
	ErrGameEnded = errors.New("game already ended")
)
