package solver

import "errors"

// Errors returned by Solve. Callers match with errors.Is; each solve call
// either returns a complete probability map or exactly one of these.
var (
	// ErrInvalidBoard means a revealed clue is inconsistent with its own
	// neighborhood (too many flags, or more remaining mines than
	// unrevealed neighbors), or the snapshot itself is malformed.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrUnsatisfiable means no mine assignment satisfies all constraints
	// under the board's mine budget.
	ErrUnsatisfiable = errors.New("board is unsatisfiable")

	// ErrTimeout means enumeration exceeded the allotted time budget or
	// was cancelled before completing.
	ErrTimeout = errors.New("solve timed out")
)
