package solver

import (
	"fmt"

	"mine_probs_go/types"
)

// constraint relates a set of unrevealed cells to the number of mines that
// must be among them. One constraint is derived per revealed clue, with the
// clue reduced by the flags already placed around it.
type constraint struct {
	cells []types.Cell
	mines int
}

// extractConstraints derives the constraint list from every revealed cell
// on the board. Clue cells whose neighborhood is fully resolved contribute
// nothing and are dropped.
func extractConstraints(b *types.Board) ([]constraint, error) {
	var cons []constraint
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			s := b.At(r, c)
			if !s.IsRevealed() {
				continue
			}

			var unrevealed []types.Cell
			flags := 0
			for _, n := range b.Neighbors(types.Cell{Row: r, Col: c}) {
				switch b.At(n.Row, n.Col) {
				case types.Flagged:
					flags++
				case types.Unrevealed:
					unrevealed = append(unrevealed, n)
				}
			}

			remaining := s.Clue() - flags
			if remaining < 0 || remaining > len(unrevealed) {
				return nil, fmt.Errorf("%w: clue %d at (%d, %d) has %d flagged and %d unrevealed neighbors",
					ErrInvalidBoard, s.Clue(), r, c, flags, len(unrevealed))
			}
			if len(unrevealed) == 0 {
				continue
			}
			cons = append(cons, constraint{cells: unrevealed, mines: remaining})
		}
	}
	return cons, nil
}
