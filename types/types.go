package types

import (
	"encoding/json"
	"fmt"
)

// CellState is the displayed state of a single board cell. Values 0-8 are
// revealed clues, the negative values are the two unresolved states.
type CellState int8

const (
	Unrevealed CellState = -2
	Flagged    CellState = -1
)

// Revealed returns the state for a revealed cell showing the given clue.
func Revealed(clue int) CellState {
	if clue < 0 || clue > 8 {
		panic(fmt.Sprintf("clue out of range: %d", clue))
	}
	return CellState(clue)
}

// IsRevealed reports whether the state is a revealed clue.
func (s CellState) IsRevealed() bool {
	return s >= 0
}

// Clue returns the clue value of a revealed state.
func (s CellState) Clue() int {
	if !s.IsRevealed() {
		panic("Clue called on unrevealed cell")
	}
	return int(s)
}

func (s CellState) String() string {
	switch {
	case s == Unrevealed:
		return "#"
	case s == Flagged:
		return "F"
	case s == 0:
		return "."
	default:
		return fmt.Sprintf("%d", int(s))
	}
}

// Cell identifies a board position by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a snapshot of a partially revealed minesweeper board. Cells is
// stored row-major. Mines is the total mine count, including mines under
// flags. The solver treats a Board as read-only.
type Board struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Mines  int         `json:"mines"`
	Cells  []CellState `json:"cells"`
}

// NewBoard creates a board of the given extent with every cell unrevealed.
func NewBoard(width, height, mines int) *Board {
	cells := make([]CellState, width*height)
	for i := range cells {
		cells[i] = Unrevealed
	}
	return &Board{
		Width:  width,
		Height: height,
		Mines:  mines,
		Cells:  cells,
	}
}

// At returns the state of the cell at (row, col).
func (b *Board) At(row, col int) CellState {
	return b.Cells[row*b.Width+col]
}

// Set replaces the state of the cell at (row, col). Intended for board
// construction; never called on a board that has been handed to the solver.
func (b *Board) Set(row, col int, s CellState) {
	b.Cells[row*b.Width+col] = s
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Neighbors returns the up-to-8 cells adjacent to c, in row-major order.
func (b *Board) Neighbors(c Cell) []Cell {
	nbrs := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, cc := c.Row+dr, c.Col+dc
			if b.InBounds(r, cc) {
				nbrs = append(nbrs, Cell{Row: r, Col: cc})
			}
		}
	}
	return nbrs
}

// FlaggedCount returns the number of flagged cells on the board.
func (b *Board) FlaggedCount() int {
	n := 0
	for _, s := range b.Cells {
		if s == Flagged {
			n++
		}
	}
	return n
}

// UnrevealedCount returns the number of unrevealed, unflagged cells.
func (b *Board) UnrevealedCount() int {
	n := 0
	for _, s := range b.Cells {
		if s == Unrevealed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		Width:  b.Width,
		Height: b.Height,
		Mines:  b.Mines,
		Cells:  cells,
	}
}

// ToJSON converts the board to JSON bytes.
func (b *Board) ToJSON() ([]byte, error) {
	return json.Marshal(b)
}

// FromJSON creates a Board from JSON bytes.
func FromJSON(data []byte) (*Board, error) {
	var board Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	if board.Width*board.Height != len(board.Cells) {
		return nil, fmt.Errorf("board is %dx%d but has %d cells",
			board.Width, board.Height, len(board.Cells))
	}
	return &board, nil
}
