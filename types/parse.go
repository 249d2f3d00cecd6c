package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a board from its text representation: one line per row,
// cells separated by whitespace. "#" is an unrevealed cell, "F" a flag,
// "." or a digit 0-8 a revealed clue. The total mine count is not part of
// the text format and is supplied separately.
func Parse(text string, mines int) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board text")
	}

	width := len(rows[0])
	board := NewBoard(width, len(rows), mines)
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), width)
		}
		for c, tok := range row {
			state, err := parseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", r, c, err)
			}
			board.Set(r, c, state)
		}
	}
	return board, nil
}

func parseCell(tok string) (CellState, error) {
	switch tok {
	case "#":
		return Unrevealed, nil
	case "F", "F1":
		return Flagged, nil
	case ".":
		return Revealed(0), nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > 8 {
		return Unrevealed, fmt.Errorf("unknown cell representation %q", tok)
	}
	return Revealed(n), nil
}

// String renders the board in the same text format accepted by Parse,
// with revealed zeros printed as ".".
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(r, c).String())
		}
		if r < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
