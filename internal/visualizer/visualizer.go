package visualizer

import (
	"fmt"
	"strings"

	"mine_probs_go/types"
)

// Visualizer handles board visualization
type Visualizer struct {
	board *types.Board
}

func NewVisualizer(board *types.Board) *Visualizer {
	return &Visualizer{board: board}
}

// Print writes the board to stdout in its text representation, framed
// with a border.
func (v *Visualizer) Print() {
	width := v.board.Width

	v.printHorizontalBorder(width, 1)
	for i := 0; i < v.board.Height; i++ {
		fmt.Print("│ ")
		for j := 0; j < width; j++ {
			fmt.Printf("%s ", v.board.At(i, j))
		}
		fmt.Println("│")
	}
	v.printHorizontalBorder(width, 1)
}

// PrintProbs writes the board with every unrevealed cell replaced by its
// mine probability in percent, colored from green (safe) to red (certain
// mine), the way the original reference tool shades its cells.
func (v *Visualizer) PrintProbs(probs map[types.Cell]float64) {
	const cellWidth = 4
	reset := "\033[0m"

	v.printHorizontalBorder(v.board.Width, cellWidth)
	for i := 0; i < v.board.Height; i++ {
		fmt.Print("│ ")
		for j := 0; j < v.board.Width; j++ {
			cell := types.Cell{Row: i, Col: j}
			if p, ok := probs[cell]; ok {
				fmt.Printf("%s%3.0f%%%s ", probColor(p), p*100, reset)
			} else {
				fmt.Printf("%-*s ", cellWidth, v.board.At(i, j))
			}
		}
		fmt.Println("│")
	}
	v.printHorizontalBorder(v.board.Width, cellWidth)
}

func probColor(p float64) string {
	switch {
	case p == 0:
		return "\033[42m" // Green background
	case p < 0.25:
		return "\033[32m" // Green
	case p < 0.5:
		return "\033[33m" // Yellow
	case p < 0.75:
		return "\033[31m" // Red
	case p < 1:
		return "\033[91m" // Bright Red
	default:
		return "\033[41m" // Red background
	}
}

func (v *Visualizer) printHorizontalBorder(width, cellWidth int) {
	fmt.Println("├" + strings.Repeat("─", width*(cellWidth+1)+1) + "┤")
}
