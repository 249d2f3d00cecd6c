package generator

import (
	"testing"

	"mine_probs_go/types"
)

func TestGenerateConsistentSnapshot(t *testing.T) {
	g := NewBoardGenerator(9, 9, 10)
	g.SetSeed(1)
	g.SetFlagFraction(0.5)

	board, mines, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(mines) != 10 || board.Mines != 10 {
		t.Fatalf("got %d mine cells, board says %d, want 10", len(mines), board.Mines)
	}

	isMine := make(map[types.Cell]bool, len(mines))
	for _, m := range mines {
		isMine[m] = true
	}

	for r := 0; r < board.Height; r++ {
		for c := 0; c < board.Width; c++ {
			cell := types.Cell{Row: r, Col: c}
			switch s := board.At(r, c); {
			case s == types.Flagged:
				if !isMine[cell] {
					t.Errorf("flag at %v is not on a mine", cell)
				}
			case s.IsRevealed():
				if isMine[cell] {
					t.Errorf("revealed cell %v is a mine", cell)
				}
				n := 0
				for _, nb := range board.Neighbors(cell) {
					if isMine[nb] {
						n++
					}
				}
				if s.Clue() != n {
					t.Errorf("clue at %v is %d, want %d", cell, s.Clue(), n)
				}
			}
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a := NewBoardGenerator(8, 8, 8)
	a.SetSeed(7)
	b := NewBoardGenerator(8, 8, 8)
	b.SetSeed(7)

	boardA, _, err := a.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	boardB, _, err := b.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if boardA.String() != boardB.String() {
		t.Error("same seed produced different boards")
	}
}

func TestGenerateRejectsTooManyMines(t *testing.T) {
	g := NewBoardGenerator(2, 2, 5)
	if _, _, err := g.Generate(); err == nil {
		t.Error("expected an error for 5 mines on a 2x2 board")
	}
}
