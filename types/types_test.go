package types

import (
	"testing"
)

func TestParseAndString(t *testing.T) {
	text := "1 2 F\n# . #"
	board, err := Parse(text, 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if board.Width != 3 || board.Height != 2 || board.Mines != 3 {
		t.Fatalf("got %dx%d with %d mines", board.Width, board.Height, board.Mines)
	}

	tests := []struct {
		row, col int
		want     CellState
	}{
		{0, 0, Revealed(1)},
		{0, 1, Revealed(2)},
		{0, 2, Flagged},
		{1, 0, Unrevealed},
		{1, 1, Revealed(0)},
		{1, 2, Unrevealed},
	}
	for _, tt := range tests {
		if got := board.At(tt.row, tt.col); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}

	if board.String() != text {
		t.Errorf("String() = %q, want %q", board.String(), text)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "   \n\n"},
		{"ragged rows", "# #\n#"},
		{"unknown token", "# ?"},
		{"clue out of range", "9 #"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text, 1); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	board := NewBoard(3, 3, 0)
	tests := []struct {
		name string
		cell Cell
		want int
	}{
		{"corner", Cell{Row: 0, Col: 0}, 3},
		{"edge", Cell{Row: 0, Col: 1}, 5},
		{"center", Cell{Row: 1, Col: 1}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.Neighbors(tt.cell); len(got) != tt.want {
				t.Errorf("got %d neighbors, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	board, err := Parse("F # 1\n# F .", 4)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := board.FlaggedCount(); got != 2 {
		t.Errorf("FlaggedCount() = %d, want 2", got)
	}
	if got := board.UnrevealedCount(); got != 2 {
		t.Errorf("UnrevealedCount() = %d, want 2", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	board, err := Parse("1 #\n# F", 2)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	data, err := board.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if got.String() != board.String() || got.Mines != board.Mines {
		t.Error("round trip changed the board")
	}
}

func TestFromJSONRejectsBadExtent(t *testing.T) {
	if _, err := FromJSON([]byte(`{"width":2,"height":2,"mines":1,"cells":[-2,-2]}`)); err == nil {
		t.Error("expected an error for mismatched cell count")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard(2, 2, 1)
	clone := board.Clone()
	clone.Set(0, 0, Flagged)
	if board.At(0, 0) != Unrevealed {
		t.Error("mutating the clone changed the original")
	}
}
