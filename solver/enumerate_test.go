package solver

import (
	"context"
	"testing"

	"mine_probs_go/types"
)

func TestExtractConstraints(t *testing.T) {
	board, err := types.Parse("1 # #\n. # F", 2)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// (0,0) clue 1 over {(0,1),(1,1)}; (1,0) clue 0 over {(0,1),(1,1)}.
	cons, err := extractConstraints(board)
	if err != nil {
		t.Fatalf("extractConstraints failed: %v", err)
	}
	if len(cons) != 2 {
		t.Fatalf("got %d constraints, want 2", len(cons))
	}
	if cons[0].mines != 1 || cons[1].mines != 0 {
		t.Errorf("got targets %d and %d, want 1 and 0", cons[0].mines, cons[1].mines)
	}
	for _, con := range cons {
		if len(con.cells) != 2 {
			t.Errorf("constraint over %d cells, want 2", len(con.cells))
		}
	}
}

func TestExtractConstraintsReducesByFlags(t *testing.T) {
	board, err := types.Parse("2 F\n# #", 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cons, err := extractConstraints(board)
	if err != nil {
		t.Fatalf("extractConstraints failed: %v", err)
	}
	if len(cons) != 1 {
		t.Fatalf("got %d constraints, want 1", len(cons))
	}
	if cons[0].mines != 1 {
		t.Errorf("target = %d, want clue 2 minus 1 flag", cons[0].mines)
	}
}

func TestPartitionSplitsIndependentConstraints(t *testing.T) {
	a := types.Cell{Row: 0, Col: 0}
	b := types.Cell{Row: 0, Col: 1}
	c := types.Cell{Row: 5, Col: 5}
	d := types.Cell{Row: 5, Col: 6}

	regions := partition([]constraint{
		{cells: []types.Cell{a, b}, mines: 1},
		{cells: []types.Cell{c, d}, mines: 1},
		{cells: []types.Cell{b, a}, mines: 1},
	})
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	if len(regions[0].cells) != 2 || len(regions[0].rules) != 2 {
		t.Errorf("first region has %d cells and %d rules, want 2 and 2",
			len(regions[0].cells), len(regions[0].rules))
	}
	if regions[0].cells[0] != a || regions[1].cells[0] != c {
		t.Error("regions not ordered by first cell")
	}
}

func TestPartitionMergesOverlappingConstraints(t *testing.T) {
	a := types.Cell{Row: 0, Col: 0}
	b := types.Cell{Row: 0, Col: 1}
	c := types.Cell{Row: 0, Col: 2}

	regions := partition([]constraint{
		{cells: []types.Cell{a, b}, mines: 1},
		{cells: []types.Cell{b, c}, mines: 1},
	})
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if len(regions[0].cells) != 3 {
		t.Errorf("region has %d cells, want 3", len(regions[0].cells))
	}
}

func TestEnumerateChainedRules(t *testing.T) {
	// Cells 0,1,2 with one mine among {0,1} and one among {1,2}. The
	// consistent assignments are {1} and {0,2}.
	reg := &region{
		cells: []types.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		rules: []localRule{
			{cells: []int{0, 1}, mines: 1},
			{cells: []int{1, 2}, mines: 1},
		},
	}
	tal, err := enumerate(context.Background(), reg)
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}

	if got := tal.hist[1].Int64(); got != 1 {
		t.Errorf("hist[1] = %d, want 1", got)
	}
	if got := tal.hist[2].Int64(); got != 1 {
		t.Errorf("hist[2] = %d, want 1", got)
	}
	if got := tal.hist[0].Int64(); got != 0 {
		t.Errorf("hist[0] = %d, want 0", got)
	}

	// Cell 1 is the mine in the single-mine assignment only.
	if got := tal.byCell[1][1].Int64(); got != 1 {
		t.Errorf("byCell[1][1] = %d, want 1", got)
	}
	if got := tal.byCell[0][2].Int64(); got != 1 {
		t.Errorf("byCell[0][2] = %d, want 1", got)
	}
}

func TestEnumerateContradictoryRules(t *testing.T) {
	reg := &region{
		cells: []types.Cell{{Row: 0, Col: 0}},
		rules: []localRule{
			{cells: []int{0}, mines: 0},
			{cells: []int{0}, mines: 1},
		},
	}
	tal, err := enumerate(context.Background(), reg)
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	if !tal.empty() {
		t.Error("contradictory rules must produce an empty tally")
	}
}
