package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/duke-git/lancet/v2/slice"

	"mine_probs_go/types"
)

// BoardGenerator produces randomized partially revealed board snapshots,
// used by the CLI and by tests that need realistic solver input.
type BoardGenerator struct {
	width, height int
	mines         int
	flagFraction  float64
	rng           *rand.Rand
}

func NewBoardGenerator(width, height, mines int) *BoardGenerator {
	return &BoardGenerator{
		width:  width,
		height: height,
		mines:  mines,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed makes generation reproducible.
func (g *BoardGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetFlagFraction sets the share of mines that get pre-flagged on the
// snapshot, between 0 and 1.
func (g *BoardGenerator) SetFlagFraction(f float64) {
	if f >= 0 && f <= 1 {
		g.flagFraction = f
	}
}

// Generate lays out mines at random, reveals a connected area the way a
// player opening a zero cell would, and flags a share of the remaining
// mines. It returns the snapshot together with the true mine cells so
// callers can verify solver output against the layout.
func (g *BoardGenerator) Generate() (*types.Board, []types.Cell, error) {
	total := g.width * g.height
	if g.mines < 0 || g.mines > total {
		return nil, nil, fmt.Errorf("cannot place %d mines on a %dx%d board",
			g.mines, g.width, g.height)
	}

	perm := g.rng.Perm(total)
	mineIdx := perm[:g.mines]
	isMine := make([]bool, total)
	for _, i := range mineIdx {
		isMine[i] = true
	}

	board := types.NewBoard(g.width, g.height, g.mines)
	clues := g.computeClues(isMine)

	// Open the first safe zero cell of the permutation, flooding through
	// the zero area like a real reveal would.
	for _, i := range perm {
		if !isMine[i] && clues[i] == 0 {
			g.flood(board, clues, i)
			break
		}
	}

	// Pre-flag a share of the still-hidden mines.
	toFlag := int(g.flagFraction * float64(g.mines))
	flagged := 0
	for _, i := range mineIdx {
		if flagged >= toFlag {
			break
		}
		if board.Cells[i] == types.Unrevealed {
			board.Cells[i] = types.Flagged
			flagged++
		}
	}

	mineCells := make([]types.Cell, 0, g.mines)
	for _, i := range mineIdx {
		mineCells = append(mineCells, types.Cell{Row: i / g.width, Col: i % g.width})
	}
	return board, mineCells, nil
}

func (g *BoardGenerator) computeClues(isMine []bool) []int {
	clues := make([]int, len(isMine))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			i := r*g.width + c
			if isMine[i] {
				continue
			}
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if (dr != 0 || dc != 0) &&
						nr >= 0 && nr < g.height && nc >= 0 && nc < g.width &&
						isMine[nr*g.width+nc] {
						n++
					}
				}
			}
			clues[i] = n
		}
	}
	return clues
}

// flood reveals the cell at index start and, while the revealed clue is
// zero, keeps revealing its neighbors.
func (g *BoardGenerator) flood(board *types.Board, clues []int, start int) {
	queue := []int{start}
	seen := []int{start}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		board.Cells[i] = types.Revealed(clues[i])
		if clues[i] != 0 {
			continue
		}
		r, c := i/g.width, i%g.width
		for _, n := range board.Neighbors(types.Cell{Row: r, Col: c}) {
			ni := n.Row*g.width + n.Col
			if !slice.Contain(seen, ni) {
				seen = append(seen, ni)
				queue = append(queue, ni)
			}
		}
	}
}
