// Package solver computes exact per-cell mine probabilities for a
// partially revealed minesweeper board.
//
// Every revealed clue is turned into a constraint over its unrevealed
// neighbors, the constrained cells are split into independent regions,
// each region's consistent mine configurations are enumerated, and the
// region results are combined with the global mine budget. Probabilities
// are exact: all counting is done with big integers and divided only at
// the end.
package solver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"mine_probs_go/types"
)

// Solver computes probability maps for board snapshots. A Solver holds
// only configuration; every Solve call derives its state fresh from the
// given board, so one Solver may be reused across calls.
type Solver struct {
	workers int
	timeout time.Duration
}

func NewSolver() *Solver {
	return &Solver{
		workers: runtime.NumCPU(),
	}
}

// SetWorkers caps how many regions are enumerated concurrently.
func (s *Solver) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// SetTimeout bounds the total time spent enumerating. Zero means no
// limit beyond the caller's context.
func (s *Solver) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Solve returns the probability that each unrevealed cell holds a mine,
// consistent with every clue on the board and the board's total mine
// count. The map covers exactly the unrevealed cells; flagged cells are
// treated as certain mines and omitted.
//
// Solve is a pure function of the board: it keeps no state between calls
// and the same snapshot always yields the same map. On failure it returns
// one of ErrInvalidBoard, ErrUnsatisfiable or ErrTimeout.
func (s *Solver) Solve(ctx context.Context, b *types.Board) (map[types.Cell]float64, error) {
	if b == nil || b.Width <= 0 || b.Height <= 0 || b.Mines < 0 {
		return nil, fmt.Errorf("%w: bad dimensions or mine count", ErrInvalidBoard)
	}
	if len(b.Cells) != b.Width*b.Height {
		return nil, fmt.Errorf("%w: board is %dx%d but has %d cells",
			ErrInvalidBoard, b.Width, b.Height, len(b.Cells))
	}

	cons, err := extractConstraints(b)
	if err != nil {
		return nil, err
	}

	rem := b.Mines - b.FlaggedCount()
	if rem < 0 || rem > b.UnrevealedCount() {
		return nil, fmt.Errorf("%w: %d mines left for %d unrevealed cells",
			ErrUnsatisfiable, rem, b.UnrevealedCount())
	}

	regions := partition(cons)
	exterior := exteriorCells(b, regions)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// Regions are independent, so enumerate them concurrently and join
	// before aggregating. Each worker writes only its own slot.
	tallies := make([]*tally, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, reg := range regions {
		g.Go(func() error {
			t, err := enumerate(gctx, reg)
			if err != nil {
				return err
			}
			tallies[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(regions, tallies, exterior, rem)
}
