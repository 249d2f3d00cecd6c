package solver

import (
	"context"
	"fmt"
	"math/big"
)

// checkInterval is how many search nodes pass between context checks.
const checkInterval = 1024

// tally is the result of enumerating one region: how many consistent
// configurations use exactly k mines, and for each cell, in how many of
// those k-mine configurations that cell is a mine. Counts are kept as
// big integers so aggregation never leaves exact arithmetic.
type tally struct {
	hist   []*big.Int   // hist[k] = configurations using k mines
	byCell [][]*big.Int // byCell[i][k] = k-mine configurations where cell i is a mine
}

func newTally(n int) *tally {
	t := &tally{
		hist:   make([]*big.Int, n+1),
		byCell: make([][]*big.Int, n),
	}
	for k := range t.hist {
		t.hist[k] = new(big.Int)
	}
	for i := range t.byCell {
		t.byCell[i] = make([]*big.Int, n+1)
		for k := range t.byCell[i] {
			t.byCell[i][k] = new(big.Int)
		}
	}
	return t
}

// empty reports whether no configuration satisfied the region's rules.
func (t *tally) empty() bool {
	for _, c := range t.hist {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// enumerator walks every mine assignment of one region's cells in a fixed
// depth-first order, pruning any branch where a rule can no longer reach
// its target. Working memory is private to the region, so regions can be
// enumerated concurrently with no locking.
type enumerator struct {
	reg       *region
	cellRules [][]int // rules touching each cell
	placed    []int   // mines placed so far per rule
	assigned  []int   // cells decided so far per rule
	mine      []bool  // current partial assignment
	out       *tally
	nodes     int
	ctx       context.Context
}

// enumerate counts all consistent configurations of a region. The context
// is checked at search decision points; cancellation aborts enumeration
// with ErrTimeout.
func enumerate(ctx context.Context, reg *region) (*tally, error) {
	n := len(reg.cells)
	e := &enumerator{
		reg:       reg,
		cellRules: make([][]int, n),
		placed:    make([]int, len(reg.rules)),
		assigned:  make([]int, len(reg.rules)),
		mine:      make([]bool, n),
		out:       newTally(n),
		ctx:       ctx,
	}
	for ri, rule := range reg.rules {
		for _, ci := range rule.cells {
			e.cellRules[ci] = append(e.cellRules[ci], ri)
		}
	}
	if err := e.search(0, 0); err != nil {
		return nil, err
	}
	return e.out, nil
}

func (e *enumerator) search(idx, mines int) error {
	e.nodes++
	if e.nodes%checkInterval == 0 {
		select {
		case <-e.ctx.Done():
			return fmt.Errorf("%w: %v", ErrTimeout, e.ctx.Err())
		default:
		}
	}

	if idx == len(e.reg.cells) {
		// Every rule is fully assigned here, and the pruning bounds below
		// only admit assignments hitting each rule's target exactly.
		e.record(mines)
		return nil
	}

	for _, isMine := range [2]bool{true, false} {
		e.mine[idx] = isMine
		ok := true
		for _, ri := range e.cellRules[idx] {
			e.assigned[ri]++
			if isMine {
				e.placed[ri]++
			}
			rule := e.reg.rules[ri]
			free := len(rule.cells) - e.assigned[ri]
			if e.placed[ri] > rule.mines || e.placed[ri]+free < rule.mines {
				ok = false
			}
		}

		var err error
		if ok {
			if isMine {
				err = e.search(idx+1, mines+1)
			} else {
				err = e.search(idx+1, mines)
			}
		}

		for _, ri := range e.cellRules[idx] {
			e.assigned[ri]--
			if isMine {
				e.placed[ri]--
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var one = big.NewInt(1)

func (e *enumerator) record(mines int) {
	e.out.hist[mines].Add(e.out.hist[mines], one)
	for i, isMine := range e.mine {
		if isMine {
			e.out.byCell[i][mines].Add(e.out.byCell[i][mines], one)
		}
	}
}
