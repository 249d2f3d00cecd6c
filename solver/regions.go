package solver

import (
	"fmt"
	"sort"

	"mine_probs_go/types"
)

// region is a maximal group of unrevealed cells linked through shared
// constraints. Each region is solvable independently of the others. cells
// is kept in row-major order so enumeration is deterministic; rules index
// into cells.
type region struct {
	cells []types.Cell
	rules []localRule
}

// localRule is a constraint rewritten against a region's cell indices.
type localRule struct {
	cells []int
	mines int
}

// partition splits the constrained cells into connected components of the
// constraint graph. Two cells are connected when some constraint references
// both. Regions come back ordered by their first cell so repeated solves
// see them in the same order.
func partition(cons []constraint) []*region {
	// Index every constrained cell.
	index := make(map[types.Cell]int)
	var cells []types.Cell
	for _, con := range cons {
		for _, c := range con.cells {
			if _, ok := index[c]; !ok {
				index[c] = len(cells)
				cells = append(cells, c)
			}
		}
	}

	// Adjacency through shared constraints.
	adj := make([][]int, len(cells))
	for _, con := range cons {
		for i := 0; i < len(con.cells)-1; i++ {
			u := index[con.cells[i]]
			for j := i + 1; j < len(con.cells); j++ {
				v := index[con.cells[j]]
				adj[u] = append(adj[u], v)
				adj[v] = append(adj[v], u)
			}
		}
	}

	// BFS connected components.
	comp := make([]int, len(cells))
	for i := range comp {
		comp[i] = -1
	}
	ncomp := 0
	for start := range cells {
		if comp[start] != -1 {
			continue
		}
		queue := []int{start}
		comp[start] = ncomp
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if comp[next] == -1 {
					comp[next] = ncomp
					queue = append(queue, next)
				}
			}
		}
		ncomp++
	}

	regions := make([]*region, ncomp)
	for i := range regions {
		regions[i] = &region{}
	}
	for i, c := range cells {
		reg := regions[comp[i]]
		reg.cells = append(reg.cells, c)
	}
	for _, reg := range regions {
		sort.Slice(reg.cells, func(i, j int) bool {
			a, b := reg.cells[i], reg.cells[j]
			if a.Row != b.Row {
				return a.Row < b.Row
			}
			return a.Col < b.Col
		})
	}

	// Attach each constraint to the region holding its cells. A constraint
	// spanning two regions contradicts the construction above and means a
	// bug in this package, not bad input.
	for _, con := range cons {
		id := comp[index[con.cells[0]]]
		for _, c := range con.cells[1:] {
			if comp[index[c]] != id {
				panic(fmt.Sprintf("constraint %v spans regions %d and %d",
					con.cells, id, comp[index[c]]))
			}
		}
		reg := regions[id]
		rule := localRule{cells: make([]int, len(con.cells)), mines: con.mines}
		for i, c := range con.cells {
			rule.cells[i] = cellIndexIn(reg.cells, c)
		}
		reg.rules = append(reg.rules, rule)
	}

	sort.Slice(regions, func(i, j int) bool {
		a, b := regions[i].cells[0], regions[j].cells[0]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return regions
}

// cellIndexIn finds c in the sorted cell list.
func cellIndexIn(cells []types.Cell, c types.Cell) int {
	i := sort.Search(len(cells), func(i int) bool {
		x := cells[i]
		if x.Row != c.Row {
			return x.Row >= c.Row
		}
		return x.Col >= c.Col
	})
	if i == len(cells) || cells[i] != c {
		panic(fmt.Sprintf("cell %v not found in its region", c))
	}
	return i
}

// exteriorCells returns the unrevealed cells referenced by no constraint,
// in row-major order.
func exteriorCells(b *types.Board, regions []*region) []types.Cell {
	constrained := make(map[types.Cell]bool)
	for _, reg := range regions {
		for _, c := range reg.cells {
			constrained[c] = true
		}
	}
	var exterior []types.Cell
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			cell := types.Cell{Row: r, Col: c}
			if b.At(r, c) == types.Unrevealed && !constrained[cell] {
				exterior = append(exterior, cell)
			}
		}
	}
	return exterior
}
