package solver

import (
	"math/big"

	"mine_probs_go/types"
)

// aggregate combines per-region tallies with the global mine budget into
// the final per-cell probabilities. rem is the mine budget left after
// subtracting flagged cells. All weighting happens in exact big-integer
// arithmetic; the only float operation is the final division per cell.
func aggregate(regions []*region, tallies []*tally, exterior []types.Cell, rem int) (map[types.Cell]float64, error) {
	ext := len(exterior)

	// prefix[i] is the convolution of the first i region histograms,
	// suffix[i] of the histograms from i on. prefix[len]*C(E, rem-k)
	// summed over k is the global weight.
	prefix := make([][]*big.Int, len(regions)+1)
	suffix := make([][]*big.Int, len(regions)+1)
	prefix[0] = []*big.Int{big.NewInt(1)}
	suffix[len(regions)] = []*big.Int{big.NewInt(1)}
	for i, t := range tallies {
		prefix[i+1] = convolve(prefix[i], t.hist)
	}
	for i := len(regions) - 1; i >= 0; i-- {
		suffix[i] = convolve(tallies[i].hist, suffix[i+1])
	}
	global := prefix[len(regions)]

	total := new(big.Int)
	for k, w := range global {
		total.Add(total, new(big.Int).Mul(w, binomial(ext, rem-k)))
	}
	if total.Sign() == 0 {
		return nil, ErrUnsatisfiable
	}

	probs := make(map[types.Cell]float64, ext)
	for r, reg := range regions {
		others := convolve(prefix[r], suffix[r+1])

		// weight[k] is the number of ways the rest of the board can absorb
		// the budget left over when this region uses exactly k mines.
		weight := make([]*big.Int, len(tallies[r].hist))
		for k := range weight {
			w := new(big.Int)
			for j, o := range others {
				w.Add(w, new(big.Int).Mul(o, binomial(ext, rem-k-j)))
			}
			weight[k] = w
		}

		for i, cell := range reg.cells {
			num := new(big.Int)
			for k, c := range tallies[r].byCell[i] {
				if c.Sign() != 0 {
					num.Add(num, new(big.Int).Mul(c, weight[k]))
				}
			}
			probs[cell] = ratio(num, total)
		}
	}

	if ext > 0 {
		// A fixed exterior cell is a mine in C(E-1, kE-1) of the
		// C(E, kE) exterior choices.
		num := new(big.Int)
		for k, w := range global {
			num.Add(num, new(big.Int).Mul(w, binomial(ext-1, rem-k-1)))
		}
		p := ratio(num, total)
		for _, cell := range exterior {
			probs[cell] = p
		}
	}
	return probs, nil
}

// convolve multiplies two mine-count distributions.
func convolve(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			if y.Sign() == 0 {
				continue
			}
			out[i+j].Add(out[i+j], tmp.Mul(x, y))
		}
	}
	return out
}

var zero = new(big.Int)

// binomial returns C(n, k), or zero when k is out of range.
func binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return zero
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

func ratio(num, den *big.Int) float64 {
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}
