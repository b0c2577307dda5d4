package heliorot

import (
	"math"

	"github.com/prateekiiest/heliorot/grid"
)

// toNorm rescales g linearly onto [0, 1]: shifted up by |min| when the
// minimum is negative, then divided by the shifted maximum. Masked
// samples are excluded from the statistics and carried as NaN so they
// surface as masked output after resampling.
func toNorm(g *grid.Grid, mask []bool) *grid.Grid {
	out := g.Clone()
	if mask != nil {
		for i, m := range mask {
			if m {
				out.Pix[i] = math.NaN()
			}
		}
	}

	min, max := out.MinMax()
	if min < 0 {
		shift := math.Abs(min)
		for i := range out.Pix {
			out.Pix[i] += shift
		}
		max += shift
	}
	for i := range out.Pix {
		out.Pix[i] /= max
	}
	return out
}

// unNorm inverts toNorm using the min/max of the original grid, so an
// identity warp reconstructs the original range up to float error.
func unNorm(g *grid.Grid, original *grid.Grid) *grid.Grid {
	min, max := original.MinMax()
	level := 0.0
	if min <= 0 {
		level = math.Abs(min)
	}

	out := g.Clone()
	for i := range out.Pix {
		out.Pix[i] = out.Pix[i]*(max+level) - level
	}
	return out
}
