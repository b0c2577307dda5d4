package grid

import "math"

// Grid is a dense 2-D float64 raster stored row-major.
type Grid struct {
	W, H int
	Pix  []float64
}

// New returns a zero-filled W×H grid.
func New(w, h int) *Grid {
	return &Grid{W: w, H: h, Pix: make([]float64, w*h)}
}

// FromRows builds a grid from row slices. All rows must share a length.
func FromRows(rows [][]float64) *Grid {
	h := len(rows)
	if h == 0 {
		return New(0, 0)
	}
	w := len(rows[0])
	g := New(w, h)
	for y, row := range rows {
		copy(g.Pix[y*w:(y+1)*w], row)
	}
	return g
}

// At returns the sample at (x, y). No bounds check.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.W+x]
}

// Set stores v at (x, y). No bounds check.
func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.W+x] = v
}

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Pix: make([]float64, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// MinMax returns the smallest and largest finite samples.
// NaN and infinite samples are skipped. If no finite sample exists
// both results are NaN.
func (g *Grid) MinMax() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range g.Pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}
