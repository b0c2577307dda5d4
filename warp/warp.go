// Package warp resamples a grid through an arbitrary inverse coordinate
// mapping, the way a renderer samples a texture per output pixel.
package warp

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/prateekiiest/heliorot/grid"
)

// InverseMap returns, for a destination pixel coordinate, the source
// pixel coordinate to sample. It must be safe for concurrent calls:
// the executor fans destination rows out across workers. Non-finite
// results mark the destination sample as missing.
type InverseMap func(px, py float64) (sx, sy float64)

// Resample warps src into a new grid of the same shape, sampling the
// source bilinearly at inv(x, y) for every destination pixel. Source
// coordinates that are NaN or fall outside the grid produce NaN output.
func Resample(src *grid.Grid, inv InverseMap, workers int) (*grid.Grid, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	dst := grid.New(src.W, src.H)

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < src.H; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < src.W; x++ {
				sx, sy := inv(float64(x), float64(y))
				dst.Set(x, y, bilinear(src, sx, sy))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}

// bilinear samples src at the fractional coordinate (sx, sy). Any NaN
// coordinate or NaN corner poisons the result. Coordinates within half
// a pixel of the border clamp onto it, so edge pixels survive the
// floating-point jitter of a near-identity mapping.
func bilinear(src *grid.Grid, sx, sy float64) float64 {
	if math.IsNaN(sx) || math.IsNaN(sy) {
		return math.NaN()
	}
	if sx < -0.5 || sx > float64(src.W-1)+0.5 || sy < -0.5 || sy > float64(src.H-1)+0.5 {
		return math.NaN()
	}
	sx = math.Min(math.Max(sx, 0), float64(src.W-1))
	sy = math.Min(math.Max(sy, 0), float64(src.H-1))

	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	x1, y1 := x0+1, y0+1
	if x1 > src.W-1 {
		x1 = src.W - 1
	}
	if y1 > src.H-1 {
		y1 = src.H - 1
	}

	fx := sx - float64(x0)
	fy := sy - float64(y0)

	top := src.At(x0, y0)*(1-fx) + src.At(x1, y0)*fx
	bot := src.At(x0, y1)*(1-fx) + src.At(x1, y1)*fx
	return top*(1-fy) + bot*fy
}
