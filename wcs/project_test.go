package wcs

import (
	"math"
	"testing"
)

const (
	testB0   = 7.2
	testDSun = 1.0053 * 1.49597870700e11
)

func TestRoundTrip(t *testing.T) {
	// On-disk sky coordinates survive HPC -> HG -> HPC unchanged.
	var p Projection
	xs := []float64{0, -570, 300, 10, -802}
	ys := []float64{0, 120, -450, 880, -100}

	lon, lat := p.HPCToHG(xs, ys, testB0, 0, testDSun)
	bx, by := p.HGToHPC(lon, lat, testB0, 0, testDSun, false)

	for i := range xs {
		if math.Abs(bx[i]-xs[i]) > 1e-6 || math.Abs(by[i]-ys[i]) > 1e-6 {
			t.Errorf("point (%v, %v) round-tripped to (%v, %v)",
				xs[i], ys[i], bx[i], by[i])
		}
	}
}

func TestDiskCentre(t *testing.T) {
	// The disk centre maps to the sub-observer point.
	var p Projection
	lon, lat := p.HPCToHG([]float64{0}, []float64{0}, testB0, 30, testDSun)
	if math.Abs(lon[0]-30) > 1e-9 {
		t.Errorf("longitude = %v, want the sub-observer longitude 30", lon[0])
	}
	if math.Abs(lat[0]-testB0) > 1e-9 {
		t.Errorf("latitude = %v, want the sub-observer latitude %v", lat[0], testB0)
	}
}

func TestOffDiskNaN(t *testing.T) {
	// Beyond the ~960 arcsec limb there is no surface intersection.
	var p Projection
	lon, lat := p.HPCToHG([]float64{1200, -5000}, []float64{0, 100}, testB0, 0, testDSun)
	for i := range lon {
		if !math.IsNaN(lon[i]) || !math.IsNaN(lat[i]) {
			t.Errorf("off-disk input %d gave (%v, %v), want NaN", i, lon[i], lat[i])
		}
	}
}

func TestOccultation(t *testing.T) {
	var p Projection

	// A far-side longitude is hidden when occultation is on...
	xs, ys := p.HGToHPC([]float64{170}, []float64{10}, 0, 0, testDSun, true)
	if !math.IsNaN(xs[0]) || !math.IsNaN(ys[0]) {
		t.Errorf("far-side point projected to (%v, %v), want NaN", xs[0], ys[0])
	}

	// ...and projects through the disk when it is off.
	xs, ys = p.HGToHPC([]float64{170}, []float64{10}, 0, 0, testDSun, false)
	if math.IsNaN(xs[0]) || math.IsNaN(ys[0]) {
		t.Error("far-side point should still project with occultation off")
	}
}

func TestNaNPropagates(t *testing.T) {
	var p Projection
	lon, lat := p.HPCToHG([]float64{math.NaN()}, []float64{0}, testB0, 0, testDSun)
	if !math.IsNaN(lon[0]) || !math.IsNaN(lat[0]) {
		t.Errorf("NaN input gave (%v, %v)", lon[0], lat[0])
	}
	xs, ys := p.HGToHPC(lon, lat, testB0, 0, testDSun, true)
	if !math.IsNaN(xs[0]) || !math.IsNaN(ys[0]) {
		t.Errorf("NaN heliographic input gave (%v, %v)", xs[0], ys[0])
	}
}
