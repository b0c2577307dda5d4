package diffrot

import (
	"fmt"
	"time"

	"github.com/soniakeys/unit"

	"github.com/prateekiiest/heliorot/solar"
	"github.com/prateekiiest/heliorot/wcs"
)

// Projector converts between the helioprojective-Cartesian sky frame
// (arcsec) and heliographic coordinates (degrees). Off-disk points are
// represented as NaN, never as an error.
type Projector interface {
	HPCToHG(xs, ys []float64, b0, l0, dsun float64) (lon, lat []float64)
	HGToHPC(lons, lats []float64, b0, l0, dsun float64, occultation bool) (xs, ys []float64)
}

type config struct {
	model       Model
	day         DayType
	proj        Projector
	geometry    func(time.Time) solar.Geometry
	start, end  *solar.Geometry
	occultation bool
}

// Option adjusts how a coordinate rotation is evaluated.
type Option func(*config)

// WithModel selects the rotation rate profile. Default Howard.
func WithModel(m Model) Option { return func(c *config) { c.model = m } }

// WithDayType selects the time reference frame. Default Synodic,
// matching an Earth-bound observer following apparent motion.
func WithDayType(d DayType) Option { return func(c *config) { c.day = d } }

// WithProjector substitutes the projection service.
func WithProjector(p Projector) Option { return func(c *config) { c.proj = p } }

// WithGeometryFunc substitutes the observer-geometry source, e.g. a
// solar.GeometryCache.
func WithGeometryFunc(fn func(time.Time) solar.Geometry) Option {
	return func(c *config) { c.geometry = fn }
}

// WithStartGeometry overrides the observer geometry at the start time.
func WithStartGeometry(g solar.Geometry) Option {
	return func(c *config) { c.start = &g }
}

// WithEndGeometry overrides the observer geometry at the end time.
func WithEndGeometry(g solar.Geometry) Option {
	return func(c *config) { c.end = &g }
}

// WithOccultation maps points that rotate onto the far side of the disk
// to NaN instead of projecting them through the Sun.
func WithOccultation(on bool) Option {
	return func(c *config) { c.occultation = on }
}

// Rotate advances the sky coordinate (x, y), observed at tstart, to its
// apparent position at tend under solar differential rotation. tend may
// precede tstart. Coordinates off the visible disk come back NaN.
func Rotate(x, y unit.Angle, tstart, tend time.Time, opts ...Option) (unit.Angle, unit.Angle, error) {
	xs, ys, err := RotateAll([]float64{x.Sec()}, []float64{y.Sec()}, tstart, tend, opts...)
	if err != nil {
		return 0, 0, err
	}
	return unit.AngleFromSec(xs[0]), unit.AngleFromSec(ys[0]), nil
}

// RotateAll rotates paired helioprojective coordinates given in
// arcseconds. It fails with ErrShapeMismatch when the pair lengths
// differ, before any projection is evaluated.
//
// The forward projection uses the observer geometry at tstart and the
// inverse projection the geometry at tend. The two are deliberately
// distinct; collapsing them produces plausible but wrong rotations.
func RotateAll(xs, ys []float64, tstart, tend time.Time, opts ...Option) ([]float64, []float64, error) {
	cfg := config{
		model:    Howard,
		day:      Synodic,
		proj:     wcs.Projection{},
		geometry: solar.ObserverGeometry,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.model.valid() {
		return nil, nil, ErrInvalidModel
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: %d x values, %d y values",
			ErrShapeMismatch, len(xs), len(ys))
	}

	interval := tend.Sub(tstart)

	vstart := cfg.start
	if vstart == nil {
		g := cfg.geometry(tstart)
		vstart = &g
	}
	vend := cfg.end
	if vend == nil {
		g := cfg.geometry(tend)
		vend = &g
	}

	lon, lat := cfg.proj.HPCToHG(xs, ys,
		vstart.B0.Deg(), vstart.L0.Deg(), vstart.DSunMeters())

	shift, err := ShiftAll(interval, lat, cfg.model, cfg.day)
	if err != nil {
		return nil, nil, err
	}
	for i := range lon {
		lon[i] += shift[i]
	}

	nx, ny := cfg.proj.HGToHPC(lon, lat,
		vend.B0.Deg(), vend.L0.Deg(), vend.DSunMeters(), cfg.occultation)
	return nx, ny, nil
}
