// Package heliorot applies solar differential rotation to 2-D solar
// images. Given a map observed at one time, Warp resamples it to show
// the disk as it would appear a time interval later (or earlier),
// masking features that rotate beyond the visible limb.
package heliorot

import (
	"errors"
	"math"
	"time"

	"github.com/prateekiiest/heliorot/diffrot"
	"github.com/prateekiiest/heliorot/solar"
	"github.com/prateekiiest/heliorot/solarmap"
	"github.com/prateekiiest/heliorot/warp"
)

// ErrMissingDateMeta reports a map whose metadata carries none of the
// recognized observation-date keys. The warp itself has completed by the
// time this surfaces; the result is withheld rather than returned with a
// stale date.
var ErrMissingDateMeta = errors.New("map metadata has no recognized date key")

type config struct {
	model    diffrot.Model
	day      diffrot.DayType
	geometry func(time.Time) solar.Geometry
	workers  int
}

// Option adjusts how a warp is evaluated.
type Option func(*config)

// WithModel selects the differential rotation profile. Default Howard.
func WithModel(m diffrot.Model) Option { return func(c *config) { c.model = m } }

// WithDayType selects the rotation time frame. Default Synodic.
func WithDayType(d diffrot.DayType) Option { return func(c *config) { c.day = d } }

// WithGeometryFunc substitutes the observer-geometry source, e.g. a
// solar.GeometryCache shared across a frame sequence.
func WithGeometryFunc(fn func(time.Time) solar.Geometry) Option {
	return func(c *config) { c.geometry = fn }
}

// WithWorkers caps the resampling worker count.
func WithWorkers(n int) Option { return func(c *config) { c.workers = n } }

// Warp returns a new map showing m differentially rotated by dt. The
// input map is not modified. Destination pixels whose source lies off
// the visible disk are NaN in the data and set in the mask.
func Warp(m *solarmap.Map, dt time.Duration, opts ...Option) (*solarmap.Map, error) {
	cfg := config{
		model:    diffrot.Howard,
		day:      diffrot.Synodic,
		geometry: solar.ObserverGeometry,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reject an unrecognized model before any pixel work. The per-pixel
	// callback cannot surface errors, so the rotation arguments must be
	// known good before resampling starts.
	if _, err := diffrot.ShiftAll(0, nil, cfg.model, cfg.day); err != nil {
		return nil, err
	}

	// A map without date metadata still warps, against "now", so the
	// failure below reports the metadata problem rather than hiding it
	// behind a default-dated result. A date key that is present but
	// corrupt is a caller error and fails here.
	date, dateErr := m.Date()
	if dateErr != nil {
		if !errors.Is(dateErr, solarmap.ErrNoDate) {
			return nil, dateErr
		}
		date = time.Now().UTC()
	}

	// Geometry at both endpoint times, fixed once so the per-pixel
	// callback stays pure and concurrency-safe. The warp executor wants
	// the inverse map, so the rotation runs from date+dt back to date.
	tstart := date.Add(dt)
	tend := date
	vstart := cfg.geometry(tstart)
	vend := cfg.geometry(tend)

	norm := toNorm(m.Data, m.Mask)

	inverse := func(px, py float64) (float64, float64) {
		x, y := m.PixelToSky(px, py)
		nx, ny, _ := diffrot.RotateAll(
			[]float64{x}, []float64{y}, tstart, tend,
			diffrot.WithModel(cfg.model),
			diffrot.WithDayType(cfg.day),
			diffrot.WithStartGeometry(vstart),
			diffrot.WithEndGeometry(vend),
			diffrot.WithOccultation(true),
		)
		return m.SkyToPixel(nx[0], ny[0])
	}

	warped, err := warp.Resample(norm, inverse, cfg.workers)
	if err != nil {
		return nil, err
	}

	out := unNorm(warped, m.Data)

	mask := make([]bool, len(out.Pix))
	masked := false
	for i, v := range out.Pix {
		if math.IsNaN(v) {
			mask[i] = true
			masked = true
		}
	}
	if !masked {
		mask = nil
	}

	meta := m.Meta.Clone()
	updated := false
	for _, key := range solarmap.DateKeys {
		if _, ok := meta[key]; ok {
			meta[key] = date.Add(dt).UTC().Format(solarmap.DateFormat)
			updated = true
		}
	}
	if !updated {
		return nil, ErrMissingDateMeta
	}

	res, err := solarmap.New(out, meta)
	if err != nil {
		return nil, err
	}
	return res.WithMask(mask)
}
