// Package solarmap holds a 2-D solar image together with its metadata:
// the sample grid, an optional mask, the observation date, and the
// linear pixel-to-sky geometry read from FITS-style header keys.
package solarmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/prateekiiest/heliorot/grid"
)

// ErrNoDate reports metadata without any recognized observation-date key.
var ErrNoDate = errors.New("no observation date in map metadata")

// DateFormat is the FITS-style timestamp layout written into metadata.
const DateFormat = "2006-01-02T15:04:05.000"

// DateKeys are the recognized spellings of the observation-date key.
var DateKeys = []string{"date-obs", "date_obs"}

var dateLayouts = []string{
	DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Meta is a FITS-like header mapping. Keys are lowercase by convention.
type Meta map[string]any

// Clone returns an independent shallow copy of m.
func (m Meta) Clone() Meta {
	c := make(Meta, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Float reads a numeric header value.
func (m Meta) Float(key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Map is a caller-owned solar image. Operations on it produce new maps;
// nothing in this package mutates an existing one.
type Map struct {
	Data *grid.Grid
	Mask []bool // optional, len W*H, true = masked
	Meta Meta
}

// New builds a map from a sample grid and header metadata.
func New(data *grid.Grid, meta Meta) (*Map, error) {
	if data == nil {
		return nil, errors.New("solarmap: nil data grid")
	}
	if meta == nil {
		meta = Meta{}
	}
	return &Map{Data: data, Meta: meta}, nil
}

// WithMask returns m with the mask attached. The mask length must match
// the grid.
func (m *Map) WithMask(mask []bool) (*Map, error) {
	if mask != nil && len(mask) != len(m.Data.Pix) {
		return nil, fmt.Errorf("solarmap: mask length %d does not match %d samples",
			len(mask), len(m.Data.Pix))
	}
	return &Map{Data: m.Data, Mask: mask, Meta: m.Meta}, nil
}

// Date returns the observation date parsed from the first recognized
// date key, or ErrNoDate when none is present.
func (m *Map) Date() (time.Time, error) {
	for _, key := range DateKeys {
		v, ok := m.Meta[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			if t, ok := v.(time.Time); ok {
				return t, nil
			}
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("solarmap: unparseable %s value %q", key, s)
	}
	return time.Time{}, ErrNoDate
}

// scale returns the plate scale in arcsec/pixel for axis n (1 or 2).
func (m *Map) scale(n int) float64 {
	if v, ok := m.Meta.Float(fmt.Sprintf("cdelt%d", n)); ok && v != 0 {
		return v
	}
	return 1
}

// refPixel returns the FITS 1-based reference pixel for axis n,
// defaulting to the frame centre.
func (m *Map) refPixel(n int) float64 {
	if v, ok := m.Meta.Float(fmt.Sprintf("crpix%d", n)); ok {
		return v
	}
	length := m.Data.W
	if n == 2 {
		length = m.Data.H
	}
	return (float64(length) + 1) / 2
}

// refValue returns the sky coordinate at the reference pixel for axis n.
func (m *Map) refValue(n int) float64 {
	v, _ := m.Meta.Float(fmt.Sprintf("crval%d", n))
	return v
}

// PixelToSky converts 0-based pixel coordinates to helioprojective
// arcseconds using the linear WCS terms.
func (m *Map) PixelToSky(px, py float64) (x, y float64) {
	x = m.refValue(1) + m.scale(1)*(px+1-m.refPixel(1))
	y = m.refValue(2) + m.scale(2)*(py+1-m.refPixel(2))
	return x, y
}

// SkyToPixel converts helioprojective arcseconds to 0-based pixel
// coordinates. NaN passes through.
func (m *Map) SkyToPixel(x, y float64) (px, py float64) {
	px = (x-m.refValue(1))/m.scale(1) + m.refPixel(1) - 1
	py = (y-m.refValue(2))/m.scale(2) + m.refPixel(2) - 1
	return px, py
}
