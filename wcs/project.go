// Package wcs converts between the helioprojective-Cartesian sky frame
// (arcseconds, as seen by the observer) and heliographic coordinates
// fixed to the solar surface (degrees), via heliocentric-Cartesian
// distances. Points beyond the visible disk convert to NaN, never to an
// error, so geometric edge cases flow through arithmetic untouched.
package wcs

import (
	"math"

	"github.com/prateekiiest/heliorot/solar"
)

// Projection converts coordinate pairs assuming a spherical Sun of
// radius RSun meters. The zero value uses the photospheric radius.
type Projection struct {
	RSun float64
}

func (p Projection) rsun() float64 {
	if p.RSun > 0 {
		return p.RSun
	}
	return solar.RadiusMeters
}

// HPCToHG converts helioprojective x, y (arcsec) to heliographic
// longitude, latitude (degrees). b0 and l0 are the sub-observer
// latitude and longitude in degrees, dsun the observer distance in
// meters. Off-disk inputs yield NaN.
func (p Projection) HPCToHG(xs, ys []float64, b0, l0, dsun float64) (lon, lat []float64) {
	lon = make([]float64, len(xs))
	lat = make([]float64, len(xs))
	for i := range xs {
		cx, cy, cz := p.hpcToHCC(xs[i], ys[i], dsun)
		lon[i], lat[i] = p.hccToHG(cx, cy, cz, b0, l0)
	}
	return lon, lat
}

// HGToHPC converts heliographic longitude, latitude (degrees) back to
// helioprojective x, y (arcsec). With occultation set, points on the far
// side of the disk yield NaN.
func (p Projection) HGToHPC(lons, lats []float64, b0, l0, dsun float64, occultation bool) (xs, ys []float64) {
	xs = make([]float64, len(lons))
	ys = make([]float64, len(lons))
	for i := range lons {
		cx, cy, cz := p.hgToHCC(lons[i], lats[i], b0, l0, occultation)
		xs[i], ys[i] = p.hccToHPC(cx, cy, cz, dsun)
	}
	return xs, ys
}

// hpcToHCC projects a sky coordinate onto the near side of the solar
// sphere, returning heliocentric-Cartesian meters. The discriminant goes
// negative beyond the limb, and the square root carries NaN downstream.
func (p Projection) hpcToHCC(x, y, dsun float64) (rx, ry, rz float64) {
	xr := x / 3600 * math.Pi / 180
	yr := y / 3600 * math.Pi / 180

	cosx, sinx := math.Cos(xr), math.Sin(xr)
	cosy, siny := math.Cos(yr), math.Sin(yr)

	rsun := p.rsun()
	q := dsun * cosy * cosx
	dist := q - math.Sqrt(q*q-dsun*dsun+rsun*rsun)

	rx = dist * cosy * sinx
	ry = dist * siny
	rz = dsun - dist*cosy*cosx
	return rx, ry, rz
}

// hccToHG rotates heliocentric-Cartesian meters into heliographic
// longitude and latitude in degrees for the given sub-observer point.
func (p Projection) hccToHG(x, y, z, b0, l0 float64) (lon, lat float64) {
	b0r := b0 * math.Pi / 180
	cosb, sinb := math.Cos(b0r), math.Sin(b0r)

	hecr := math.Sqrt(x*x + y*y + z*z)
	lon = math.Atan2(x, z*cosb-y*sinb)*180/math.Pi + l0
	lat = math.Asin((y*cosb+z*sinb)/hecr) * 180 / math.Pi
	return lon, lat
}

// hgToHCC places a heliographic point on the solar sphere in
// heliocentric-Cartesian meters. With occultation, far-side points
// (z < 0) are replaced by NaN.
func (p Projection) hgToHCC(lon, lat, b0, l0 float64, occultation bool) (x, y, z float64) {
	lonr := (lon - l0) * math.Pi / 180
	latr := lat * math.Pi / 180
	b0r := b0 * math.Pi / 180

	cosb, sinb := math.Cos(b0r), math.Sin(b0r)
	coslat, sinlat := math.Cos(latr), math.Sin(latr)
	coslon, sinlon := math.Cos(lonr), math.Sin(lonr)

	r := p.rsun()
	x = r * coslat * sinlon
	y = r * (sinlat*cosb - coslat*coslon*sinb)
	z = r * (sinlat*sinb + coslat*coslon*cosb)

	if occultation && z < 0 {
		x, y = math.NaN(), math.NaN()
	}
	return x, y, z
}

// hccToHPC projects heliocentric-Cartesian meters back into the sky
// plane, returning arcseconds.
func (p Projection) hccToHPC(x, y, z, dsun float64) (hpcx, hpcy float64) {
	zeta := dsun - z
	dist := math.Sqrt(x*x + y*y + zeta*zeta)

	hpcx = math.Atan2(x, zeta) * 180 / math.Pi * 3600
	hpcy = math.Asin(y/dist) * 180 / math.Pi * 3600
	return hpcx, hpcy
}
