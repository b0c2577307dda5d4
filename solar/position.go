// Package solar computes low-precision solar ephemerides and the
// observer-geometry angles (P, B0, semi-diameter) used to project sky
// coordinates onto the rotating solar disk. The series are truncated
// versions of Newcomb's Sun, good to about one second of time.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

const (
	// Epoch is the reference Julian day of the series (1900 January 0.5).
	Epoch = 2415020.0

	// AUMeters is one astronomical unit in meters.
	AUMeters = 1.49597870700e11

	// RadiusMeters is the photospheric solar radius in meters.
	RadiusMeters = 6.95508e8
)

// Ephemeris holds apparent solar position parameters for one instant.
type Ephemeris struct {
	MeanLongitude     unit.Angle // mean equinox of date
	ApparentLongitude unit.Angle // true equinox of date
	Obliquity         unit.Angle // true obliquity of the ecliptic
	RA                unit.RA    // apparent right ascension, [0, 24h)
	Dec               unit.Angle // apparent declination
}

// JulianCenturies returns centuries of 36525 days elapsed at t since Epoch.
func JulianCenturies(t time.Time) float64 {
	return (julian.TimeToJD(t.UTC()) - Epoch) / 36525
}

func sind(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosd(d float64) float64 { return math.Cos(d * math.Pi / 180) }

// Position computes the solar ephemeris at t.
//
// The mean longitude is accumulated in arcseconds from the linear term
// plus perturbations by the mean anomalies of Earth, Venus, Mars and
// Jupiter and the mean elongation of the Moon, then corrected for
// aberration and nutation. The coefficients are the published empirical
// values and must not be altered.
func Position(t time.Time) Ephemeris {
	T := JulianCenturies(t)

	// Mean longitude, arcseconds.
	l := (279.696678 + unit.PMod(36000.768925*T, 360)) * 3600

	// Equation of centre, from the Earth's mean anomaly.
	me := 358.475844 + unit.PMod(35999.04975*T, 360)
	l += (6910.1-17.2*T)*sind(me) + 72.3*sind(2*me)

	// Venus perturbations.
	mv := 212.603219 + unit.PMod(58517.803875*T, 360)
	l += 4.8*cosd(299.1017+mv-me) +
		5.5*cosd(148.3133+2*mv-2*me) +
		2.5*cosd(315.9433+2*mv-3*me) +
		1.6*cosd(345.2533+3*mv-4*me) +
		1.0*cosd(318.15+3*mv-5*me)

	// Mars perturbations.
	mm := 319.529425 + unit.PMod(19139.8585*T, 360)
	l += 2.0*cosd(343.8883-2*mm+2*me) + 1.8*cosd(200.4017-2*mm+me)

	// Jupiter perturbations.
	mj := 225.328328 + unit.PMod(3034.6920239*T, 360)
	l += 7.2*cosd(179.5317-mj+me) +
		2.6*cosd(263.2167-mj) +
		2.7*cosd(87.145-2*mj+2*me) +
		1.6*cosd(109.4933-2*mj+me)

	// Lunar perturbation, from the Moon's mean elongation.
	d := 350.7376814 + unit.PMod(445267.11422*T, 360)
	l += 6.5 * sind(d)

	// Long-period term.
	l += 6.4 * sind(231.19+20.2*T)

	// Reduce to [0, 1296000) arcseconds. The two-circle offset keeps the
	// value non-negative before reduction.
	l = unit.PMod(l+2592000, 1296000)
	longmed := l / 3600

	// Aberration.
	l -= 20.5

	// Nutation, from the longitude of the Moon's mean ascending node.
	omega := 259.183275 - unit.PMod(1934.142008*T, 360)
	l -= 17.2 * sind(omega)

	// True obliquity.
	oblt := 23.452294 - 0.0130125*T + 9.2*cosd(omega)/3600

	// Apparent right ascension and declination.
	l /= 3600
	ra := math.Atan2(sind(l)*cosd(oblt), cosd(l)) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}
	dec := math.Asin(sind(l)*sind(oblt)) * 180 / math.Pi

	return Ephemeris{
		MeanLongitude:     unit.AngleFromDeg(longmed),
		ApparentLongitude: unit.AngleFromDeg(l),
		Obliquity:         unit.AngleFromDeg(oblt),
		RA:                unit.RAFromDeg(ra),
		Dec:               unit.AngleFromDeg(dec),
	}
}
