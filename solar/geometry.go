package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// Geometry describes the apparent solar disk for an Earth-based observer
// at one instant. Values are recomputed per query and never mutated.
type Geometry struct {
	P            unit.Angle // position angle of the rotation axis
	B0           unit.Angle // heliographic latitude of the disk centre
	L0           unit.Angle // heliographic longitude of the disk centre
	SemiDiameter unit.Angle // apparent angular radius of the disk
	Dist         float64    // observer-Sun distance, AU
}

// DSunMeters returns the observer-Sun distance in meters.
func (g Geometry) DSunMeters() float64 {
	return g.Dist * AUMeters
}

// ObserverGeometry computes P, B0 and the semi-diameter of the solar disk
// as seen from Earth at t. L0 is zero for the Earth-based view; callers
// observing from elsewhere may substitute their own value on the result.
func ObserverGeometry(t time.Time) Geometry {
	de := julian.TimeToJD(t.UTC()) - Epoch

	pos := Position(t)
	longmed := pos.MeanLongitude.Deg()
	appl := pos.ApparentLongitude.Deg()
	oblt := pos.Obliquity.Deg()

	// Aberrated longitude, and the longitude of the ascending node of the
	// solar equator on the ecliptic.
	lambda := longmed - 20.5/3600
	node := 73.666666 + (50.25/3600)*(de/365.25+50)
	arg := lambda - node

	p := math.Atan(-math.Tan(oblt*math.Pi/180)*cosd(appl)) +
		math.Atan(-0.12722*cosd(arg))
	b0 := math.Asin(0.1262 * sind(arg))

	r := distance(de)
	sd := math.Asin((RadiusMeters/AUMeters)/r) * 10800 / math.Pi

	return Geometry{
		P:            unit.AngleFromDeg(p * 180 / math.Pi),
		B0:           unit.AngleFromDeg(b0 * 180 / math.Pi),
		L0:           0,
		SemiDiameter: unit.AngleFromMin(sd),
		Dist:         r,
	}
}

// Distance returns the geocentric solar distance at t in AU, from a fixed
// perturbation series over the mean anomalies of Venus, Earth, Mars and
// Jupiter and the Moon's mean elongation.
func Distance(t time.Time) float64 {
	return distance(julian.TimeToJD(t.UTC()) - Epoch)
}

func distance(de float64) float64 {
	T := de / 36525
	mv := 212.6 + unit.PMod(58517.8*T, 360)
	me := 358.476 + unit.PMod(35999.0498*T, 360)
	mm := 319.5 + unit.PMod(19139.86*T, 360)
	mj := 225.3 + unit.PMod(3034.69*T, 360)
	d := 350.7 + unit.PMod(445267.11*T, 360)

	return 1.000141 - (0.016748-0.0000418*T)*cosd(me) -
		0.000140*cosd(2*me) +
		0.000016*cosd(58.3+2*mv-2*me) +
		0.000005*cosd(209.1+mv-me) +
		0.000005*cosd(253.8-2*mm+2*me) +
		0.000016*cosd(89.5-mj+me) +
		0.000009*cosd(357.1-2*mj+2*me) +
		0.000031*cosd(d)
}
