package diffrot

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// Regression coefficients in µrad/s for rate = A + B·sin²lat + C·sin⁴lat.
// Published empirical values; do not re-derive.
var rateCoeff = map[Model][3]float64{
	Howard:    {2.894, -0.428, -0.370},
	Snodgrass: {2.851, -0.343, -0.474},
}

// synodicCorrection is the daily longitude drift of the Earth-Sun line
// in degrees, subtracted when rotating in the synodic frame.
const synodicCorrection = 0.9856

// Shift returns the longitude change of a feature at the given
// heliographic latitude after rotating for duration. Negative durations
// rewind. The result is rounded to 4 decimal degrees.
func Shift(duration time.Duration, lat unit.Angle, model Model, day DayType) (unit.Angle, error) {
	deg, err := ShiftAll(duration, []float64{lat.Deg()}, model, day)
	if err != nil {
		return 0, err
	}
	return unit.AngleFromDeg(deg[0]), nil
}

// ShiftAll is the slice form of Shift. Latitudes are degrees in, and the
// returned shifts are degrees out, each rounded to 4 decimals so the
// fixed-precision contract survives unit round-trips.
func ShiftAll(duration time.Duration, latsDeg []float64, model Model, day DayType) ([]float64, error) {
	if !model.valid() {
		return nil, ErrInvalidModel
	}

	seconds := duration.Seconds()
	days := seconds / 86400

	out := make([]float64, len(latsDeg))
	for i, lat := range latsDeg {
		s := math.Sin(lat * math.Pi / 180)
		sin2 := s * s
		sin4 := sin2 * sin2

		var deg float64
		switch model {
		case Allen:
			deg = days * (14.44 - 3*sin2)
		default:
			c := rateCoeff[model]
			rate := c[0] + c[1]*sin2 + c[2]*sin4 // µrad/s
			deg = rate * 1e-6 * seconds / (math.Pi / 180)
		}

		if day == Synodic {
			deg -= synodicCorrection * days
		}

		out[i] = math.Round(deg*1e4) / 1e4
	}
	return out, nil
}
