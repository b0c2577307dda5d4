package diffrot

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/unit"
)

func TestShiftZeroDuration(t *testing.T) {
	lats := []float64{-70, -30, 0, 15, 45, 80}
	for _, model := range []Model{Howard, Snodgrass, Allen} {
		for _, day := range []DayType{Sidereal, Synodic} {
			got, err := ShiftAll(0, lats, model, day)
			if err != nil {
				t.Fatalf("ShiftAll(%v, %v): %v", model, day, err)
			}
			for i, deg := range got {
				if deg != 0 {
					t.Errorf("model %v day %v lat %v: zero duration gave %v deg",
						model, day, lats[i], deg)
				}
			}
		}
	}
}

func TestShiftHowardReference(t *testing.T) {
	// Two days at 30 degrees latitude, sidereal frame. The published
	// example value for the Howard profile.
	got, err := ShiftAll(48*time.Hour, []float64{30}, Howard, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 27.3643 {
		t.Errorf("got %v deg, want 27.3643", got[0])
	}
}

func TestShiftSnodgrass(t *testing.T) {
	got, err := ShiftAll(48*time.Hour, []float64{30}, Snodgrass, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 27.0846 {
		t.Errorf("got %v deg, want 27.0846", got[0])
	}
}

func TestShiftAllen(t *testing.T) {
	// The Allen law at the equator is exactly 14.44 deg/day.
	got, err := ShiftAll(48*time.Hour, []float64{0}, Allen, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 28.88 {
		t.Errorf("sidereal: got %v deg, want 28.88", got[0])
	}

	got, err = ShiftAll(48*time.Hour, []float64{0}, Allen, Synodic)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 26.9088 {
		t.Errorf("synodic: got %v deg, want 26.9088", got[0])
	}
}

func TestShiftSynodicCorrection(t *testing.T) {
	// Synodic minus sidereal is -0.9856 deg/day regardless of model.
	// Each result is rounded independently so allow the rounding grain.
	const days = 3.0
	d := time.Duration(days * 24 * float64(time.Hour))
	for _, model := range []Model{Howard, Snodgrass, Allen} {
		sid, err := ShiftAll(d, []float64{20}, model, Sidereal)
		if err != nil {
			t.Fatal(err)
		}
		syn, err := ShiftAll(d, []float64{20}, model, Synodic)
		if err != nil {
			t.Fatal(err)
		}
		diff := sid[0] - syn[0]
		if math.Abs(diff-0.9856*days) > 2e-4 {
			t.Errorf("model %v: sidereal-synodic = %v, want %v", model, diff, 0.9856*days)
		}
	}
}

func TestShiftLatitudeSymmetry(t *testing.T) {
	// The rate laws depend on latitude only through even powers of its
	// sine, so the shift is identical at +lat and -lat.
	for _, model := range []Model{Howard, Snodgrass, Allen} {
		for _, lat := range []float64{5, 30, 61.5, 88} {
			got, err := ShiftAll(36*time.Hour, []float64{lat, -lat}, model, Sidereal)
			if err != nil {
				t.Fatal(err)
			}
			if got[0] != got[1] {
				t.Errorf("model %v lat %v: %v != %v", model, lat, got[0], got[1])
			}
		}
	}
}

func TestShiftNegativeDuration(t *testing.T) {
	fwd, err := ShiftAll(24*time.Hour, []float64{10}, Howard, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ShiftAll(-24*time.Hour, []float64{10}, Howard, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	if fwd[0] != -back[0] {
		t.Errorf("rewind not symmetric: %v vs %v", fwd[0], back[0])
	}
}

func TestShiftScalarAngle(t *testing.T) {
	got, err := Shift(48*time.Hour, unit.AngleFromDeg(30), Howard, Sidereal)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Deg()-27.3643) > 1e-9 {
		t.Errorf("got %v deg, want 27.3643", got.Deg())
	}
}

func TestShiftInvalidModel(t *testing.T) {
	_, err := ShiftAll(time.Hour, []float64{0}, Model(99), Sidereal)
	if !errors.Is(err, ErrInvalidModel) {
		t.Errorf("got %v, want ErrInvalidModel", err)
	}
}

func TestParseModel(t *testing.T) {
	cases := []struct {
		in   string
		want Model
		ok   bool
	}{
		{"howard", Howard, true},
		{"snodgrass", Snodgrass, true},
		{"allen", Allen, true},
		{"Howard", 0, false},
		{"carrington", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseModel(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseModel(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && !errors.Is(err, ErrInvalidModel) {
			t.Errorf("ParseModel(%q) err = %v, want ErrInvalidModel", c.in, err)
		}
	}
}
