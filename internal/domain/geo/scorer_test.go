package geo

import (
	"math"
	"testing"
)

func TestDistanceSymmetry(t *testing.T) {
	a := Coordinate{Lat: 28.7041, Lng: 77.1025}
	b := Coordinate{Lat: 28.70, Lng: 77.10}

	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("Distance(a,b)=%v Distance(b,a)=%v", Distance(a, b), Distance(b, a))
	}
}

func TestDistanceZero(t *testing.T) {
	a := Coordinate{Lat: 10, Lng: 20}
	if d := Distance(a, a); d != 0 {
		t.Fatalf("Distance(a,a) = %v, want 0", d)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	a := Coordinate{Lat: 28.7041, Lng: 77.1025}
	b := Coordinate{Lat: 28.70, Lng: 77.10}

	if d := Round2(Distance(a, b)); d != 0.53 {
		t.Fatalf("distance = %v, want 0.53", d)
	}
}

func TestDistanceScalesLinearly(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0.25, Lng: 0}

	if d := Distance(a, b); d != 27.75 {
		t.Fatalf("distance = %v, want 27.75", d)
	}
}

func TestProximityScore(t *testing.T) {
	cases := []struct {
		d, max, want float64
	}{
		{0, 50, 100},
		{25, 50, 50},
		{50, 50, 0},
		{80, 50, 0},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := ProximityScore(tc.d, tc.max); got != tc.want {
			t.Fatalf("ProximityScore(%v, %v) = %v, want %v", tc.d, tc.max, got, tc.want)
		}
	}
}

func TestProximityScoreMonotonic(t *testing.T) {
	prev := ProximityScore(0, 50)
	for d := 5.0; d <= 50; d += 5 {
		cur := ProximityScore(d, 50)
		if cur >= prev {
			t.Fatalf("score did not decrease at d=%v: %v >= %v", d, cur, prev)
		}
		prev = cur
	}
}

func TestReputationScore(t *testing.T) {
	cases := []struct {
		rating, max, want float64
	}{
		{5, 5, 100},
		{2.5, 5, 50},
		{0, 5, 0},
		{-1, 5, 0},
		{7, 5, 100},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := ReputationScore(tc.rating, tc.max); got != tc.want {
			t.Fatalf("ReputationScore(%v, %v) = %v, want %v", tc.rating, tc.max, got, tc.want)
		}
	}
}

func TestFinalScoreWorkedExample(t *testing.T) {
	a := Coordinate{Lat: 28.7041, Lng: 77.1025}
	b := Coordinate{Lat: 28.70, Lng: 77.10}

	d := Distance(a, b)
	p := ProximityScore(d, 50)
	r := ReputationScore(5, 5)

	if got := Round2(FinalScore(p, r, 0.8)); got != 99.15 {
		t.Fatalf("final = %v, want 99.15", got)
	}
}

func TestValidate(t *testing.T) {
	valid := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 28.7041, Lng: 77.1025},
		{Lat: -90, Lng: 180},
	}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Fatalf("Validate(%+v) = %v", c, err)
		}
	}

	invalid := []Coordinate{
		{Lat: math.NaN(), Lng: 0},
		{Lat: 0, Lng: math.Inf(1)},
		{Lat: 91, Lng: 0},
		{Lat: 0, Lng: -181},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Fatalf("Validate(%+v) accepted invalid coordinate", c)
		}
	}
}

func TestRound2HalfUp(t *testing.T) {
	cases := map[float64]float64{
		0.531:  0.53,
		0.535:  0.54,
		99.145: 99.15,
		30.004: 30.0,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
