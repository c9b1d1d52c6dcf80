package geo

import (
	"errors"
	"math"
)

// KmPerDegree is the planar degrees-to-kilometres scale. Distances are a
// flat-plane approximation, not great-circle; at matching radii the error
// is irrelevant.
const KmPerDegree = 111.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

type Coordinate struct {
	Lat float64
	Lng float64
}

// Validate rejects non-finite and out-of-range coordinates.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return ErrInvalidCoordinate
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// Policy holds the tunable constants of a matching run.
type Policy struct {
	MaxDistanceKm   float64
	MaxRating       float64
	DefaultRating   float64
	ProximityWeight float64
	MinFinalScore   float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxDistanceKm:   50,
		MaxRating:       5,
		DefaultRating:   3,
		ProximityWeight: 0.8,
		MinFinalScore:   30,
	}
}

// Distance is the planar distance between two coordinates in kilometres.
func Distance(a, b Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * KmPerDegree
}

// ProximityScore maps a distance onto [0, 100], 100 at the origin and 0
// at or beyond maxKm.
func ProximityScore(distanceKm, maxKm float64) float64 {
	if maxKm <= 0 {
		return 0
	}
	s := (maxKm - distanceKm) / maxKm * 100
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// ReputationScore maps a rating onto [0, 100].
func ReputationScore(rating, maxRating float64) float64 {
	if maxRating <= 0 {
		return 0
	}
	if rating < 0 {
		rating = 0
	}
	if rating > maxRating {
		rating = maxRating
	}
	return rating / maxRating * 100
}

// FinalScore blends proximity and reputation by proximity weight.
func FinalScore(proximity, reputation, proximityWeight float64) float64 {
	return proximity*proximityWeight + reputation*(1-proximityWeight)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
