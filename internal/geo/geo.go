// Package geo provides uniform random point sampling within a circular
// coverage area and great-circle containment checks. All distances are in
// kilometers; mixing unit systems between the sampler and the containment
// check is the bug class this package exists to prevent.
package geo

import (
	"math"
	"math/rand"

	"github.com/rotisserie/eris"
)

const (
	// earthRadiusKm is the spherical Earth radius used by Haversine.
	earthRadiusKm = 6371.0

	// kmPerDegree approximates one degree of latitude. Only valid for
	// municipal-scale areas away from the poles.
	kmPerDegree = 111.32
)

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CoverageArea is the circular geofence all generated points must fall in.
type CoverageArea struct {
	Name     string
	Center   Point
	RadiusKm float64
}

// NewCoverageArea validates and builds a coverage area.
func NewCoverageArea(name string, lat, lon, radiusKm float64) (CoverageArea, error) {
	if lat < -90 || lat > 90 {
		return CoverageArea{}, eris.Errorf("geo: center latitude %v out of range [-90,90]", lat)
	}
	if lon < -180 || lon > 180 {
		return CoverageArea{}, eris.Errorf("geo: center longitude %v out of range [-180,180]", lon)
	}
	if radiusKm <= 0 {
		return CoverageArea{}, eris.Errorf("geo: radius %v km must be positive", radiusKm)
	}
	return CoverageArea{Name: name, Center: Point{Lat: lat, Lon: lon}, RadiusKm: radiusKm}, nil
}

// Contains reports whether p lies within the coverage disk.
func (a CoverageArea) Contains(p Point) bool {
	return Haversine(a.Center, p) <= a.RadiusKm
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// RandomPointInDisk draws a point uniformly by area from the coverage disk.
// The sqrt transform on the radial draw is what makes the distribution
// uniform by area instead of clustered at the center. Coordinates are
// rounded to 6 decimal places (~0.11 m).
func RandomPointInDisk(rng *rand.Rand, area CoverageArea) Point {
	angle := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64()) * area.RadiusKm

	dLat := r * math.Cos(angle) / kmPerDegree
	dLon := r * math.Sin(angle) / kmPerDegree / math.Cos(area.Center.Lat*math.Pi/180)

	return Point{
		Lat: Round6(area.Center.Lat + dLat),
		Lon: Round6(area.Center.Lon + dLon),
	}
}

// Round6 rounds a coordinate to 6 decimal places.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
