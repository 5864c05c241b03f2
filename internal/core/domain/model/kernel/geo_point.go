package kernel

import (
	"errors"
	"fmt"
	"math"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a position on the Earth's surface in decimal degrees.
// It is used for both the store location and a customer's delivery point.
//
// Example:
//
//	store, _ := kernel.NewGeoPoint(28.6139, 77.2090)
//	home, _ := kernel.NewGeoPoint(28.7041, 77.1025)
//	km := store.DistanceKm(home) // about 14.4
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [-90, 90] and longitude in [-180, 180].
// NaN and infinities are rejected by the same range checks.
//
// Parameters:
//   - lat: latitude in degrees
//   - lng: longitude in degrees
//
// Returns:
//   - GeoPoint: the validated point
//   - error: joined range errors for every offending coordinate
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// NewOptionalGeoPoint builds a point only when both coordinates are present.
// A missing coordinate yields (nil, nil), which callers treat as "location unknown".
func NewOptionalGeoPoint(lat, lng *float64) (*GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	p, err := NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate reports whether the point was built by NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// DistanceKm returns the great-circle distance to other in kilometres,
// computed with the haversine formula and EarthRadiusKm.
// The result is symmetric and zero for identical points.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	return HaversineKm(p.lat, p.lng, other.lat, other.lng)
}

// HaversineKm is the raw formula behind GeoPoint.DistanceKm. It is total for
// all finite inputs and performs no range validation.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLat(lat float64) error {
	if !(lat >= minLatitude && lat <= maxLatitude) {
		return errs.NewValueIsOutOfRangeError("lat", lat, minLatitude, maxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if !(lng >= minLongitude && lng <= maxLongitude) {
		return errs.NewValueIsOutOfRangeError("lng", lng, minLongitude, maxLongitude)
	}
	p.lng = lng
	return nil
}
