// Package geo holds coordinate value types for the Haversine conversions
// and bridges them to orb and s2 geometry.
package geo

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/rotblauer/unitconv/units"
	"github.com/shopspring/decimal"
)

var (
	maxLat = decimal.NewFromInt(90)
	maxLng = decimal.NewFromInt(180)
)

// LatLng is a point in decimal degrees.
type LatLng struct {
	Lat decimal.Decimal
	Lng decimal.Decimal
}

// NewLatLng builds a LatLng from float degrees using the shortest exact decimal.
func NewLatLng(lat, lng float64) LatLng {
	return LatLng{Lat: decimal.NewFromFloat(lat), Lng: decimal.NewFromFloat(lng)}
}

// LatLngFromPoint converts an orb.Point, which is ordered [lng, lat].
func LatLngFromPoint(p orb.Point) LatLng {
	return NewLatLng(p.Lat(), p.Lon())
}

func (ll LatLng) Point() orb.Point {
	return orb.Point{ll.Lng.InexactFloat64(), ll.Lat.InexactFloat64()}
}

func (ll LatLng) S2() s2.LatLng {
	return s2.LatLngFromDegrees(ll.Lat.InexactFloat64(), ll.Lng.InexactFloat64())
}

// InRange reports whether Lat is within ±90 and Lng within ±180.
// Nothing in this module requires it; distances are computed either way.
func (ll LatLng) InRange() bool {
	return ll.Lat.Abs().LessThanOrEqual(maxLat) && ll.Lng.Abs().LessThanOrEqual(maxLng)
}

func (ll LatLng) Equal(other LatLng) bool {
	return ll.Lat.Equal(other.Lat) && ll.Lng.Equal(other.Lng)
}

func (ll LatLng) String() string {
	return fmt.Sprintf("(%s, %s)", ll.Lat, ll.Lng)
}

// Segment is a pair of coordinates.
type Segment struct {
	From LatLng
	To   LatLng
}

// Kilometers is the great-circle length of the segment.
func (s Segment) Kilometers() decimal.Decimal {
	return units.CoordinatesToKilometers(s.From.Lat, s.From.Lng, s.To.Lat, s.To.Lng)
}

func (s Segment) Miles() decimal.Decimal {
	return units.CoordinatesToMiles(s.From.Lat, s.From.Lng, s.To.Lat, s.To.Lng)
}

// String renders like "(0, 0) -> (0, 90): 10,007.543 km", distance truncated to 3 places.
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s: %s km", s.From, s.To, humanize.CommafWithDigits(s.Kilometers().InexactFloat64(), 3))
}
