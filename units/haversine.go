package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
	"math"
)

// coordinatesToKilometers is the Haversine great-circle distance on a sphere
// of radius MeanEarthRadiusKm.
// Radians and half-angles are computed in T; only the trigonometry runs in float64,
// and the final scaling by the radius is done back in T.
// The haversine term is capped at 1, so near-antipodal inputs yield πR rather
// than the NaN asin would produce; this is the one place a native float fault
// is not passed through.
func coordinatesToKilometers[T any](n numeric.Numeric[T], lat1, lon1, lat2, lon2 T) T {
	// Identical points are exactly zero, never asin(sqrt(ε)).
	if n.Equal(lat1, lat2) && n.Equal(lon1, lon2) {
		return n.FromDecimal(decimal.Zero)
	}

	twoT := n.FromDecimal(two)
	dLat := degreesToRadians(n, n.Subtract(lat2, lat1))
	dLon := degreesToRadians(n, n.Subtract(lon2, lon1))
	phi1 := degreesToRadians(n, lat1)
	phi2 := degreesToRadians(n, lat2)

	sinLat := math.Sin(n.ToFloat64(n.Divide(dLat, twoT)))
	sinLon := math.Sin(n.ToFloat64(n.Divide(dLon, twoT)))

	a := sinLat*sinLat + sinLon*sinLon*math.Cos(n.ToFloat64(phi1))*math.Cos(n.ToFloat64(phi2))
	// Rounding can push a past 1 for near-antipodal points.
	a = math.Min(a, 1)
	c := 2 * math.Asin(math.Sqrt(a))

	return n.Multiply(n.FromDecimal(MeanEarthRadiusKm), n.FromFloat64(c))
}

func coordinatesToMiles[T any](n numeric.Numeric[T], lat1, lon1, lat2, lon2 T) T {
	return kilometersToMiles(n, coordinatesToKilometers(n, lat1, lon1, lat2, lon2))
}

// CoordinatesToKilometers returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2), all in degrees.
// Coordinates are not range checked.
func CoordinatesToKilometers(lat1, lon1, lat2, lon2 decimal.Decimal) decimal.Decimal {
	return coordinatesToKilometers(dec, lat1, lon1, lat2, lon2)
}

// CoordinatesToMiles is KilometersToMiles(CoordinatesToKilometers(...)).
func CoordinatesToMiles(lat1, lon1, lat2, lon2 decimal.Decimal) decimal.Decimal {
	return coordinatesToMiles(dec, lat1, lon1, lat2, lon2)
}
