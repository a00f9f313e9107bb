package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

func milesToKilometers[T any](n numeric.Numeric[T], miles T) T {
	return n.Multiply(miles, n.FromDecimal(MilesToKilometersFactor))
}

func kilometersToMiles[T any](n numeric.Numeric[T], kilometers T) T {
	return n.Multiply(kilometers, n.FromDecimal(KilometersToMilesFactor))
}

func milesToMeters[T any](n numeric.Numeric[T], miles T) T {
	return n.Multiply(miles, n.FromDecimal(MilesToMetersFactor))
}

func degreesToRadians[T any](n numeric.Numeric[T], degrees T) T {
	return n.Multiply(degrees, n.FromDecimal(DegreesToRadiansFactor))
}

func radiansToDegrees[T any](n numeric.Numeric[T], radians T) T {
	return n.Divide(radians, n.FromDecimal(DegreesToRadiansFactor))
}

// MilesToKilometers converts statute miles to kilometers.
func MilesToKilometers(miles decimal.Decimal) decimal.Decimal {
	return milesToKilometers(dec, miles)
}

// KilometersToMiles converts kilometers to statute miles.
func KilometersToMiles(kilometers decimal.Decimal) decimal.Decimal {
	return kilometersToMiles(dec, kilometers)
}

// MilesToMeters converts statute miles to meters.
func MilesToMeters(miles decimal.Decimal) decimal.Decimal {
	return milesToMeters(dec, miles)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees decimal.Decimal) decimal.Decimal {
	return degreesToRadians(dec, degrees)
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians decimal.Decimal) decimal.Decimal {
	return radiansToDegrees(dec, radians)
}
