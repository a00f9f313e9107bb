package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

// Conversion constants, in the canonical decimal representation.
// Every formula reads these; treat them as read-only.
var (
	// Pi to 28 decimal places.
	Pi = decimal.RequireFromString("3.1415926535897932384626433833")

	MilesToKilometersFactor = decimal.RequireFromString("1.609344")
	MilesToMetersFactor     = decimal.RequireFromString("1609.344")

	PoundsToKilogramsFactor = decimal.RequireFromString("0.45359237")
	PoundsToStonesFactor    = decimal.RequireFromString("0.07142857")
	StonesToPoundsFactor    = decimal.NewFromInt(14)
	KilogramsToPoundsFactor = decimal.RequireFromString("2.2046226218487757")

	// StandardAtmosphere in pascals.
	StandardAtmosphere = decimal.NewFromInt(101325)

	CelsiusKelvinOffset = decimal.RequireFromString("273.15")

	MeanEarthRadiusKm = decimal.NewFromInt(6371)

	// InternationalFoot and USSurveyFoot are in meters.
	InternationalFoot = decimal.RequireFromString("0.3048")
	USSurveyFoot      = dec.Divide(decimal.NewFromInt(1200), decimal.NewFromInt(3937))
)

// Derived constants.
var (
	TwoPi                   = Pi.Mul(two)
	DegreesToRadiansFactor  = dec.Divide(Pi, decimal.NewFromInt(180))
	KilometersToMilesFactor = dec.Divide(decimal.NewFromInt(1), MilesToKilometersFactor)
)

var (
	dec = numeric.Decimal{}

	two          = decimal.NewFromInt(2)
	totalDegrees = decimal.NewFromInt(360)

	fahrenheitScale  = decimal.RequireFromString("1.8")
	fahrenheitOffset = decimal.NewFromInt(32)

	hectopascalsPerKilopascal = decimal.NewFromInt(10)
	pascalsPerKilopascal      = decimal.NewFromInt(1000)
	pascalsPerHectopascal     = decimal.NewFromInt(100)
)
