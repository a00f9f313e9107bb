package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

// The international foot is exactly 0.3048 m.
// The US survey foot is 1200/3937 m, about 2 ppm longer.

func metersToInternationalFeet[T any](n numeric.Numeric[T], meters T) T {
	return n.Divide(meters, n.FromDecimal(InternationalFoot))
}

func internationalFeetToMeters[T any](n numeric.Numeric[T], feet T) T {
	return n.Multiply(feet, n.FromDecimal(InternationalFoot))
}

func metersToUSSurveyFeet[T any](n numeric.Numeric[T], meters T) T {
	return n.Divide(meters, n.FromDecimal(USSurveyFoot))
}

func usSurveyFeetToMeters[T any](n numeric.Numeric[T], feet T) T {
	return n.Multiply(feet, n.FromDecimal(USSurveyFoot))
}

func MetersToInternationalFeet(meters decimal.Decimal) decimal.Decimal {
	return metersToInternationalFeet(dec, meters)
}

func InternationalFeetToMeters(feet decimal.Decimal) decimal.Decimal {
	return internationalFeetToMeters(dec, feet)
}

func MetersToUSSurveyFeet(meters decimal.Decimal) decimal.Decimal {
	return metersToUSSurveyFeet(dec, meters)
}

func USSurveyFeetToMeters(feet decimal.Decimal) decimal.Decimal {
	return usSurveyFeetToMeters(dec, feet)
}
