package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Converter exposes the catalog for an input representation In and an output
// representation Out. Inputs are widened to decimal, run through the canonical
// formula and narrowed to Out.
// Converters are immutable and safe for concurrent use.
// The zero value is not usable; build one with NewConverter or Integer.
type Converter[In, Out any] struct {
	widen  func(In) decimal.Decimal
	narrow func(decimal.Decimal) Out
}

// NewConverter returns a Converter whose input and output are both T.
func NewConverter[T any](n numeric.Numeric[T]) Converter[T, T] {
	return Converter[T, T]{widen: n.ToDecimal, narrow: n.FromDecimal}
}

// Integer returns a Converter for integer inputs.
// Results stay decimal, since nearly every conversion is fractional.
func Integer[I constraints.Integer]() Converter[I, decimal.Decimal] {
	return Converter[I, decimal.Decimal]{widen: numeric.FromInteger[I], narrow: dec.FromDecimal}
}

// Predeclared converters. Int takes int and returns decimal.
var (
	Decimal = NewConverter[decimal.Decimal](numeric.Decimal{})
	Float64 = NewConverter[float64](numeric.Float64{})
	Float32 = NewConverter[float32](numeric.Float32{})
	Int     = Integer[int]()
)

func (c Converter[In, Out]) apply(formula func(decimal.Decimal) decimal.Decimal, v In) Out {
	return c.narrow(formula(c.widen(v)))
}

func (c Converter[In, Out]) CoordinatesToKilometers(lat1, lon1, lat2, lon2 In) Out {
	return c.narrow(CoordinatesToKilometers(c.widen(lat1), c.widen(lon1), c.widen(lat2), c.widen(lon2)))
}

func (c Converter[In, Out]) CoordinatesToMiles(lat1, lon1, lat2, lon2 In) Out {
	return c.narrow(CoordinatesToMiles(c.widen(lat1), c.widen(lon1), c.widen(lat2), c.widen(lon2)))
}

func (c Converter[In, Out]) MilesToKilometers(miles In) Out {
	return c.apply(MilesToKilometers, miles)
}

func (c Converter[In, Out]) KilometersToMiles(kilometers In) Out {
	return c.apply(KilometersToMiles, kilometers)
}

func (c Converter[In, Out]) MilesToMeters(miles In) Out {
	return c.apply(MilesToMeters, miles)
}

func (c Converter[In, Out]) DegreesToRadians(degrees In) Out {
	return c.apply(DegreesToRadians, degrees)
}

func (c Converter[In, Out]) RadiansToDegrees(radians In) Out {
	return c.apply(RadiansToDegrees, radians)
}

func (c Converter[In, Out]) PoundsToKilograms(pounds In) Out {
	return c.apply(PoundsToKilograms, pounds)
}

func (c Converter[In, Out]) PoundsToStones(pounds In) Out {
	return c.apply(PoundsToStones, pounds)
}

func (c Converter[In, Out]) StonesToPounds(stones In) Out {
	return c.apply(StonesToPounds, stones)
}

func (c Converter[In, Out]) KilogramsToPounds(kilograms In) Out {
	return c.apply(KilogramsToPounds, kilograms)
}

func (c Converter[In, Out]) CelsiusToFahrenheit(celsius In) Out {
	return c.apply(CelsiusToFahrenheit, celsius)
}

func (c Converter[In, Out]) FahrenheitToCelsius(fahrenheit In) Out {
	return c.apply(FahrenheitToCelsius, fahrenheit)
}

func (c Converter[In, Out]) CelsiusToKelvin(celsius In) Out {
	return c.apply(CelsiusToKelvin, celsius)
}

func (c Converter[In, Out]) KelvinToCelsius(kelvin In) Out {
	return c.apply(KelvinToCelsius, kelvin)
}

func (c Converter[In, Out]) DegreesPerSecondToRadiansPerSecond(degrees In) Out {
	return c.apply(DegreesPerSecondToRadiansPerSecond, degrees)
}

func (c Converter[In, Out]) RadiansPerSecondToDegreesPerSecond(radians In) Out {
	return c.apply(RadiansPerSecondToDegreesPerSecond, radians)
}

func (c Converter[In, Out]) DegreesPerSecondToHertz(degrees In) Out {
	return c.apply(DegreesPerSecondToHertz, degrees)
}

func (c Converter[In, Out]) RadiansPerSecondToHertz(radians In) Out {
	return c.apply(RadiansPerSecondToHertz, radians)
}

func (c Converter[In, Out]) HertzToDegreesPerSecond(hertz In) Out {
	return c.apply(HertzToDegreesPerSecond, hertz)
}

func (c Converter[In, Out]) HertzToRadiansPerSecond(hertz In) Out {
	return c.apply(HertzToRadiansPerSecond, hertz)
}

func (c Converter[In, Out]) KilopascalsToHectopascals(kpa In) Out {
	return c.apply(KilopascalsToHectopascals, kpa)
}

func (c Converter[In, Out]) HectopascalsToKilopascals(hpa In) Out {
	return c.apply(HectopascalsToKilopascals, hpa)
}

func (c Converter[In, Out]) KilopascalsToPascals(kpa In) Out {
	return c.apply(KilopascalsToPascals, kpa)
}

func (c Converter[In, Out]) HectopascalsToPascals(hpa In) Out {
	return c.apply(HectopascalsToPascals, hpa)
}

func (c Converter[In, Out]) AtmospheresToPascals(atm In) Out {
	return c.apply(AtmospheresToPascals, atm)
}

func (c Converter[In, Out]) PascalsToAtmospheres(pascals In) Out {
	return c.apply(PascalsToAtmospheres, pascals)
}

func (c Converter[In, Out]) MetersToInternationalFeet(meters In) Out {
	return c.apply(MetersToInternationalFeet, meters)
}

func (c Converter[In, Out]) InternationalFeetToMeters(feet In) Out {
	return c.apply(InternationalFeetToMeters, feet)
}

func (c Converter[In, Out]) MetersToUSSurveyFeet(meters In) Out {
	return c.apply(MetersToUSSurveyFeet, meters)
}

func (c Converter[In, Out]) USSurveyFeetToMeters(feet In) Out {
	return c.apply(USSurveyFeetToMeters, feet)
}
