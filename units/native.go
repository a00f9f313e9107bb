package units

import "github.com/rotblauer/unitconv/numeric"

// Native evaluates the catalog directly in T's own arithmetic, without widening
// to decimal. It is faster than a Converter and keeps T's native fault semantics
// (a float64 NaN in gives NaN out instead of a panic), at the cost of T's rounding
// at every step.
type Native[T any] struct {
	n numeric.Numeric[T]
}

// NewNative returns a Native evaluating the catalog with n's arithmetic.
func NewNative[T any](n numeric.Numeric[T]) Native[T] {
	return Native[T]{n: n}
}

// Native evaluators for the float types.
var (
	NativeFloat64 = NewNative[float64](numeric.Float64{})
	NativeFloat32 = NewNative[float32](numeric.Float32{})
)

func (c Native[T]) CoordinatesToKilometers(lat1, lon1, lat2, lon2 T) T {
	return coordinatesToKilometers(c.n, lat1, lon1, lat2, lon2)
}

func (c Native[T]) CoordinatesToMiles(lat1, lon1, lat2, lon2 T) T {
	return coordinatesToMiles(c.n, lat1, lon1, lat2, lon2)
}

func (c Native[T]) MilesToKilometers(miles T) T {
	return milesToKilometers(c.n, miles)
}

func (c Native[T]) KilometersToMiles(kilometers T) T {
	return kilometersToMiles(c.n, kilometers)
}

func (c Native[T]) MilesToMeters(miles T) T {
	return milesToMeters(c.n, miles)
}

func (c Native[T]) DegreesToRadians(degrees T) T {
	return degreesToRadians(c.n, degrees)
}

func (c Native[T]) RadiansToDegrees(radians T) T {
	return radiansToDegrees(c.n, radians)
}

func (c Native[T]) PoundsToKilograms(pounds T) T {
	return poundsToKilograms(c.n, pounds)
}

func (c Native[T]) PoundsToStones(pounds T) T {
	return poundsToStones(c.n, pounds)
}

func (c Native[T]) StonesToPounds(stones T) T {
	return stonesToPounds(c.n, stones)
}

func (c Native[T]) KilogramsToPounds(kilograms T) T {
	return kilogramsToPounds(c.n, kilograms)
}

func (c Native[T]) CelsiusToFahrenheit(celsius T) T {
	return celsiusToFahrenheit(c.n, celsius)
}

func (c Native[T]) FahrenheitToCelsius(fahrenheit T) T {
	return fahrenheitToCelsius(c.n, fahrenheit)
}

func (c Native[T]) CelsiusToKelvin(celsius T) T {
	return celsiusToKelvin(c.n, celsius)
}

func (c Native[T]) KelvinToCelsius(kelvin T) T {
	return kelvinToCelsius(c.n, kelvin)
}

func (c Native[T]) DegreesPerSecondToRadiansPerSecond(degrees T) T {
	return degreesPerSecondToRadiansPerSecond(c.n, degrees)
}

func (c Native[T]) RadiansPerSecondToDegreesPerSecond(radians T) T {
	return radiansPerSecondToDegreesPerSecond(c.n, radians)
}

func (c Native[T]) DegreesPerSecondToHertz(degrees T) T {
	return degreesPerSecondToHertz(c.n, degrees)
}

func (c Native[T]) RadiansPerSecondToHertz(radians T) T {
	return radiansPerSecondToHertz(c.n, radians)
}

func (c Native[T]) HertzToDegreesPerSecond(hertz T) T {
	return hertzToDegreesPerSecond(c.n, hertz)
}

func (c Native[T]) HertzToRadiansPerSecond(hertz T) T {
	return hertzToRadiansPerSecond(c.n, hertz)
}

func (c Native[T]) KilopascalsToHectopascals(kpa T) T {
	return kilopascalsToHectopascals(c.n, kpa)
}

func (c Native[T]) HectopascalsToKilopascals(hpa T) T {
	return hectopascalsToKilopascals(c.n, hpa)
}

func (c Native[T]) KilopascalsToPascals(kpa T) T {
	return kilopascalsToPascals(c.n, kpa)
}

func (c Native[T]) HectopascalsToPascals(hpa T) T {
	return hectopascalsToPascals(c.n, hpa)
}

func (c Native[T]) AtmospheresToPascals(atm T) T {
	return atmospheresToPascals(c.n, atm)
}

func (c Native[T]) PascalsToAtmospheres(pascals T) T {
	return pascalsToAtmospheres(c.n, pascals)
}

func (c Native[T]) MetersToInternationalFeet(meters T) T {
	return metersToInternationalFeet(c.n, meters)
}

func (c Native[T]) InternationalFeetToMeters(feet T) T {
	return internationalFeetToMeters(c.n, feet)
}

func (c Native[T]) MetersToUSSurveyFeet(meters T) T {
	return metersToUSSurveyFeet(c.n, meters)
}

func (c Native[T]) USSurveyFeetToMeters(feet T) T {
	return usSurveyFeetToMeters(c.n, feet)
}
