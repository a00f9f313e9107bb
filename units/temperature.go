package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

func celsiusToFahrenheit[T any](n numeric.Numeric[T], celsius T) T {
	return n.Add(n.Multiply(celsius, n.FromDecimal(fahrenheitScale)), n.FromDecimal(fahrenheitOffset))
}

func fahrenheitToCelsius[T any](n numeric.Numeric[T], fahrenheit T) T {
	return n.Divide(n.Subtract(fahrenheit, n.FromDecimal(fahrenheitOffset)), n.FromDecimal(fahrenheitScale))
}

func celsiusToKelvin[T any](n numeric.Numeric[T], celsius T) T {
	return n.Add(celsius, n.FromDecimal(CelsiusKelvinOffset))
}

func kelvinToCelsius[T any](n numeric.Numeric[T], kelvin T) T {
	return n.Subtract(kelvin, n.FromDecimal(CelsiusKelvinOffset))
}

// CelsiusToFahrenheit returns celsius × 1.8 + 32.
func CelsiusToFahrenheit(celsius decimal.Decimal) decimal.Decimal {
	return celsiusToFahrenheit(dec, celsius)
}

// FahrenheitToCelsius returns (fahrenheit − 32) / 1.8.
func FahrenheitToCelsius(fahrenheit decimal.Decimal) decimal.Decimal {
	return fahrenheitToCelsius(dec, fahrenheit)
}

func CelsiusToKelvin(celsius decimal.Decimal) decimal.Decimal {
	return celsiusToKelvin(dec, celsius)
}

func KelvinToCelsius(kelvin decimal.Decimal) decimal.Decimal {
	return kelvinToCelsius(dec, kelvin)
}
