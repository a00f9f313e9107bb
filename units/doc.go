// Package units is a catalog of closed-form unit conversions.
//
// Each formula is written once against numeric.Numeric and evaluated
// authoritatively in fixed-point decimal. The exported free functions take
// and return decimal.Decimal. Other representations go through a Converter,
// which widens its input to decimal and narrows the result back,
// or through Native, which evaluates the same formula in the representation's
// own arithmetic.
//
//	km := units.MilesToKilometers(decimal.NewFromFloat(5.433))
//	km64 := units.Float64.MilesToKilometers(5.433)
//	f := units.Int.CelsiusToFahrenheit(25) // decimal.Decimal
package units
