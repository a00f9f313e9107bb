package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

func kilopascalsToHectopascals[T any](n numeric.Numeric[T], kpa T) T {
	return n.Multiply(kpa, n.FromDecimal(hectopascalsPerKilopascal))
}

func hectopascalsToKilopascals[T any](n numeric.Numeric[T], hpa T) T {
	return n.Divide(hpa, n.FromDecimal(hectopascalsPerKilopascal))
}

func kilopascalsToPascals[T any](n numeric.Numeric[T], kpa T) T {
	return n.Multiply(kpa, n.FromDecimal(pascalsPerKilopascal))
}

func hectopascalsToPascals[T any](n numeric.Numeric[T], hpa T) T {
	return n.Multiply(hpa, n.FromDecimal(pascalsPerHectopascal))
}

func atmospheresToPascals[T any](n numeric.Numeric[T], atm T) T {
	return n.Multiply(atm, n.FromDecimal(StandardAtmosphere))
}

func pascalsToAtmospheres[T any](n numeric.Numeric[T], pascals T) T {
	return n.Divide(pascals, n.FromDecimal(StandardAtmosphere))
}

func KilopascalsToHectopascals(kpa decimal.Decimal) decimal.Decimal {
	return kilopascalsToHectopascals(dec, kpa)
}

func HectopascalsToKilopascals(hpa decimal.Decimal) decimal.Decimal {
	return hectopascalsToKilopascals(dec, hpa)
}

func KilopascalsToPascals(kpa decimal.Decimal) decimal.Decimal {
	return kilopascalsToPascals(dec, kpa)
}

func HectopascalsToPascals(hpa decimal.Decimal) decimal.Decimal {
	return hectopascalsToPascals(dec, hpa)
}

// AtmospheresToPascals uses the standard atmosphere, 101325 Pa.
func AtmospheresToPascals(atm decimal.Decimal) decimal.Decimal {
	return atmospheresToPascals(dec, atm)
}

func PascalsToAtmospheres(pascals decimal.Decimal) decimal.Decimal {
	return pascalsToAtmospheres(dec, pascals)
}
