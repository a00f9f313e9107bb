package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

// Angular rates all pass through Hertz (revolutions per second),
// so the direct degree/radian conversions can't drift from the Hertz ones.

func degreesPerSecondToHertz[T any](n numeric.Numeric[T], degrees T) T {
	return n.Divide(degrees, n.FromDecimal(totalDegrees))
}

func radiansPerSecondToHertz[T any](n numeric.Numeric[T], radians T) T {
	return n.Divide(radians, n.FromDecimal(TwoPi))
}

func hertzToDegreesPerSecond[T any](n numeric.Numeric[T], hertz T) T {
	return n.Multiply(hertz, n.FromDecimal(totalDegrees))
}

func hertzToRadiansPerSecond[T any](n numeric.Numeric[T], hertz T) T {
	return n.Multiply(hertz, n.FromDecimal(TwoPi))
}

func degreesPerSecondToRadiansPerSecond[T any](n numeric.Numeric[T], degrees T) T {
	return hertzToRadiansPerSecond(n, degreesPerSecondToHertz(n, degrees))
}

func radiansPerSecondToDegreesPerSecond[T any](n numeric.Numeric[T], radians T) T {
	return hertzToDegreesPerSecond(n, radiansPerSecondToHertz(n, radians))
}

func DegreesPerSecondToHertz(degrees decimal.Decimal) decimal.Decimal {
	return degreesPerSecondToHertz(dec, degrees)
}

func RadiansPerSecondToHertz(radians decimal.Decimal) decimal.Decimal {
	return radiansPerSecondToHertz(dec, radians)
}

func HertzToDegreesPerSecond(hertz decimal.Decimal) decimal.Decimal {
	return hertzToDegreesPerSecond(dec, hertz)
}

func HertzToRadiansPerSecond(hertz decimal.Decimal) decimal.Decimal {
	return hertzToRadiansPerSecond(dec, hertz)
}

// DegreesPerSecondToRadiansPerSecond is HertzToRadiansPerSecond(DegreesPerSecondToHertz(degrees)).
func DegreesPerSecondToRadiansPerSecond(degrees decimal.Decimal) decimal.Decimal {
	return degreesPerSecondToRadiansPerSecond(dec, degrees)
}

// RadiansPerSecondToDegreesPerSecond is HertzToDegreesPerSecond(RadiansPerSecondToHertz(radians)).
func RadiansPerSecondToDegreesPerSecond(radians decimal.Decimal) decimal.Decimal {
	return radiansPerSecondToDegreesPerSecond(dec, radians)
}
