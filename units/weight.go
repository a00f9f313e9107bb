package units

import (
	"github.com/rotblauer/unitconv/numeric"
	"github.com/shopspring/decimal"
)

func poundsToKilograms[T any](n numeric.Numeric[T], pounds T) T {
	return n.Multiply(pounds, n.FromDecimal(PoundsToKilogramsFactor))
}

func poundsToStones[T any](n numeric.Numeric[T], pounds T) T {
	return n.Multiply(pounds, n.FromDecimal(PoundsToStonesFactor))
}

func stonesToPounds[T any](n numeric.Numeric[T], stones T) T {
	return n.Multiply(stones, n.FromDecimal(StonesToPoundsFactor))
}

func kilogramsToPounds[T any](n numeric.Numeric[T], kilograms T) T {
	return n.Multiply(kilograms, n.FromDecimal(KilogramsToPoundsFactor))
}

func PoundsToKilograms(pounds decimal.Decimal) decimal.Decimal {
	return poundsToKilograms(dec, pounds)
}

// PoundsToStones uses the truncated factor 0.07142857 (not 1/14),
// so a round trip through StonesToPounds is off by about 2e-8 relative.
func PoundsToStones(pounds decimal.Decimal) decimal.Decimal {
	return poundsToStones(dec, pounds)
}

func StonesToPounds(stones decimal.Decimal) decimal.Decimal {
	return stonesToPounds(dec, stones)
}

func KilogramsToPounds(kilograms decimal.Decimal) decimal.Decimal {
	return kilogramsToPounds(dec, kilograms)
}
