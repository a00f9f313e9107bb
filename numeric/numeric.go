// Package numeric defines the arithmetic capability set the conversion formulas
// are written against, and its implementations for decimal, float64 and float32.
//
// Formulas take a Numeric[T] and never touch T's operators directly,
// so one formula body serves every representation.
package numeric

import "github.com/shopspring/decimal"

// DivisionPrecision is the number of fractional digits kept by decimal division.
// It matches the 28 significant digits of the Pi constant.
const DivisionPrecision int32 = 28

// Numeric is the set of operations a representation T must provide.
// There are no error returns; faults are whatever T natively does
// (IEEE Inf/NaN for floats, a panic for decimal division by zero).
type Numeric[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	Divide(a, b T) T

	// FromDecimal narrows a canonical decimal value to T.
	FromDecimal(v decimal.Decimal) T
	// ToDecimal widens v to the canonical representation.
	ToDecimal(v T) decimal.Decimal

	// FromFloat64 and ToFloat64 cross the boundary to native
	// transcendental functions (math.Sin and friends).
	FromFloat64(v float64) T
	ToFloat64(v T) float64

	Equal(a, b T) bool
}
