package numeric

import "github.com/shopspring/decimal"

// Decimal is the canonical fixed-point representation.
type Decimal struct{}

var _ Numeric[decimal.Decimal] = Decimal{}

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal      { return a.Add(b) }
func (Decimal) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Divide rounds half away from zero to DivisionPrecision fractional digits.
// The shopspring package-level DivisionPrecision is left alone.
// Panics if b is zero.
func (Decimal) Divide(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DivisionPrecision)
}

func (Decimal) FromDecimal(v decimal.Decimal) decimal.Decimal { return v }
func (Decimal) ToDecimal(v decimal.Decimal) decimal.Decimal   { return v }

// FromFloat64 panics on NaN and ±Inf, which have no decimal form.
func (Decimal) FromFloat64(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func (Decimal) ToFloat64(v decimal.Decimal) float64 { return v.InexactFloat64() }

func (Decimal) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }
