package numeric

import "github.com/shopspring/decimal"

// Float64 is IEEE-754 double precision arithmetic.
type Float64 struct{}

var _ Numeric[float64] = Float64{}

func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Subtract(a, b float64) float64 { return a - b }
func (Float64) Multiply(a, b float64) float64 { return a * b }
func (Float64) Divide(a, b float64) float64   { return a / b }

func (Float64) FromDecimal(v decimal.Decimal) float64 { return v.InexactFloat64() }

// ToDecimal uses the shortest decimal that round-trips to v,
// so 0.1 widens to exactly 0.1. Panics on NaN and ±Inf.
func (Float64) ToDecimal(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func (Float64) FromFloat64(v float64) float64 { return v }
func (Float64) ToFloat64(v float64) float64   { return v }

func (Float64) Equal(a, b float64) bool { return a == b }

// Float32 is IEEE-754 single precision arithmetic.
type Float32 struct{}

var _ Numeric[float32] = Float32{}

func (Float32) Add(a, b float32) float32      { return a + b }
func (Float32) Subtract(a, b float32) float32 { return a - b }
func (Float32) Multiply(a, b float32) float32 { return a * b }
func (Float32) Divide(a, b float32) float32   { return a / b }

// FromDecimal rounds v straight to the nearest float32,
// avoiding a double rounding through float64.
func (Float32) FromDecimal(v decimal.Decimal) float32 {
	f, _ := v.Rat().Float32()
	return f
}

// ToDecimal panics on NaN and ±Inf.
func (Float32) ToDecimal(v float32) decimal.Decimal { return decimal.NewFromFloat32(v) }

func (Float32) FromFloat64(v float64) float32 { return float32(v) }
func (Float32) ToFloat64(v float32) float64   { return float64(v) }

func (Float32) Equal(a, b float32) bool { return a == b }
