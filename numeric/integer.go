package numeric

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"math/big"
)

// FromInteger widens any Go integer to an exact decimal.
// Unsigned values above math.MaxInt64 are preserved.
func FromInteger[I constraints.Integer](i I) decimal.Decimal {
	// Unsigned types never take this branch; they always go through SetUint64.
	if i < 0 {
		return decimal.NewFromInt(int64(i))
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(i)), 0)
}
