package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the fixed-point precision of one whole token.
const Decimals = 18

// FormatUnits renders base units as whole tokens, e.g. 1500000000000000000 -> "1.5".
func FormatUnits(amount uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -Decimals).String()
}
