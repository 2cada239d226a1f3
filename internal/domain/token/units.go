package token

import (
	"math/big"

	"tokengate/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errs.NewMarked("token amount must not be negative", errs.ErrValidation)
	ErrTooPrecise     = errs.NewMarked("token amount has more fractional digits than the token supports", errs.ErrValidation)
)

// ToRaw scales a human amount into the smallest on-chain unit: "1.5" with 18
// decimals becomes 1500000000000000000. The arithmetic stays in integers.
func ToRaw(amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	scaled := amount.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, ErrTooPrecise
	}
	return scaled.Truncate(0).BigInt(), nil
}

// FormatUnits renders a raw amount in human units without trailing zeros.
func FormatUnits(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return "0"
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}
