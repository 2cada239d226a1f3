package token

import (
	"context"
	"math/big"

	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/errs"
)

var (
	ErrUnsupportedChain  = errs.NewMarked("unsupported chain", errs.ErrValidation)
	ErrInvalidAddress    = errs.NewMarked("invalid token or wallet address", errs.ErrValidation)
	ErrRemoteUnavailable = errs.NewMarked("chain endpoint unavailable", errs.ErrUpstreamUnavailable)
)

// Balance is an on-chain balance in the token's smallest unit.
type Balance struct {
	Raw      *big.Int
	Decimals uint8
}

// Formatted renders the balance in human units.
func (b Balance) Formatted() string {
	return FormatUnits(b.Raw, b.Decimals)
}

// AtLeast reports whether the balance covers threshold. Both are raw units.
func (b Balance) AtLeast(threshold *big.Int) bool {
	if b.Raw == nil || threshold == nil {
		return false
	}
	return b.Raw.Cmp(threshold) >= 0
}

type Info struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Oracle answers balance questions across configured chains.
type Oracle interface {
	GetBalance(ctx context.Context, chainID int64, contract, holder wallet.Address) (Balance, error)
	GetTokenInfo(ctx context.Context, chainID int64, contract wallet.Address) (Info, error)
	Supports(chainID int64) bool
}
