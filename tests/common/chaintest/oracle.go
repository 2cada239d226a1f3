//go:build unit || e2e

// Package chaintest provides a token.Oracle served from memory.
package chaintest

import (
	"context"
	"math/big"
	"sync"
	"time"

	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type holding struct {
	chainID  int64
	contract wallet.Address
	holder   wallet.Address
}

type Oracle struct {
	mu       sync.RWMutex
	chains   map[int64]error
	decimals map[wallet.Address]uint8
	infos    map[wallet.Address]token.Info
	balances map[holding]*big.Int
	delays   map[int64]time.Duration
	calls    int
}

var _ token.Oracle = (*Oracle)(nil)

// NewOracle supports the given chains; tokens default to 18 decimals.
func NewOracle(chainIDs ...int64) *Oracle {
	o := &Oracle{
		chains:   map[int64]error{},
		decimals: map[wallet.Address]uint8{},
		infos:    map[wallet.Address]token.Info{},
		balances: map[holding]*big.Int{},
		delays:   map[int64]time.Duration{},
	}
	for _, id := range chainIDs {
		o.chains[id] = nil
	}
	return o
}

// SetBalance stores a balance in human units, e.g. "150.5".
func (o *Oracle) SetBalance(chainID int64, contract, holder wallet.Address, amount string) *Oracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	dec := o.decimalsLocked(contract)
	raw, err := token.ToRaw(decimal.RequireFromString(amount), dec)
	if err != nil {
		panic(err)
	}
	o.balances[holding{chainID, contract, holder}] = raw
	return o
}

func (o *Oracle) SetToken(contract wallet.Address, info token.Info) *Oracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.decimals[contract] = info.Decimals
	o.infos[contract] = info
	return o
}

// Fail makes every call on chainID return err wrapped as ErrRemoteUnavailable.
func (o *Oracle) Fail(chainID int64, err error) *Oracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.chains[chainID] = err
	return o
}

// Delay holds every call on chainID for d before answering.
func (o *Oracle) Delay(chainID int64, d time.Duration) *Oracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.delays[chainID] = d
	return o
}

func (o *Oracle) Calls() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.calls
}

func (o *Oracle) Supports(chainID int64) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.chains[chainID]
	return ok
}

func (o *Oracle) GetBalance(ctx context.Context, chainID int64, contract, holder wallet.Address) (token.Balance, error) {
	o.wait(ctx, chainID)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if err := o.check(ctx, chainID); err != nil {
		return token.Balance{}, err
	}
	raw, ok := o.balances[holding{chainID, contract, holder}]
	if !ok {
		raw = big.NewInt(0)
	}
	return token.Balance{Raw: new(big.Int).Set(raw), Decimals: o.decimalsLocked(contract)}, nil
}

func (o *Oracle) GetTokenInfo(ctx context.Context, chainID int64, contract wallet.Address) (token.Info, error) {
	o.wait(ctx, chainID)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if err := o.check(ctx, chainID); err != nil {
		return token.Info{}, err
	}
	info, ok := o.infos[contract]
	if !ok {
		return token.Info{Name: "Test Token", Symbol: "TST", Decimals: o.decimalsLocked(contract)}, nil
	}
	return info, nil
}

func (o *Oracle) wait(ctx context.Context, chainID int64) {
	o.mu.RLock()
	d := o.delays[chainID]
	o.mu.RUnlock()
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func (o *Oracle) check(ctx context.Context, chainID int64) error {
	if err := ctx.Err(); err != nil {
		return token.ErrRemoteUnavailable
	}
	failure, ok := o.chains[chainID]
	if !ok {
		return token.ErrUnsupportedChain
	}
	if failure != nil {
		return errs.WithCause(token.ErrRemoteUnavailable, failure)
	}
	return nil
}

func (o *Oracle) decimalsLocked(contract wallet.Address) uint8 {
	if d, ok := o.decimals[contract]; ok {
		return d
	}
	return 18
}
