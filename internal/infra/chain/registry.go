package chain

import (
	"context"
	"log/slog"
	"math/big"
	"sort"
	"time"

	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const defaultCallTimeout = 5 * time.Second

type entry struct {
	provider Provider
	timeout  time.Duration
}

// Registry routes oracle calls to the provider configured for each chain.
// It is built once at startup and read-only afterwards.
type Registry struct {
	entries map[int64]entry
}

var _ token.Oracle = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{entries: map[int64]entry{}}
}

// Register adds or replaces the provider for p.ChainID(). A non-positive
// timeout falls back to the default.
func (r *Registry) Register(p Provider, timeout time.Duration) {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	r.entries[p.ChainID()] = entry{provider: p, timeout: timeout}
}

func (r *Registry) Supports(chainID int64) bool {
	_, ok := r.entries[chainID]
	return ok
}

// ChainIDs returns the registered chains in ascending order.
func (r *Registry) ChainIDs() []int64 {
	ids := make([]int64, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) Close() {
	for _, e := range r.entries {
		e.provider.Close()
	}
}

// GetBalance fetches balance and decimals concurrently under the chain's timeout.
func (r *Registry) GetBalance(ctx context.Context, chainID int64, contract, holder wallet.Address) (token.Balance, error) {
	e, err := r.lookup(chainID, contract, holder)
	if err != nil {
		return token.Balance{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var (
		raw      *big.Int
		decimals uint8
	)
	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = e.provider.BalanceOf(gctx, contract.Common(), holder.Common())
		return err
	})
	g.Go(func() error {
		var err error
		decimals, err = e.provider.Decimals(gctx, contract.Common())
		return err
	})
	err = g.Wait()
	metrics.Chain().Observe(chainID, "balance", started, err)
	if err != nil {
		return token.Balance{}, r.unavailable(chainID, "balance", err)
	}
	return token.Balance{Raw: raw, Decimals: decimals}, nil
}

func (r *Registry) GetTokenInfo(ctx context.Context, chainID int64, contract wallet.Address) (token.Info, error) {
	e, err := r.lookup(chainID, contract)
	if err != nil {
		return token.Info{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	started := time.Now()
	info, err := e.provider.TokenInfo(ctx, contract.Common())
	metrics.Chain().Observe(chainID, "token_info", started, err)
	if err != nil {
		return token.Info{}, r.unavailable(chainID, "token_info", err)
	}
	return info, nil
}

func (r *Registry) lookup(chainID int64, addrs ...wallet.Address) (entry, error) {
	e, ok := r.entries[chainID]
	if !ok {
		return entry{}, token.ErrUnsupportedChain
	}
	for _, a := range addrs {
		if a.IsZero() || !common.IsHexAddress(a.String()) {
			return entry{}, token.ErrInvalidAddress
		}
	}
	return e, nil
}

func (r *Registry) unavailable(chainID int64, method string, cause error) error {
	slog.Warn("chain call failed",
		slog.Int64("chain_id", chainID),
		slog.String("method", method),
		slog.String("error", cause.Error()))
	return errs.WithCause(token.ErrRemoteUnavailable, cause)
}
