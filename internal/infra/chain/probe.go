package chain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tokengate/internal/pkg/config"
	"tokengate/internal/pkg/errs"

	"github.com/avast/retry-go"
)

var ErrChainMismatch = errs.New("rpc endpoint serves a different chain")

// DialRegistry registers one EVM provider per configured endpoint.
func DialRegistry(endpoints []config.ChainEndpoint) (*Registry, error) {
	reg := NewRegistry()
	for _, ep := range endpoints {
		p, err := DialEVMProvider(ep.ID, ep.RPCURL)
		if err != nil {
			reg.Close()
			return nil, errs.Wrap(err, fmt.Sprintf("chain %d (%s)", ep.ID, ep.Name))
		}
		reg.Register(p, ep.Timeout)
	}
	return reg, nil
}

// Probe asks every endpoint which chain it serves. A mismatch with the
// configured id is an error; an unreachable endpoint is only logged and stays
// registered, so its calls fail with ErrRemoteUnavailable until it recovers.
func (r *Registry) Probe(ctx context.Context, attempts uint, delay time.Duration) error {
	if attempts == 0 {
		attempts = 1
	}
	for _, id := range r.ChainIDs() {
		e := r.entries[id]

		var remote int64
		err := retry.Do(
			func() error {
				callCtx, cancel := context.WithTimeout(ctx, e.timeout)
				defer cancel()
				var err error
				remote, err = e.provider.RemoteChainID(callCtx)
				return err
			},
			retry.Context(ctx),
			retry.Attempts(attempts),
			retry.Delay(delay),
			retry.DelayType(retry.FixedDelay),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			slog.Warn("chain endpoint unreachable at startup",
				slog.Int64("chain_id", id),
				slog.String("error", err.Error()))
			continue
		}
		if remote != id {
			return errs.Wrap(ErrChainMismatch, fmt.Sprintf("configured %d, endpoint reports %d", id, remote))
		}
		slog.Info("chain endpoint ready", slog.Int64("chain_id", id))
	}
	return nil
}
