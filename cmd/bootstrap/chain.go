package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"tokengate/internal/domain/token"
	"tokengate/internal/infra/chain"
	"tokengate/internal/pkg/config"

	"go.uber.org/fx"
)

const probeDelay = 2 * time.Second

var ChainModule = fx.Module("chain",
	fx.Provide(
		NewChainRegistry,
		func(r *chain.Registry) token.Oracle { return r },
	),
)

// NewChainRegistry dials every configured endpoint. The startup probe only
// fails the boot when an endpoint serves a different chain than configured.
func NewChainRegistry(lc fx.Lifecycle, cfg config.Config) (*chain.Registry, error) {
	endpoints, err := cfg.Chain.Endpoints()
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		slog.Warn("no chain endpoints configured, every balance check will be skipped")
	}
	reg, err := chain.DialRegistry(endpoints)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reg.Probe(ctx, cfg.Chain.ProbeAttempts, probeDelay)
		},
		OnStop: func(_ context.Context) error {
			reg.Close()
			return nil
		},
	})
	return reg, nil
}
