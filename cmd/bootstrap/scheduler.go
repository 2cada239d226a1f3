package bootstrap

import (
	"context"

	"tokengate/internal/infra/scheduler"
	"tokengate/internal/pkg/config"
	"tokengate/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewSessionSweeper,
	),
	fx.Invoke(func(*scheduler.Sweeper) {}),
)

func NewSessionSweeper(lc fx.Lifecycle, cfg config.Config, cmds commands.VerificationCommands) (*scheduler.Sweeper, error) {
	s, err := scheduler.NewSweeper(cfg.Verification.SweepSchedule, cmds)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return s, nil
}
