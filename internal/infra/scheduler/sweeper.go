package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tokengate/internal/pkg/errs"

	"github.com/robfig/cron"
)

const sweepTimeout = 30 * time.Second

// SessionExpirer is satisfied by commands.VerificationCommands.
type SessionExpirer interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// Sweeper periodically moves pending sessions past their expiry to expired,
// so abandoned challenges do not stay pending forever.
type Sweeper struct {
	cron    *cron.Cron
	expirer SessionExpirer
}

func NewSweeper(schedule string, expirer SessionExpirer) (*Sweeper, error) {
	if _, err := cron.Parse(schedule); err != nil {
		return nil, errs.Wrap(err, fmt.Sprintf("invalid sweep schedule %q", schedule))
	}
	s := &Sweeper{cron: cron.New(), expirer: expirer}
	if err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, errs.Wrap(err, "failed to schedule session sweep")
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.expirer.ExpireStale(ctx)
	if err != nil {
		slog.Error("session sweep failed", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		slog.Info("expired stale sessions", slog.Int64("count", n))
	}
}
