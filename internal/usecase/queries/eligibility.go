package queries

import (
	"context"
	"log/slog"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/metrics"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultEligibilityWorkers = 8
	defaultRuleTimeout        = 8 * time.Second
)

type CheckBalanceRequest struct {
	Shop          string
	WalletAddress string
	SessionToken  string
}

// EligibleDiscount is a rule the wallet can redeem right now, with amounts in
// human units.
type EligibleDiscount struct {
	Rule           *rule.Rule
	TokenBalance   string
	RequiredTokens string
}

type EligibilityResult struct {
	WalletAddress wallet.Address
	Discounts     []EligibleDiscount
}

type EligibilityQueries interface {
	CheckBalance(ctx context.Context, req CheckBalanceRequest) (*EligibilityResult, error)
}

type EligibilityOptions struct {
	Workers     int
	RuleTimeout time.Duration
}

type eligibilityQueriesImpl struct {
	uow    shared.UnitOfWork
	oracle token.Oracle
	clock  clock.Clock
	opts   EligibilityOptions
}

func NewEligibilityQueries(uow shared.UnitOfWork, oracle token.Oracle, clk clock.Clock, opts EligibilityOptions) EligibilityQueries {
	if opts.Workers <= 0 {
		opts.Workers = defaultEligibilityWorkers
	}
	if opts.RuleTimeout <= 0 {
		opts.RuleTimeout = defaultRuleTimeout
	}
	return &eligibilityQueriesImpl{uow: uow, oracle: oracle, clock: clk, opts: opts}
}

// CheckBalance evaluates every active rule of the shop for a verified wallet.
// Rules are checked concurrently; a rule whose check fails is left out and
// never fails the whole call. The wallet is recorded as a verified customer
// regardless of the outcome.
func (q *eligibilityQueriesImpl) CheckBalance(ctx context.Context, req CheckBalanceRequest) (*EligibilityResult, error) {
	addr, err := wallet.ParseAddress(req.WalletAddress)
	if err != nil {
		return nil, err
	}
	sess, err := shared.AuthorizedSession(ctx, q.uow.CommandReads(), req.SessionToken, req.Shop, addr)
	if err != nil {
		return nil, err
	}
	shop, err := shared.ActiveShop(ctx, q.uow.CommandReads(), sess.Shop())
	if err != nil {
		return nil, err
	}
	rules, err := q.uow.CommandReads().ActiveRulesByShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	found := make([]*EligibleDiscount, len(rules))

	var g errgroup.Group
	g.SetLimit(q.opts.Workers)
	for i, r := range rules {
		g.Go(func() error {
			d, err := q.evaluate(ctx, r, shop.ID, addr, now)
			if err != nil {
				metrics.Discount().RuleOutcome("skipped")
				slog.Warn("eligibility check failed, rule omitted",
					slog.String("rule_id", r.ID().String()),
					slog.Int64("chain_id", r.ChainID()),
					slog.String("error", err.Error()))
				return nil
			}
			found[i] = d
			return nil
		})
	}
	_ = g.Wait()

	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Customers().Upsert(ctx, tx.DB(), shop.ID, addr, sess.ChainID(), now)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &EligibilityResult{WalletAddress: addr, Discounts: []EligibleDiscount{}}
	for _, d := range found {
		if d != nil {
			result.Discounts = append(result.Discounts, *d)
		}
	}
	return result, nil
}

// evaluate returns nil without error when the wallet simply does not qualify.
func (q *eligibilityQueriesImpl) evaluate(ctx context.Context, r *rule.Rule, shopID uuid.UUID, addr wallet.Address, now time.Time) (*EligibleDiscount, error) {
	ctx, cancel := context.WithTimeout(ctx, q.opts.RuleTimeout)
	defer cancel()

	balance, err := q.oracle.GetBalance(ctx, r.ChainID(), r.TokenContract(), addr)
	if err != nil {
		return nil, err
	}
	uses, err := q.uow.CommandReads().CustomerUsageCount(ctx, r.ID(), shopID, addr)
	if err != nil {
		return nil, err
	}
	e, err := r.Evaluate(balance, now, uses)
	if err != nil {
		return nil, err
	}
	if !e.Eligible() {
		metrics.Discount().RuleOutcome("ineligible")
		return nil, nil
	}
	metrics.Discount().RuleOutcome("eligible")
	return &EligibleDiscount{
		Rule:           r,
		TokenBalance:   e.FormattedBalance(),
		RequiredTokens: e.FormattedRequirement(),
	}, nil
}
