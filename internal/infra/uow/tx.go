package uow

import (
	"context"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra/readstore"
	"tokengate/internal/infra/repository"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
)

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	sessionRepo  shared.SessionRepository
	ruleRepo     shared.RuleRepository
	customerRepo shared.CustomerRepository
	usageRepo    shared.UsageRepository
	shopRepo     shared.ShopRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q)
	}
	return t.sessionRepo
}

func (t *pgTx) Rules() shared.RuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewRuleRepository(t.uow.q)
	}
	return t.ruleRepo
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q)
	}
	return t.customerRepo
}

func (t *pgTx) Usages() shared.UsageRepository {
	if t.usageRepo == nil {
		t.usageRepo = repository.NewUsageRepository(t.uow.q)
	}
	return t.usageRepo
}

func (t *pgTx) Shops() shared.ShopRepository {
	if t.shopRepo == nil {
		t.shopRepo = repository.NewShopRepository(t.uow.q)
	}
	return t.shopRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads runs against the pool outside a transaction and against the
// transaction inside Within.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	sessionStore *readstore.SessionReadStore
	shopStore    *readstore.ShopReadStore
	ruleStore    *readstore.RuleReadStore
	usageStore   *readstore.UsageReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{
		q:            q,
		dbtx:         dbtx,
		sessionStore: readstore.NewSessionReadStore(q, dbtx),
		shopStore:    readstore.NewShopReadStore(q, dbtx),
		ruleStore:    readstore.NewRuleReadStore(q, dbtx),
		usageStore:   readstore.NewUsageReadStore(q, dbtx),
	}
}

func (r *commandReads) SessionByToken(ctx context.Context, token session.Token) (*session.Session, error) {
	return r.sessionStore.FindByToken(ctx, token)
}

func (r *commandReads) ShopByDomain(ctx context.Context, domain string) (*shared.ShopSnapshot, error) {
	return r.shopStore.FindByDomain(ctx, session.NormalizeShop(domain))
}

func (r *commandReads) ActiveRulesByShop(ctx context.Context, shopID uuid.UUID) ([]*rule.Rule, error) {
	return r.ruleStore.ListActiveByShop(ctx, shopID)
}

func (r *commandReads) CustomerUsageCount(ctx context.Context, ruleID, shopID uuid.UUID, addr wallet.Address) (int64, error) {
	return r.usageStore.CountByWallet(ctx, ruleID, shopID, addr)
}
