package shared

import (
	"context"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/usage"
	"tokengate/internal/domain/wallet"
	sqlc "tokengate/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Sessions() SessionRepository
	Rules() RuleRepository
	Customers() CustomerRepository
	Usages() UsageRepository
	Shops() ShopRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads write-side state. Missing rows surface as
// infra.KindNotFound repository errors.
type CommandReads interface {
	SessionByToken(ctx context.Context, token session.Token) (*session.Session, error)
	ShopByDomain(ctx context.Context, domain string) (*ShopSnapshot, error)
	ActiveRulesByShop(ctx context.Context, shopID uuid.UUID) ([]*rule.Rule, error)
	// CustomerUsageCount counts redemptions of ruleID by the wallet's customer
	// record in shopID; zero when the wallet was never seen.
	CustomerUsageCount(ctx context.Context, ruleID, shopID uuid.UUID, addr wallet.Address) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *session.Session) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, token session.Token) (*session.Session, error)
	// SaveResolution persists a status that left pending. It reports false when
	// another writer resolved the session first.
	SaveResolution(ctx context.Context, tx sqlc.DBTX, s *session.Session, now time.Time) (bool, error)
	ExpireStale(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type RuleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rule.Rule) error
	Update(ctx context.Context, tx sqlc.DBTX, r *rule.Rule) error
	Delete(ctx context.Context, tx sqlc.DBTX, shopID, id uuid.UUID) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, shopID, id uuid.UUID) (*rule.Rule, error)
	// IncrementUsage bumps the counter unless the usage limit is reached; it
	// reports whether a slot was taken.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type CustomerRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, addr wallet.Address, chainID int64, now time.Time) (uuid.UUID, error)
}

type UsageRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rec usage.Record) error
	CountForCustomer(ctx context.Context, tx sqlc.DBTX, ruleID, customerID uuid.UUID) (int64, error)
}

type ShopRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, domain string, now time.Time) (*ShopSnapshot, error)
}
