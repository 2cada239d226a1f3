package readstore

import (
	"context"

	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UsageViewQueries interface {
	CountWalletUsages(ctx context.Context, db sqlc.DBTX, arg sqlc.CountWalletUsagesParams) (int64, error)
}

type UsageReadStore struct {
	queries UsageViewQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(queries UsageViewQueries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{queries: queries, db: db}
}

// CountByWallet counts a wallet's redemptions of one rule within a shop.
func (r *UsageReadStore) CountByWallet(ctx context.Context, ruleID, shopID uuid.UUID, addr wallet.Address) (int64, error) {
	n, err := r.queries.CountWalletUsages(ctx, r.db, sqlc.CountWalletUsagesParams{
		RuleID:        ruleID,
		ShopID:        shopID,
		WalletAddress: addr.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count wallet usages", err)
	}
	return n, nil
}
