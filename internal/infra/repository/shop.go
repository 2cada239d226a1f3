package repository

import (
	"context"
	"time"

	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"
	"tokengate/internal/usecase/shared"
)

type ShopWriteQueries interface {
	UpsertShop(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertShopParams) (sqlc.Shops, error)
}

type ShopRepository struct {
	queries ShopWriteQueries
}

func NewShopRepository(queries ShopWriteQueries) *ShopRepository {
	return &ShopRepository{queries: queries}
}

// Upsert installs the shop on first sight and reactivates it afterwards.
func (r *ShopRepository) Upsert(ctx context.Context, tx sqlc.DBTX, domain string, now time.Time) (*shared.ShopSnapshot, error) {
	row, err := r.queries.UpsertShop(ctx, tx, sqlc.UpsertShopParams{
		Domain:      domain,
		InstalledAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert shop", err)
	}
	return &shared.ShopSnapshot{
		ID:          row.ID,
		Domain:      row.Domain,
		IsActive:    row.IsActive,
		InstalledAt: pgconv.TimeFromPgtype(row.InstalledAt),
	}, nil
}
