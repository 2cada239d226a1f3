package readstore

import (
	"context"

	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"
	"tokengate/internal/usecase/shared"
)

type ShopViewQueries interface {
	GetShopByDomain(ctx context.Context, db sqlc.DBTX, domain string) (sqlc.Shops, error)
}

type ShopReadStore struct {
	queries ShopViewQueries
	db      sqlc.DBTX
}

func NewShopReadStore(queries ShopViewQueries, db sqlc.DBTX) *ShopReadStore {
	return &ShopReadStore{queries: queries, db: db}
}

func (r *ShopReadStore) FindByDomain(ctx context.Context, domain string) (*shared.ShopSnapshot, error) {
	row, err := r.queries.GetShopByDomain(ctx, r.db, domain)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get shop", err)
	}
	return &shared.ShopSnapshot{
		ID:          row.ID,
		Domain:      row.Domain,
		IsActive:    row.IsActive,
		InstalledAt: pgconv.TimeFromPgtype(row.InstalledAt),
	}, nil
}
