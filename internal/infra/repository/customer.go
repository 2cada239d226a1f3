package repository

import (
	"context"
	"time"

	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpsertVerifiedCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertVerifiedCustomerParams) (uuid.UUID, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
}

func NewCustomerRepository(queries CustomerWriteQueries) *CustomerRepository {
	return &CustomerRepository{queries: queries}
}

// Upsert records a wallet as verified for the shop and refreshes its last
// chain and timestamp. The customer id is stable across calls.
func (r *CustomerRepository) Upsert(ctx context.Context, tx sqlc.DBTX, shopID uuid.UUID, addr wallet.Address, chainID int64, now time.Time) (uuid.UUID, error) {
	id, err := r.queries.UpsertVerifiedCustomer(ctx, tx, sqlc.UpsertVerifiedCustomerParams{
		ShopID:          shopID,
		WalletAddress:   addr.String(),
		ChainID:         chainID,
		FirstVerifiedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert verified customer", err)
	}
	return id, nil
}
