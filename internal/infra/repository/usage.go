package repository

import (
	"context"

	"tokengate/internal/domain/usage"
	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UsageWriteQueries interface {
	CreateDiscountUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountUsageParams) error
	CountCustomerUsages(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCustomerUsagesParams) (int64, error)
}

type UsageRepository struct {
	queries UsageWriteQueries
}

func NewUsageRepository(queries UsageWriteQueries) *UsageRepository {
	return &UsageRepository{queries: queries}
}

func (r *UsageRepository) Create(ctx context.Context, tx sqlc.DBTX, rec usage.Record) error {
	if !rec.Code.Valid() {
		return usage.ErrInvalidCode
	}
	err := r.queries.CreateDiscountUsage(ctx, tx, sqlc.CreateDiscountUsageParams{
		ID:         rec.ID,
		RuleID:     rec.RuleID,
		CustomerID: rec.CustomerID,
		Amount:     pgconv.NumericFromDecimal(rec.Amount),
		Code:       rec.Code.String(),
		CreatedAt:  pgconv.TimeToPgtype(rec.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record discount usage", err)
	}
	return nil
}

func (r *UsageRepository) CountForCustomer(ctx context.Context, tx sqlc.DBTX, ruleID, customerID uuid.UUID) (int64, error) {
	n, err := r.queries.CountCustomerUsages(ctx, tx, sqlc.CountCustomerUsagesParams{RuleID: ruleID, CustomerID: customerID})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count customer usages", err)
	}
	return n, nil
}
