package repository

import (
	"context"

	"tokengate/internal/domain/rule"
	"tokengate/internal/infra"
	"tokengate/internal/infra/repository/converter"
	sqlc "tokengate/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RuleWriteQueries interface {
	CreateDiscountRule(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountRuleParams) error
	UpdateDiscountRule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDiscountRuleParams) (int64, error)
	DeleteDiscountRule(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteDiscountRuleParams) (int64, error)
	GetDiscountRuleForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDiscountRuleForUpdateParams) (sqlc.DiscountRules, error)
	IncrementDiscountRuleUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RuleRepository struct {
	queries RuleWriteQueries
}

func NewRuleRepository(queries RuleWriteQueries) *RuleRepository {
	return &RuleRepository{queries: queries}
}

func (r *RuleRepository) Create(ctx context.Context, tx sqlc.DBTX, dr *rule.Rule) error {
	if err := r.queries.CreateDiscountRule(ctx, tx, converter.RuleToCreateParams(dr)); err != nil {
		return infra.WrapRepoErr("failed to create discount rule", err)
	}
	return nil
}

func (r *RuleRepository) Update(ctx context.Context, tx sqlc.DBTX, dr *rule.Rule) error {
	n, err := r.queries.UpdateDiscountRule(ctx, tx, converter.RuleToUpdateParams(dr))
	if err != nil {
		return infra.WrapRepoErr("failed to update discount rule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) Delete(ctx context.Context, tx sqlc.DBTX, shopID, id uuid.UUID) error {
	n, err := r.queries.DeleteDiscountRule(ctx, tx, sqlc.DeleteDiscountRuleParams{ID: id, ShopID: shopID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount rule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("discount rule not found", nil, infra.KindNotFound)
	}
	return nil
}

// GetForUpdate locks the rule row until the transaction ends.
func (r *RuleRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, shopID, id uuid.UUID) (*rule.Rule, error) {
	row, err := r.queries.GetDiscountRuleForUpdate(ctx, tx, sqlc.GetDiscountRuleForUpdateParams{ID: id, ShopID: shopID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock discount rule", err)
	}
	dr, err := converter.RuleFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount rule", err)
	}
	return dr, nil
}

func (r *RuleRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.IncrementDiscountRuleUsage(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment discount usage", err)
	}
	return n == 1, nil
}
