package readstore

import (
	"context"

	"tokengate/internal/domain/rule"
	"tokengate/internal/infra"
	"tokengate/internal/infra/repository/converter"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"
	"tokengate/internal/usecase/queries"

	"github.com/google/uuid"
)

type RuleViewQueries interface {
	ListDiscountRulesByShop(ctx context.Context, db sqlc.DBTX, shopID uuid.UUID) ([]sqlc.DiscountRules, error)
	ListActiveDiscountRulesByShop(ctx context.Context, db sqlc.DBTX, shopID uuid.UUID) ([]sqlc.DiscountRules, error)
	GetShopStats(ctx context.Context, db sqlc.DBTX, shopID uuid.UUID) (sqlc.GetShopStatsRow, error)
}

type RuleReadStore struct {
	queries RuleViewQueries
	db      sqlc.DBTX
}

var _ queries.RuleReadStore = (*RuleReadStore)(nil)

func NewRuleReadStore(queries RuleViewQueries, db sqlc.DBTX) *RuleReadStore {
	return &RuleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RuleReadStore) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.RuleView, error) {
	rows, err := r.queries.ListDiscountRulesByShop(ctx, r.db, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}
	views := make([]*queries.RuleView, 0, len(rows))
	for _, row := range rows {
		v, err := toRuleView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode discount rule", err)
		}
		views = append(views, v)
	}
	return views, nil
}

// ListActiveByShop returns domain rules in creation order for evaluation.
func (r *RuleReadStore) ListActiveByShop(ctx context.Context, shopID uuid.UUID) ([]*rule.Rule, error) {
	rows, err := r.queries.ListActiveDiscountRulesByShop(ctx, r.db, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active discount rules", err)
	}
	rules, err := converter.RulesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount rule", err)
	}
	return rules, nil
}

func (r *RuleReadStore) StatsByShop(ctx context.Context, shopID uuid.UUID) (*queries.ShopStats, error) {
	row, err := r.queries.GetShopStats(ctx, r.db, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get shop stats", err)
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalDiscountAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode discount total", err)
	}
	return &queries.ShopStats{
		TotalRules:             row.TotalRules,
		ActiveRules:            row.ActiveRules,
		TotalVerifiedCustomers: row.TotalVerifiedCustomers,
		TotalDiscountsUsed:     row.TotalDiscountsUsed,
		TotalDiscountAmount:    total,
	}, nil
}

func toRuleView(row sqlc.DiscountRules) (*queries.RuleView, error) {
	minimum, err := pgconv.DecimalFromNumeric(row.MinTokenAmount)
	if err != nil {
		return nil, err
	}
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	maxAmount, err := pgconv.DecimalPtrFromNumeric(row.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}
	return &queries.RuleView{
		ID:                row.ID,
		ShopID:            row.ShopID,
		Name:              row.Name,
		Description:       row.Description,
		MinTokenAmount:    minimum,
		TokenContract:     row.TokenContract,
		ChainID:           row.ChainID,
		DiscountType:      row.DiscountType,
		DiscountValue:     value,
		MaxDiscountAmount: maxAmount,
		UsageLimit:        pgconv.Int32PtrFromPgtype(row.UsageLimit),
		PerCustomerLimit:  pgconv.Int32PtrFromPgtype(row.PerCustomerLimit),
		UsageCount:        row.UsageCount,
		StartsAt:          pgconv.TimePtrFromPgtype(row.StartsAt),
		EndsAt:            pgconv.TimePtrFromPgtype(row.EndsAt),
		IsActive:          row.IsActive,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
