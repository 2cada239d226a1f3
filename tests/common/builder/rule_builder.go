//go:build unit || e2e

package builder

import (
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/wallet"
	reqdto "tokengate/internal/handler/dto/request"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/pgconv"
	"tokengate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const DefaultTokenContract = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"

type RuleBuilder struct {
	ID                uuid.UUID
	ShopID            uuid.UUID
	Name              string
	Description       string
	MinTokenAmount    decimal.Decimal
	TokenContract     string
	ChainID           int64
	Kind              rule.Kind
	Value             decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	UsageLimit        *int32
	PerCustomerLimit  *int32
	StartsAt          *time.Time
	EndsAt            *time.Time
	Active            bool
	UsageCount        int32
	Now               time.Time
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:             uuid.New(),
		ShopID:         uuid.New(),
		Name:           "Holder discount",
		Description:    "10% off for holders",
		MinTokenAmount: decimal.NewFromInt(100),
		TokenContract:  DefaultTokenContract,
		ChainID:        1,
		Kind:           rule.KindPercentage,
		Value:          decimal.NewFromInt(10),
		Active:         true,
		Now:            time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) WithLimits(usageLimit, perCustomerLimit *int32) *RuleBuilder {
	b.UsageLimit = usageLimit
	b.PerCustomerLimit = perCustomerLimit
	return b
}

func (b *RuleBuilder) WithWindow(startsAt, endsAt *time.Time) *RuleBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *RuleBuilder) Params() rule.Params {
	return rule.Params{
		Name:              b.Name,
		Description:       b.Description,
		MinTokenAmount:    b.MinTokenAmount,
		TokenContract:     b.TokenContract,
		ChainID:           b.ChainID,
		Kind:              b.Kind,
		Value:             b.Value,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		PerCustomerLimit:  b.PerCustomerLimit,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
	}
}

// Build methods
func (b *RuleBuilder) BuildDomain() (*rule.Rule, error) {
	return rule.New(clock.NewMockClock(b.Now), b.ShopID, b.Params())
}

// BuildSnapshot skips creation validation, for rules already at rest.
func (b *RuleBuilder) BuildSnapshot() rule.Snapshot {
	return rule.Snapshot{
		ID:                b.ID,
		ShopID:            b.ShopID,
		Name:              b.Name,
		Description:       b.Description,
		MinTokenAmount:    b.MinTokenAmount,
		TokenContract:     wallet.MustParseAddress(b.TokenContract),
		ChainID:           b.ChainID,
		Kind:              b.Kind,
		Value:             b.Value,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		PerCustomerLimit:  b.PerCustomerLimit,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
		Active:            b.Active,
		UsageCount:        b.UsageCount,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *RuleBuilder) BuildReconstructed() *rule.Rule {
	return rule.Reconstruct(b.BuildSnapshot())
}

func (b *RuleBuilder) BuildInfra() sqlc.DiscountRules {
	return sqlc.DiscountRules{
		ID:                b.ID,
		ShopID:            b.ShopID,
		Name:              b.Name,
		Description:       b.Description,
		MinTokenAmount:    pgconv.NumericFromDecimal(b.MinTokenAmount),
		TokenContract:     b.TokenContract,
		ChainID:           b.ChainID,
		DiscountType:      string(b.Kind),
		DiscountValue:     pgconv.NumericFromDecimal(b.Value),
		MaxDiscountAmount: pgconv.NumericFromDecimalPtr(b.MaxDiscountAmount),
		UsageLimit:        pgconv.Int32PtrToPgtype(b.UsageLimit),
		PerCustomerLimit:  pgconv.Int32PtrToPgtype(b.PerCustomerLimit),
		UsageCount:        b.UsageCount,
		StartsAt:          pgconv.TimePtrToPgtype(b.StartsAt),
		EndsAt:            pgconv.TimePtrToPgtype(b.EndsAt),
		IsActive:          b.Active,
		CreatedAt:         pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *RuleBuilder) BuildView() *queries.RuleView {
	return &queries.RuleView{
		ID:                b.ID,
		ShopID:            b.ShopID,
		Name:              b.Name,
		Description:       b.Description,
		MinTokenAmount:    b.MinTokenAmount,
		TokenContract:     b.TokenContract,
		ChainID:           b.ChainID,
		DiscountType:      string(b.Kind),
		DiscountValue:     b.Value,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		PerCustomerLimit:  b.PerCustomerLimit,
		UsageCount:        b.UsageCount,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
		IsActive:          b.Active,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *RuleBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRuleRequest {
	return reqdto.CreateDiscountRuleRequest{
		Name:                 b.Name,
		Description:          b.Description,
		MinTokenAmount:       b.MinTokenAmount,
		TokenContractAddress: b.TokenContract,
		ChainID:              b.ChainID,
		DiscountType:         string(b.Kind),
		DiscountValue:        b.Value,
		MaxDiscountAmount:    b.MaxDiscountAmount,
		UsageLimit:           b.UsageLimit,
		PerCustomerLimit:     b.PerCustomerLimit,
		StartsAt:             b.StartsAt,
		EndsAt:               b.EndsAt,
	}
}
