package request

import (
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type CreateDiscountRuleRequest struct {
	Name                 string           `json:"name" binding:"required,max=255"`
	Description          string           `json:"description" binding:"max=1000"`
	MinTokenAmount       decimal.Decimal  `json:"minTokenAmount"`
	TokenContractAddress string           `json:"tokenContractAddress" binding:"required"`
	ChainID              int64            `json:"chainId"`
	DiscountType         string           `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue        decimal.Decimal  `json:"discountValue"`
	MaxDiscountAmount    *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
	UsageLimit           *int32           `json:"usageLimit,omitempty" binding:"omitempty,min=1"`
	PerCustomerLimit     *int32           `json:"perCustomerLimit,omitempty" binding:"omitempty,min=1"`
	StartsAt             *time.Time       `json:"startsAt,omitempty"`
	EndsAt               *time.Time       `json:"endsAt,omitempty"`
}

// ToParams leaves amount, window and chain validation to rule.New.
func (r CreateDiscountRuleRequest) ToParams() rule.Params {
	return rule.Params{
		Name:              r.Name,
		Description:       r.Description,
		MinTokenAmount:    r.MinTokenAmount,
		TokenContract:     r.TokenContractAddress,
		ChainID:           r.ChainID,
		Kind:              rule.Kind(r.DiscountType),
		Value:             r.DiscountValue,
		MaxDiscountAmount: r.MaxDiscountAmount,
		UsageLimit:        r.UsageLimit,
		PerCustomerLimit:  r.PerCustomerLimit,
		StartsAt:          r.StartsAt,
		EndsAt:            r.EndsAt,
	}
}

// UpdateDiscountRuleRequest is a partial update: absent members are kept,
// explicit nulls clear optional fields. The token contract and chain are
// not listed, so sending them is rejected as an unknown field.
type UpdateDiscountRuleRequest struct {
	Name              patch.Field[string]          `json:"name"`
	Description       patch.Field[string]          `json:"description"`
	IsActive          patch.Field[bool]            `json:"isActive"`
	MinTokenAmount    patch.Field[decimal.Decimal] `json:"minTokenAmount"`
	DiscountType      patch.Field[rule.Kind]       `json:"discountType"`
	DiscountValue     patch.Field[decimal.Decimal] `json:"discountValue"`
	MaxDiscountAmount patch.Field[decimal.Decimal] `json:"maxDiscountAmount"`
	UsageLimit        patch.Field[int32]           `json:"usageLimit"`
	PerCustomerLimit  patch.Field[int32]           `json:"perCustomerLimit"`
	StartsAt          patch.Field[time.Time]       `json:"startsAt"`
	EndsAt            patch.Field[time.Time]       `json:"endsAt"`
}

func (r UpdateDiscountRuleRequest) ToPatch() rule.Patch {
	return rule.Patch{
		Name:              r.Name,
		Description:       r.Description,
		Active:            r.IsActive,
		MinTokenAmount:    r.MinTokenAmount,
		Kind:              r.DiscountType,
		Value:             r.DiscountValue,
		MaxDiscountAmount: r.MaxDiscountAmount,
		UsageLimit:        r.UsageLimit,
		PerCustomerLimit:  r.PerCustomerLimit,
		StartsAt:          r.StartsAt,
		EndsAt:            r.EndsAt,
	}
}
