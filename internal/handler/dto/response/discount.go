package response

import (
	"tokengate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppliedRuleResponse struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	DiscountType      string           `json:"discountType"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
}

type ApplyDiscountResponse struct {
	DiscountCode   string              `json:"discountCode"`
	DiscountAmount decimal.Decimal     `json:"discountAmount"`
	DiscountRule   AppliedRuleResponse `json:"discountRule"`
}

func FromApplyDiscount(r *commands.ApplyDiscountResult) ApplyDiscountResponse {
	return ApplyDiscountResponse{
		DiscountCode:   r.Code.String(),
		DiscountAmount: r.Amount,
		DiscountRule: AppliedRuleResponse{
			ID:                r.Rule.ID,
			Name:              r.Rule.Name,
			DiscountType:      r.Rule.Kind.String(),
			DiscountValue:     r.Rule.Value,
			MaxDiscountAmount: r.Rule.MaxDiscountAmount,
		},
	}
}
