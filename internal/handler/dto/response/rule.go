package response

import (
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/usecase/queries"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountRuleResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	MinTokenAmount       decimal.Decimal  `json:"minTokenAmount"`
	TokenContractAddress string           `json:"tokenContractAddress"`
	ChainID              int64            `json:"chainId"`
	DiscountType         string           `json:"discountType"`
	DiscountValue        decimal.Decimal  `json:"discountValue"`
	MaxDiscountAmount    *decimal.Decimal `json:"maxDiscountAmount"`
	UsageLimit           *int32           `json:"usageLimit"`
	PerCustomerLimit     *int32           `json:"perCustomerLimit"`
	UsageCount           int32            `json:"usageCount"`
	StartsAt             *time.Time       `json:"startsAt"`
	EndsAt               *time.Time       `json:"endsAt"`
	IsActive             bool             `json:"isActive"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

func FromRuleView(v *queries.RuleView) DiscountRuleResponse {
	return DiscountRuleResponse{
		ID:                   v.ID,
		Name:                 v.Name,
		Description:          v.Description,
		MinTokenAmount:       v.MinTokenAmount,
		TokenContractAddress: v.TokenContract,
		ChainID:              v.ChainID,
		DiscountType:         v.DiscountType,
		DiscountValue:        v.DiscountValue,
		MaxDiscountAmount:    v.MaxDiscountAmount,
		UsageLimit:           v.UsageLimit,
		PerCustomerLimit:     v.PerCustomerLimit,
		UsageCount:           v.UsageCount,
		StartsAt:             v.StartsAt,
		EndsAt:               v.EndsAt,
		IsActive:             v.IsActive,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromRuleViews(vs []*queries.RuleView) []DiscountRuleResponse {
	out := make([]DiscountRuleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromRuleView(v))
	}
	return out
}

// FromRule renders a rule straight from the write side, after create or update.
func FromRule(r *rule.Rule) DiscountRuleResponse {
	d := r.Discount()
	return DiscountRuleResponse{
		ID:                   r.ID(),
		Name:                 r.Name(),
		Description:          r.Description(),
		MinTokenAmount:       r.MinTokenAmount(),
		TokenContractAddress: r.TokenContract().String(),
		ChainID:              r.ChainID(),
		DiscountType:         d.Kind().String(),
		DiscountValue:        d.Value(),
		MaxDiscountAmount:    d.Cap(),
		UsageLimit:           r.Limits().UsageLimit(),
		PerCustomerLimit:     r.Limits().PerCustomerLimit(),
		UsageCount:           r.UsageCount(),
		StartsAt:             r.Window().StartsAt(),
		EndsAt:               r.Window().EndsAt(),
		IsActive:             r.IsActive(),
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}

type ShopStatsResponse struct {
	TotalRules             int64           `json:"totalRules"`
	ActiveRules            int64           `json:"activeRules"`
	TotalVerifiedCustomers int64           `json:"totalVerifiedCustomers"`
	TotalDiscountsUsed     int64           `json:"totalDiscountsUsed"`
	TotalDiscountAmount    decimal.Decimal `json:"totalDiscountAmount"`
}

func FromShopStats(s *queries.ShopStats) ShopStatsResponse {
	return ShopStatsResponse{
		TotalRules:             s.TotalRules,
		ActiveRules:            s.ActiveRules,
		TotalVerifiedCustomers: s.TotalVerifiedCustomers,
		TotalDiscountsUsed:     s.TotalDiscountsUsed,
		TotalDiscountAmount:    s.TotalDiscountAmount,
	}
}

type TokenInfoResponse struct {
	ChainID  int64  `json:"chainId"`
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

func FromTokenInfo(v *queries.TokenInfoView) TokenInfoResponse {
	return TokenInfoResponse{
		ChainID:  v.ChainID,
		Address:  v.Address,
		Name:     v.Name,
		Symbol:   v.Symbol,
		Decimals: v.Decimals,
	}
}

type ShopInfo struct {
	Domain      string    `json:"domain"`
	InstalledAt time.Time `json:"installedAt"`
}

type ShopResponse struct {
	Shop ShopInfo `json:"shop"`
}

func FromShop(s shared.ShopSnapshot) ShopResponse {
	return ShopResponse{Shop: ShopInfo{Domain: s.Domain, InstalledAt: s.InstalledAt}}
}
