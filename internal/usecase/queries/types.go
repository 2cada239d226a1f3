package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleView represents a discount rule as the merchant sees it
type RuleView struct {
	ID                uuid.UUID        `json:"id"`
	ShopID            uuid.UUID        `json:"shopId"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	MinTokenAmount    decimal.Decimal  `json:"minTokenAmount"`
	TokenContract     string           `json:"tokenContractAddress"`
	ChainID           int64            `json:"chainId"`
	DiscountType      string           `json:"discountType"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
	UsageLimit        *int32           `json:"usageLimit,omitempty"`
	PerCustomerLimit  *int32           `json:"perCustomerLimit,omitempty"`
	UsageCount        int32            `json:"usageCount"`
	StartsAt          *time.Time       `json:"startsAt,omitempty"`
	EndsAt            *time.Time       `json:"endsAt,omitempty"`
	IsActive          bool             `json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ShopStats aggregates a shop's rules, customers and redemptions
type ShopStats struct {
	TotalRules             int64           `json:"totalRules"`
	ActiveRules            int64           `json:"activeRules"`
	TotalVerifiedCustomers int64           `json:"totalVerifiedCustomers"`
	TotalDiscountsUsed     int64           `json:"totalDiscountsUsed"`
	TotalDiscountAmount    decimal.Decimal `json:"totalDiscountAmount"`
}

// TokenInfoView describes an ERC-20 contract for rule authoring
type TokenInfoView struct {
	ChainID  int64  `json:"chainId"`
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}
