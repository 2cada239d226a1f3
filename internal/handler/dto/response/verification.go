package response

import (
	"time"

	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InitVerificationResponse struct {
	SessionToken string    `json:"sessionToken"`
	Message      string    `json:"message"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func FromInitVerification(r *commands.InitVerificationResult) InitVerificationResponse {
	return InitVerificationResponse{
		SessionToken: r.SessionToken.String(),
		Message:      r.Message,
		ExpiresAt:    r.ExpiresAt,
	}
}

type VerifySignatureResponse struct {
	Success       bool   `json:"success"`
	WalletAddress string `json:"walletAddress"`
}

type EligibleDiscountResponse struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	DiscountType      string           `json:"discountType"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	TokenBalance      string           `json:"tokenBalance"`
	RequiredTokens    string           `json:"requiredTokens"`
}

type TokenBalanceResponse struct {
	EligibleDiscounts []EligibleDiscountResponse `json:"eligibleDiscounts"`
	WalletAddress     string                     `json:"walletAddress"`
}

func FromEligibility(r *queries.EligibilityResult) TokenBalanceResponse {
	out := TokenBalanceResponse{
		EligibleDiscounts: make([]EligibleDiscountResponse, 0, len(r.Discounts)),
		WalletAddress:     r.WalletAddress.String(),
	}
	for _, d := range r.Discounts {
		discount := d.Rule.Discount()
		out.EligibleDiscounts = append(out.EligibleDiscounts, EligibleDiscountResponse{
			ID:                d.Rule.ID(),
			Name:              d.Rule.Name(),
			Description:       d.Rule.Description(),
			DiscountType:      discount.Kind().String(),
			DiscountValue:     discount.Value(),
			MaxDiscountAmount: discount.Cap(),
			TokenBalance:      d.TokenBalance,
			RequiredTokens:    d.RequiredTokens,
		})
	}
	return out
}
