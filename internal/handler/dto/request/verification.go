package request

import (
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultChainID int64 = 1

type InitVerificationRequest struct {
	Shop          string `json:"shop" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	ChainID       int64  `json:"chainId"`
}

// ToCommand defaults an omitted chainId to Ethereum mainnet.
func (r InitVerificationRequest) ToCommand() commands.InitVerificationRequest {
	chainID := r.ChainID
	if chainID == 0 {
		chainID = defaultChainID
	}
	return commands.InitVerificationRequest{
		Shop:          r.Shop,
		WalletAddress: r.WalletAddress,
		ChainID:       chainID,
	}
}

type VerifySignatureRequest struct {
	SessionToken string `json:"sessionToken" binding:"required"`
	Signature    string `json:"signature" binding:"required"`
}

type CheckBalanceRequest struct {
	Shop          string `json:"shop" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	SessionToken  string `json:"sessionToken" binding:"required"`
}

func (r CheckBalanceRequest) ToQuery() queries.CheckBalanceRequest {
	return queries.CheckBalanceRequest{
		Shop:          r.Shop,
		WalletAddress: r.WalletAddress,
		SessionToken:  r.SessionToken,
	}
}

type ApplyDiscountRequest struct {
	Shop           string           `json:"shop" binding:"required"`
	DiscountRuleID string           `json:"discountRuleId" binding:"required,uuid"`
	WalletAddress  string           `json:"walletAddress" binding:"required"`
	SessionToken   string           `json:"sessionToken" binding:"required"`
	CartSubtotal   *decimal.Decimal `json:"cartSubtotal,omitempty"`
}

func (r ApplyDiscountRequest) ToCommand() (commands.ApplyDiscountRequest, error) {
	ruleID, err := uuid.Parse(r.DiscountRuleID)
	if err != nil {
		return commands.ApplyDiscountRequest{}, err
	}
	return commands.ApplyDiscountRequest{
		Shop:          r.Shop,
		RuleID:        ruleID,
		WalletAddress: r.WalletAddress,
		SessionToken:  r.SessionToken,
		CartSubtotal:  r.CartSubtotal,
	}, nil
}
