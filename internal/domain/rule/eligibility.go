package rule

import (
	"math/big"
	"time"

	"tokengate/internal/domain/token"
)

// Eligibility is the outcome of evaluating one rule for one wallet.
type Eligibility struct {
	Balance   token.Balance
	Threshold *big.Int
	// Reason is nil when the rule can be redeemed.
	Reason error
}

func (e Eligibility) Eligible() bool {
	return e.Reason == nil
}

// FormattedBalance and FormattedRequirement are in human units.
func (e Eligibility) FormattedBalance() string {
	return e.Balance.Formatted()
}

func (e Eligibility) FormattedRequirement() string {
	return token.FormatUnits(e.Threshold, e.Balance.Decimals)
}

// Evaluate compares the balance against the scaled minimum in raw units and
// then applies the redeemability checks. An error is returned only when the
// minimum cannot be expressed in the token's units.
func (r *Rule) Evaluate(balance token.Balance, now time.Time, customerUses int64) (Eligibility, error) {
	threshold, err := r.Threshold(balance.Decimals)
	if err != nil {
		return Eligibility{}, err
	}

	result := Eligibility{Balance: balance, Threshold: threshold}
	if !balance.AtLeast(threshold) {
		result.Reason = ErrInsufficientBalance
		return result, nil
	}
	result.Reason = r.CheckRedeemable(now, customerUses)
	return result, nil
}
