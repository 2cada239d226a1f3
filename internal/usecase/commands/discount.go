package commands

import (
	"context"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/usage"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/metrics"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ApplyDiscountRequest struct {
	Shop          string
	RuleID        uuid.UUID
	WalletAddress string
	SessionToken  string
	// CartSubtotal is optional; when set the realized amount is computed from it.
	CartSubtotal *decimal.Decimal
}

type DiscountSummary struct {
	ID                uuid.UUID
	Name              string
	Kind              rule.Kind
	Value             decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
}

type ApplyDiscountResult struct {
	Code   usage.Code
	Amount decimal.Decimal
	Rule   DiscountSummary
}

type DiscountCommands interface {
	Apply(ctx context.Context, req ApplyDiscountRequest) (*ApplyDiscountResult, error)
}

type discountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDiscountUseCase(uow shared.UnitOfWork, clk clock.Clock) DiscountCommands {
	return &discountUseCaseImpl{uow: uow, clock: clk}
}

// Apply redeems a rule for a verified wallet. Every check is repeated here
// under the rule row lock; the eligibility answer the storefront got earlier
// may be stale. The usage counter only moves through a conditional update,
// so a limit of K admits exactly K concurrent winners.
func (uc *discountUseCaseImpl) Apply(ctx context.Context, req ApplyDiscountRequest) (*ApplyDiscountResult, error) {
	result, err := uc.apply(ctx, req)
	metrics.Discount().Apply(applyOutcome(err))
	return result, err
}

func (uc *discountUseCaseImpl) apply(ctx context.Context, req ApplyDiscountRequest) (*ApplyDiscountResult, error) {
	addr, err := wallet.ParseAddress(req.WalletAddress)
	if err != nil {
		return nil, err
	}
	sess, err := shared.AuthorizedSession(ctx, uc.uow.CommandReads(), req.SessionToken, req.Shop, addr)
	if err != nil {
		return nil, err
	}
	shop, err := shared.ActiveShop(ctx, uc.uow.CommandReads(), sess.Shop())
	if err != nil {
		return nil, err
	}

	var result *ApplyDiscountResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rules().GetForUpdate(ctx, tx.DB(), shop.ID, req.RuleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return rule.ErrInactive
			}
			return err
		}

		now := uc.clock.Now()
		customerID, err := tx.Customers().Upsert(ctx, tx.DB(), shop.ID, addr, sess.ChainID(), now)
		if err != nil {
			return err
		}
		uses, err := tx.Usages().CountForCustomer(ctx, tx.DB(), r.ID(), customerID)
		if err != nil {
			return err
		}
		if err := r.CheckRedeemable(now, uses); err != nil {
			return err
		}

		taken, err := tx.Rules().IncrementUsage(ctx, tx.DB(), r.ID())
		if err != nil {
			return err
		}
		if !taken {
			return rule.ErrUsageLimitReached
		}

		rec, err := usage.NewRecord(r.ID(), customerID, r.Discount().AmountOff(req.CartSubtotal), now)
		if err != nil {
			return err
		}
		if err := tx.Usages().Create(ctx, tx.DB(), rec); err != nil {
			return err
		}

		result = &ApplyDiscountResult{
			Code:   rec.Code,
			Amount: rec.Amount,
			Rule: DiscountSummary{
				ID:                r.ID(),
				Name:              r.Name(),
				Kind:              r.Discount().Kind(),
				Value:             r.Discount().Value(),
				MaxDiscountAmount: r.Discount().Cap(),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errs.IsCategory(err, errs.ErrConflict):
		return "conflict"
	case errs.IsCategory(err, errs.ErrNotFound):
		return "not_found"
	case errs.IsCategory(err, errs.ErrUnauthorized):
		return "unauthorized"
	case errs.IsCategory(err, errs.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
