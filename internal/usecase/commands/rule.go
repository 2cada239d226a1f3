package commands

import (
	"context"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/token"
	"tokengate/internal/infra"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRuleNotFound = errs.NewMarked("discount rule not found", errs.ErrNotFound)

type RuleCommands interface {
	Create(ctx context.Context, shopID uuid.UUID, p rule.Params) (*rule.Rule, error)
	Update(ctx context.Context, shopID, ruleID uuid.UUID, p rule.Patch) (*rule.Rule, error)
	Delete(ctx context.Context, shopID, ruleID uuid.UUID) error
}

type ruleUseCaseImpl struct {
	uow    shared.UnitOfWork
	oracle token.Oracle
	clock  clock.Clock
}

func NewRuleUseCase(uow shared.UnitOfWork, oracle token.Oracle, clk clock.Clock) RuleCommands {
	return &ruleUseCaseImpl{uow: uow, oracle: oracle, clock: clk}
}

func (uc *ruleUseCaseImpl) Create(ctx context.Context, shopID uuid.UUID, p rule.Params) (*rule.Rule, error) {
	r, err := rule.New(uc.clock, shopID, p)
	if err != nil {
		return nil, err
	}
	if !uc.oracle.Supports(r.ChainID()) {
		return nil, token.ErrUnsupportedChain
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rules().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Update merges the patch into the locked row and validates the result as a
// whole, so a patch touching only endsAt is checked against the stored startsAt.
func (uc *ruleUseCaseImpl) Update(ctx context.Context, shopID, ruleID uuid.UUID, p rule.Patch) (*rule.Rule, error) {
	var updated *rule.Rule
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rules().GetForUpdate(ctx, tx.DB(), shopID, ruleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRuleNotFound
			}
			return err
		}
		if err := r.Apply(uc.clock, p); err != nil {
			return err
		}
		if err := tx.Rules().Update(ctx, tx.DB(), r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *ruleUseCaseImpl) Delete(ctx context.Context, shopID, ruleID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Rules().Delete(ctx, tx.DB(), shopID, ruleID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return err
	})
}
