package commands

import (
	"context"

	"tokengate/internal/domain/session"
	"tokengate/internal/infra"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/usecase/shared"
)

type ShopCommands interface {
	// Register returns the shop for an authenticated merchant, installing or
	// reactivating it when needed.
	Register(ctx context.Context, domain string) (*shared.ShopSnapshot, error)
}

type shopUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShopUseCase(uow shared.UnitOfWork, clk clock.Clock) ShopCommands {
	return &shopUseCaseImpl{uow: uow, clock: clk}
}

func (uc *shopUseCaseImpl) Register(ctx context.Context, domain string) (*shared.ShopSnapshot, error) {
	domain = session.NormalizeShop(domain)
	if domain == "" {
		return nil, session.ErrShopRequired
	}

	shop, err := uc.uow.CommandReads().ShopByDomain(ctx, domain)
	if err == nil && shop.IsActive {
		return shop, nil
	}
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var uerr error
		shop, uerr = tx.Shops().Upsert(ctx, tx.DB(), domain, uc.clock.Now())
		return uerr
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}
