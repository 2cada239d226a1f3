package shared

import (
	"context"

	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
)

// AuthorizedSession loads the session behind rawToken and checks it proves
// ownership of addr for shop. Every failure reads as session.ErrUnverified
// except store faults.
func AuthorizedSession(ctx context.Context, reads CommandReads, rawToken, shop string, addr wallet.Address) (*session.Session, error) {
	tok, err := session.ParseToken(rawToken)
	if err != nil {
		return nil, session.ErrUnverified
	}
	sess, err := reads.SessionByToken(ctx, tok)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, session.ErrUnverified
		}
		return nil, err
	}
	if !sess.Authorizes(shop, addr) {
		return nil, session.ErrUnverified
	}
	return sess, nil
}

// ActiveShop resolves an installed, active shop by domain.
func ActiveShop(ctx context.Context, reads CommandReads, domain string) (*ShopSnapshot, error) {
	shop, err := reads.ShopByDomain(ctx, domain)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	if !shop.IsActive {
		return nil, ErrShopNotFound
	}
	return shop, nil
}
