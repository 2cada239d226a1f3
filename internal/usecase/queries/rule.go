package queries

import (
	"context"

	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"

	"github.com/google/uuid"
)

type RuleReadStore interface {
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*RuleView, error)
	StatsByShop(ctx context.Context, shopID uuid.UUID) (*ShopStats, error)
}

type RuleQueries interface {
	List(ctx context.Context, shopID uuid.UUID) ([]*RuleView, error)
	Stats(ctx context.Context, shopID uuid.UUID) (*ShopStats, error)
	TokenInfo(ctx context.Context, chainID int64, address string) (*TokenInfoView, error)
}

type ruleQueriesImpl struct {
	store  RuleReadStore
	oracle token.Oracle
}

func NewRuleQueries(store RuleReadStore, oracle token.Oracle) RuleQueries {
	return &ruleQueriesImpl{store: store, oracle: oracle}
}

// List returns the shop's rules, newest first.
func (q *ruleQueriesImpl) List(ctx context.Context, shopID uuid.UUID) ([]*RuleView, error) {
	views, err := q.store.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*RuleView{}
	}
	return views, nil
}

func (q *ruleQueriesImpl) Stats(ctx context.Context, shopID uuid.UUID) (*ShopStats, error) {
	return q.store.StatsByShop(ctx, shopID)
}

func (q *ruleQueriesImpl) TokenInfo(ctx context.Context, chainID int64, address string) (*TokenInfoView, error) {
	contract, err := wallet.ParseAddress(address)
	if err != nil {
		return nil, err
	}
	info, err := q.oracle.GetTokenInfo(ctx, chainID, contract)
	if err != nil {
		return nil, err
	}
	return &TokenInfoView{
		ChainID:  chainID,
		Address:  contract.String(),
		Name:     info.Name,
		Symbol:   info.Symbol,
		Decimals: info.Decimals,
	}, nil
}
