//go:build unit

package commands_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/ptr"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/shared"
	"tokengate/tests/common/builder"
	"tokengate/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discountFixture struct {
	store *memstore.Store
	shop  shared.ShopSnapshot
	clock *clock.MockClock
	uc    commands.DiscountCommands
}

func newDiscountFixture() *discountFixture {
	store := memstore.New()
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC))
	return &discountFixture{
		store: store,
		shop:  store.PutShop(builder.DefaultShop, true),
		clock: clk,
		uc:    commands.NewDiscountUseCase(store, clk),
	}
}

// verifiedWallet stores a verified session for a fresh wallet.
func (f *discountFixture) verifiedWallet() *builder.SessionBuilder {
	b := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.Status = session.StatusVerified })
	f.store.PutSession(b.BuildReconstructed())
	return b
}

func (f *discountFixture) putRule(mutate func(*builder.RuleBuilder)) *rule.Rule {
	rb := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) { b.ShopID = f.shop.ID })
	if mutate != nil {
		rb.With(mutate)
	}
	r := rb.BuildReconstructed()
	f.store.PutRule(r)
	return r
}

func applyReq(sb *builder.SessionBuilder, ruleID uuid.UUID) commands.ApplyDiscountRequest {
	return commands.ApplyDiscountRequest{
		Shop:          sb.Shop,
		RuleID:        ruleID,
		WalletAddress: sb.Wallet().String(),
		SessionToken:  sb.Token.String(),
	}
}

func TestDiscount_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("records the redemption and returns a code", func(t *testing.T) {
		f := newDiscountFixture()
		sb := f.verifiedWallet()
		r := f.putRule(nil)

		req := applyReq(sb, r.ID())
		req.CartSubtotal = ptr.To(decimal.NewFromInt(250))
		res, err := f.uc.Apply(ctx, req)
		require.NoError(t, err)

		assert.True(t, res.Code.Valid())
		assert.True(t, decimal.NewFromInt(25).Equal(res.Amount), res.Amount.String())
		assert.Equal(t, r.ID(), res.Rule.ID)
		assert.Equal(t, rule.KindPercentage, res.Rule.Kind)

		stored, _ := f.store.Rule(r.ID())
		assert.Equal(t, int32(1), stored.UsageCount())
		usages := f.store.Usages()
		require.Len(t, usages, 1)
		assert.Equal(t, res.Code, usages[0].Code)
		assert.Equal(t, 1, f.store.CustomerCount(f.shop.ID))
	})

	t.Run("codes are distinct per redemption", func(t *testing.T) {
		f := newDiscountFixture()
		sb := f.verifiedWallet()
		r := f.putRule(nil)

		first, err := f.uc.Apply(ctx, applyReq(sb, r.ID()))
		require.NoError(t, err)
		second, err := f.uc.Apply(ctx, applyReq(sb, r.ID()))
		require.NoError(t, err)
		assert.NotEqual(t, first.Code, second.Code)
		assert.Equal(t, 1, f.store.CustomerCount(f.shop.ID))
	})

	t.Run("fixed discount without subtotal realizes its value", func(t *testing.T) {
		f := newDiscountFixture()
		sb := f.verifiedWallet()
		r := f.putRule(func(b *builder.RuleBuilder) {
			b.Kind = rule.KindFixed
			b.Value = decimal.RequireFromString("15.50")
		})

		res, err := f.uc.Apply(ctx, applyReq(sb, r.ID()))
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("15.5").Equal(res.Amount))
	})

	testCases := []struct {
		name    string
		setup   func(f *discountFixture) commands.ApplyDiscountRequest
		wantErr error
	}{
		{
			name: "error: session not verified",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				sb := builder.NewSessionBuilder()
				f.store.PutSession(sb.BuildReconstructed())
				return applyReq(sb, f.putRule(nil).ID())
			},
			wantErr: session.ErrUnverified,
		},
		{
			name: "error: session belongs to another wallet",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				req := applyReq(f.verifiedWallet(), f.putRule(nil).ID())
				req.WalletAddress = builder.NewSessionBuilder().Wallet().String()
				return req
			},
			wantErr: session.ErrUnverified,
		},
		{
			name: "error: session for another shop",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				req := applyReq(f.verifiedWallet(), f.putRule(nil).ID())
				req.Shop = "other.myshopify.com"
				return req
			},
			wantErr: session.ErrUnverified,
		},
		{
			name: "error: unknown session token",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				sb := builder.NewSessionBuilder()
				return applyReq(sb, f.putRule(nil).ID())
			},
			wantErr: session.ErrUnverified,
		},
		{
			name: "error: shop uninstalled",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				req := applyReq(f.verifiedWallet(), f.putRule(nil).ID())
				f.store.PutShop(builder.DefaultShop, false)
				return req
			},
			wantErr: shared.ErrShopNotFound,
		},
		{
			name: "error: unknown rule",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				return applyReq(f.verifiedWallet(), uuid.New())
			},
			wantErr: rule.ErrInactive,
		},
		{
			name: "error: rule of another shop",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				r := f.putRule(func(b *builder.RuleBuilder) { b.ShopID = uuid.New() })
				return applyReq(f.verifiedWallet(), r.ID())
			},
			wantErr: rule.ErrInactive,
		},
		{
			name: "error: inactive rule",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				r := f.putRule(func(b *builder.RuleBuilder) { b.Active = false })
				return applyReq(f.verifiedWallet(), r.ID())
			},
			wantErr: rule.ErrInactive,
		},
		{
			name: "error: not started yet",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				starts := f.clock.Now().Add(time.Hour)
				r := f.putRule(func(b *builder.RuleBuilder) { b.StartsAt = &starts })
				return applyReq(f.verifiedWallet(), r.ID())
			},
			wantErr: rule.ErrNotYetActive,
		},
		{
			name: "error: window closed",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				ends := f.clock.Now().Add(-time.Second)
				r := f.putRule(func(b *builder.RuleBuilder) { b.EndsAt = &ends })
				return applyReq(f.verifiedWallet(), r.ID())
			},
			wantErr: rule.ErrWindowClosed,
		},
		{
			name: "error: usage limit already reached",
			setup: func(f *discountFixture) commands.ApplyDiscountRequest {
				r := f.putRule(func(b *builder.RuleBuilder) {
					b.UsageLimit = ptr.To(int32(2))
					b.UsageCount = 2
				})
				return applyReq(f.verifiedWallet(), r.ID())
			},
			wantErr: rule.ErrUsageLimitReached,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDiscountFixture()
			req := tc.setup(f)

			res, err := f.uc.Apply(ctx, req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, res)
			assert.Empty(t, f.store.Usages())
		})
	}

	t.Run("window bounds are inclusive", func(t *testing.T) {
		f := newDiscountFixture()
		now := f.clock.Now()
		r := f.putRule(func(b *builder.RuleBuilder) { b.StartsAt, b.EndsAt = &now, &now })

		_, err := f.uc.Apply(ctx, applyReq(f.verifiedWallet(), r.ID()))
		require.NoError(t, err)
	})

	t.Run("per-customer limit counts this wallet only", func(t *testing.T) {
		f := newDiscountFixture()
		r := f.putRule(func(b *builder.RuleBuilder) { b.PerCustomerLimit = ptr.To(int32(1)) })
		alice, bob := f.verifiedWallet(), f.verifiedWallet()

		_, err := f.uc.Apply(ctx, applyReq(alice, r.ID()))
		require.NoError(t, err)
		_, err = f.uc.Apply(ctx, applyReq(alice, r.ID()))
		require.ErrorIs(t, err, rule.ErrCustomerLimitReached)
		_, err = f.uc.Apply(ctx, applyReq(bob, r.ID()))
		require.NoError(t, err)

		stored, _ := f.store.Rule(r.ID())
		assert.Equal(t, int32(2), stored.UsageCount())
	})
}

func TestDiscount_Apply_ConcurrentUsageLimit(t *testing.T) {
	ctx := context.Background()
	f := newDiscountFixture()
	r := f.putRule(func(b *builder.RuleBuilder) { b.UsageLimit = ptr.To(int32(3)) })

	const callers = 10
	wallets := make([]*builder.SessionBuilder, callers)
	for i := range wallets {
		wallets[i] = f.verifiedWallet()
	}

	var (
		wg       sync.WaitGroup
		wins     atomic.Int32
		limitHit atomic.Int32
	)
	for _, sb := range wallets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Apply(ctx, applyReq(sb, r.ID()))
			switch {
			case err == nil:
				wins.Add(1)
			case assert.ErrorIs(t, err, rule.ErrUsageLimitReached):
				limitHit.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), wins.Load())
	assert.Equal(t, int32(callers-3), limitHit.Load())
	stored, _ := f.store.Rule(r.ID())
	assert.Equal(t, int32(3), stored.UsageCount())
	assert.Len(t, f.store.Usages(), 3)
}
