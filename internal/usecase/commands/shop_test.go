//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tokengate/internal/domain/session"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/usecase/commands"
	"tokengate/tests/common/builder"
	"tokengate/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShop_Register(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.NewRuleBuilder().Now)

	t.Run("installs an unknown shop", func(t *testing.T) {
		store := memstore.New()
		uc := commands.NewShopUseCase(store, clk)

		shop, err := uc.Register(ctx, "HOLDERS.myshopify.com")
		require.NoError(t, err)
		assert.Equal(t, builder.DefaultShop, shop.Domain)
		assert.True(t, shop.IsActive)

		stored, ok := store.Shop(builder.DefaultShop)
		require.True(t, ok)
		assert.Equal(t, shop.ID, stored.ID)
	})

	t.Run("returns an active shop unchanged", func(t *testing.T) {
		store := memstore.New()
		existing := store.PutShop(builder.DefaultShop, true)
		uc := commands.NewShopUseCase(store, clk)

		shop, err := uc.Register(ctx, builder.DefaultShop)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, shop.ID)
	})

	t.Run("reactivates an uninstalled shop keeping its id", func(t *testing.T) {
		store := memstore.New()
		existing := store.PutShop(builder.DefaultShop, false)
		uc := commands.NewShopUseCase(store, clk)

		shop, err := uc.Register(ctx, builder.DefaultShop)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, shop.ID)
		assert.True(t, shop.IsActive)

		stored, _ := store.Shop(builder.DefaultShop)
		assert.True(t, stored.IsActive)
	})

	t.Run("empty domain", func(t *testing.T) {
		uc := commands.NewShopUseCase(memstore.New(), clk)

		_, err := uc.Register(ctx, "  ")
		assert.ErrorIs(t, err, session.ErrShopRequired)
	})
}
