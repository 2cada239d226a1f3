//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/usecase/commands"
	"tokengate/tests/common/builder"
	"tokengate/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerification(store *memstore.Store, now time.Time) (commands.VerificationCommands, *clock.MockClock) {
	clk := clock.NewMockClock(now)
	return commands.NewVerificationUseCase(store, wallet.NewEthereumVerifier(), clk, session.DefaultTTL), clk
}

func TestVerification_Init(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSessionBuilder()

	t.Run("creates a pending session with a challenge", func(t *testing.T) {
		store := memstore.New()
		uc, _ := newVerification(store, b.Now)

		res, err := uc.Init(ctx, commands.InitVerificationRequest{
			Shop:          "https://Holders.myshopify.com/",
			WalletAddress: "0x" + strings.ToUpper(b.Wallet().String()[2:]),
			ChainID:       137,
		})
		require.NoError(t, err)
		assert.Equal(t, b.Now.Add(session.DefaultTTL), res.ExpiresAt)
		assert.Contains(t, res.Message, "holders.myshopify.com")

		stored, ok := store.Session(res.SessionToken)
		require.True(t, ok)
		assert.Equal(t, session.StatusPending, stored.Status())
		assert.Equal(t, int64(137), stored.ChainID())
		assert.Equal(t, stored.Challenge(), res.Message)
		assert.Equal(t, b.Wallet(), stored.Wallet(), "address is stored lower-cased")
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		store := memstore.New()
		uc, _ := newVerification(store, b.Now)
		req := commands.InitVerificationRequest{Shop: builder.DefaultShop, WalletAddress: b.Wallet().String(), ChainID: 1}

		first, err := uc.Init(ctx, req)
		require.NoError(t, err)
		second, err := uc.Init(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, first.SessionToken, second.SessionToken)
		assert.NotEqual(t, first.Message, second.Message)
	})

	testCases := []struct {
		name    string
		req     commands.InitVerificationRequest
		wantErr error
	}{
		{
			name:    "error: invalid wallet",
			req:     commands.InitVerificationRequest{Shop: builder.DefaultShop, WalletAddress: "0x1234", ChainID: 1},
			wantErr: wallet.ErrInvalidAddress,
		},
		{
			name:    "error: missing shop",
			req:     commands.InitVerificationRequest{Shop: "  ", WalletAddress: b.Wallet().String(), ChainID: 1},
			wantErr: session.ErrShopRequired,
		},
		{
			name:    "error: chain id not positive",
			req:     commands.InitVerificationRequest{Shop: builder.DefaultShop, WalletAddress: b.Wallet().String(), ChainID: -5},
			wantErr: session.ErrInvalidChainID,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			uc, _ := newVerification(store, b.Now)

			_, err := uc.Init(ctx, tc.req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, store.Commits)
		})
	}
}

func TestVerification_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid signature verifies the session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store := memstore.New()
		store.PutSession(b.BuildReconstructed())
		uc, _ := newVerification(store, b.Now.Add(time.Minute))

		res, err := uc.Verify(ctx, b.Token.String(), b.SignChallenge())
		require.NoError(t, err)
		assert.Equal(t, b.Wallet(), res.WalletAddress)

		stored, _ := store.Session(b.Token)
		assert.Equal(t, session.StatusVerified, stored.Status())
	})

	t.Run("signature from another key fails the session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		other := builder.NewSessionBuilder()
		store := memstore.New()
		store.PutSession(b.BuildReconstructed())
		uc, _ := newVerification(store, b.Now.Add(time.Minute))

		_, err := uc.Verify(ctx, b.Token.String(), other.Sign(b.BuildReconstructed().Challenge()))
		require.ErrorIs(t, err, session.ErrInvalidSignature)

		stored, _ := store.Session(b.Token)
		assert.Equal(t, session.StatusFailed, stored.Status())
	})

	t.Run("signature over another shop's challenge fails", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store := memstore.New()
		store.PutSession(b.BuildReconstructed())
		uc, _ := newVerification(store, b.Now.Add(time.Minute))

		forged := b.Sign(wallet.Challenge("other.myshopify.com", b.Nonce.String()))
		_, err := uc.Verify(ctx, b.Token.String(), forged)
		require.ErrorIs(t, err, session.ErrInvalidSignature)
	})

	t.Run("garbage signature fails the session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store := memstore.New()
		store.PutSession(b.BuildReconstructed())
		uc, _ := newVerification(store, b.Now.Add(time.Minute))

		_, err := uc.Verify(ctx, b.Token.String(), "0xdeadbeef")
		require.ErrorIs(t, err, session.ErrInvalidSignature)
	})

	t.Run("expired session is marked expired even with a valid signature", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store := memstore.New()
		store.PutSession(b.BuildReconstructed())
		uc, _ := newVerification(store, b.Now.Add(b.TTL+time.Second))

		_, err := uc.Verify(ctx, b.Token.String(), b.SignChallenge())
		require.ErrorIs(t, err, session.ErrExpired)

		stored, _ := store.Session(b.Token)
		assert.Equal(t, session.StatusExpired, stored.Status())
	})

	t.Run("second attempt is rejected whatever the first outcome", func(t *testing.T) {
		for _, sig := range []string{"good", "bad"} {
			b := builder.NewSessionBuilder()
			store := memstore.New()
			store.PutSession(b.BuildReconstructed())
			uc, _ := newVerification(store, b.Now.Add(time.Minute))

			signature := b.SignChallenge()
			if sig == "bad" {
				signature = "0x00"
			}
			_, _ = uc.Verify(ctx, b.Token.String(), signature)

			_, err := uc.Verify(ctx, b.Token.String(), b.SignChallenge())
			require.ErrorIs(t, err, session.ErrAlreadyProcessed, sig)
		}
	})

	t.Run("unknown or malformed token", func(t *testing.T) {
		store := memstore.New()
		uc, _ := newVerification(store, time.Now())

		_, err := uc.Verify(ctx, builder.NewSessionBuilder().Token.String(), "0x00")
		require.ErrorIs(t, err, session.ErrNotFound)

		_, err = uc.Verify(ctx, "not-a-token", "0x00")
		require.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestVerification_ExpireStale(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	stale := builder.NewSessionBuilder()
	fresh := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.Now = b.Now.Add(time.Hour) })
	done := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.Status = session.StatusVerified })
	for _, b := range []*builder.SessionBuilder{stale, fresh, done} {
		store.PutSession(b.BuildReconstructed())
	}

	uc, _ := newVerification(store, stale.Now.Add(stale.TTL+time.Minute))
	n, err := uc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	s, _ := store.Session(stale.Token)
	assert.Equal(t, session.StatusExpired, s.Status())
	s, _ = store.Session(fresh.Token)
	assert.Equal(t, session.StatusPending, s.Status())
	s, _ = store.Session(done.Token)
	assert.Equal(t, session.StatusVerified, s.Status())
}
