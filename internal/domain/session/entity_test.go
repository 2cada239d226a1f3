//go:build unit

package session_test

import (
	"testing"
	"time"

	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWallet = wallet.MustParseAddress("0x000000000000000000000000000000000000dEaD")

func newPending(t *testing.T, clk clock.Clock) *session.Session {
	t.Helper()
	s, err := session.New(clk, "S.Test", testWallet, 1, 15*time.Minute)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	s := newPending(t, clk)

	assert.Equal(t, session.StatusPending, s.Status())
	assert.Equal(t, "s.test", s.Shop())
	assert.Equal(t, now.Add(15*time.Minute), s.ExpiresAt())
	assert.Len(t, s.Nonce().String(), 32, "nonce must carry 128 bits")
	_, err := session.ParseToken(s.Token().String())
	assert.NoError(t, err)
	assert.Contains(t, s.Challenge(), "for s.test.")
	assert.Contains(t, s.Challenge(), "Nonce: "+s.Nonce().String())

	other := newPending(t, clk)
	assert.NotEqual(t, s.Token(), other.Token())
	assert.NotEqual(t, s.Nonce(), other.Nonce())
}

func TestNew_Validation(t *testing.T) {
	clk := clock.NewMockClock(time.Now())

	testCases := []struct {
		name    string
		shop    string
		addr    wallet.Address
		chainID int64
		wantErr error
	}{
		{name: "missing shop", shop: " ", addr: testWallet, chainID: 1, wantErr: session.ErrShopRequired},
		{name: "missing wallet", shop: "s.test", addr: "", chainID: 1, wantErr: wallet.ErrInvalidAddress},
		{name: "zero chain", shop: "s.test", addr: testWallet, chainID: 0, wantErr: session.ErrInvalidChainID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.New(clk, tc.shop, tc.addr, tc.chainID, time.Minute)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestResolve_Transitions(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	accept := func(string) bool { return true }
	reject := func(string) bool { return false }

	testCases := []struct {
		name       string
		at         time.Duration
		verify     func(string) bool
		wantStatus session.Status
		wantErr    error
	}{
		{name: "valid signature verifies", at: time.Minute, verify: accept, wantStatus: session.StatusVerified},
		{name: "bad signature fails", at: time.Minute, verify: reject, wantStatus: session.StatusFailed},
		{name: "exactly at expiry is still valid", at: 15 * time.Minute, verify: accept, wantStatus: session.StatusVerified},
		{name: "after expiry expires even with a good signature", at: 15*time.Minute + time.Second, verify: accept, wantStatus: session.StatusExpired, wantErr: session.ErrExpired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newPending(t, clock.NewMockClock(start))

			status, err := s.Resolve(start.Add(tc.at), tc.verify)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantStatus, s.Status())
		})
	}
}

func TestResolve_IsMonotonic(t *testing.T) {
	start := time.Now()
	outcomes := map[string]func(*session.Session){
		"verified": func(s *session.Session) { _, _ = s.Resolve(start, func(string) bool { return true }) },
		"failed":   func(s *session.Session) { _, _ = s.Resolve(start, func(string) bool { return false }) },
		"expired":  func(s *session.Session) { _, _ = s.Resolve(start.Add(time.Hour), func(string) bool { return true }) },
	}

	for name, settle := range outcomes {
		t.Run(name, func(t *testing.T) {
			s := newPending(t, clock.NewMockClock(start))
			settle(s)
			terminal := s.Status()
			require.True(t, terminal.IsTerminal())

			for i := 0; i < 2; i++ {
				called := false
				status, err := s.Resolve(start, func(string) bool { called = true; return true })
				assert.ErrorIs(t, err, session.ErrAlreadyProcessed)
				assert.Equal(t, terminal, status)
				assert.False(t, called, "verifier must not run for a settled session")
			}
		})
	}
}

func TestAuthorizes(t *testing.T) {
	start := time.Now()
	s := newPending(t, clock.NewMockClock(start))
	assert.False(t, s.Authorizes("s.test", testWallet), "pending session authorizes nothing")

	_, err := s.Resolve(start, func(string) bool { return true })
	require.NoError(t, err)

	assert.True(t, s.Authorizes("https://S.test/", testWallet))
	assert.False(t, s.Authorizes("other.test", testWallet))
	assert.False(t, s.Authorizes("s.test", wallet.MustParseAddress("0x0000000000000000000000000000000000000001")))
}
