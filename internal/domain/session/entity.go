package session

import (
	"strings"
	"time"

	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/errs"
)

const DefaultTTL = 15 * time.Minute

var (
	ErrShopRequired     = errs.NewMarked("shop is required", errs.ErrValidation)
	ErrInvalidChainID   = errs.NewMarked("chain id must be positive", errs.ErrValidation)
	ErrAlreadyProcessed = errs.NewMarked("session already processed", errs.ErrConflict)
	ErrExpired          = errs.NewMarked("session expired", errs.ErrConflict)
	ErrNotFound         = errs.NewMarked("session not found", errs.ErrNotFound)
	ErrUnverified       = errs.NewMarked("invalid or unverified session", errs.ErrUnauthorized)
	ErrInvalidSignature = errs.NewMarked("invalid signature", errs.ErrConflict)
)

// Session is one challenge-response attempt binding a wallet claim to a shop.
// Its status leaves Pending exactly once.
type Session struct {
	token     Token
	shop      string
	wallet    wallet.Address
	chainID   int64
	status    Status
	nonce     Nonce
	createdAt time.Time
	expiresAt time.Time
}

func New(clk clock.Clock, shop string, addr wallet.Address, chainID int64, ttl time.Duration) (*Session, error) {
	shop = NormalizeShop(shop)
	if shop == "" {
		return nil, ErrShopRequired
	}
	if addr.IsZero() {
		return nil, wallet.ErrInvalidAddress
	}
	if chainID <= 0 {
		return nil, ErrInvalidChainID
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	nonce, err := NewNonce()
	if err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Session{
		token:     token,
		shop:      shop,
		wallet:    addr,
		chainID:   chainID,
		status:    StatusPending,
		nonce:     nonce,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func Reconstruct(token Token, shop string, addr wallet.Address, chainID int64, status Status, nonce Nonce, createdAt, expiresAt time.Time) *Session {
	return &Session{
		token:     token,
		shop:      shop,
		wallet:    addr,
		chainID:   chainID,
		status:    status,
		nonce:     nonce,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

// Challenge regenerates the exact text the wallet was asked to sign.
func (s *Session) Challenge() string {
	return wallet.Challenge(s.shop, s.nonce.String())
}

// Resolve settles a pending session. Expiry wins over the signature: an
// expired session moves to StatusExpired and ErrExpired is returned. The
// caller persists the new status in every case where err is nil or ErrExpired.
func (s *Session) Resolve(now time.Time, verify func(message string) bool) (Status, error) {
	if s.status != StatusPending {
		return s.status, ErrAlreadyProcessed
	}
	if now.After(s.expiresAt) {
		s.status = StatusExpired
		return s.status, ErrExpired
	}
	if verify(s.Challenge()) {
		s.status = StatusVerified
	} else {
		s.status = StatusFailed
	}
	return s.status, nil
}

// Authorizes reports whether this session proves ownership of addr for shop.
func (s *Session) Authorizes(shop string, addr wallet.Address) bool {
	return s.status == StatusVerified && s.shop == NormalizeShop(shop) && s.wallet == addr
}

func (s *Session) IsExpiredAt(t time.Time) bool {
	return t.After(s.expiresAt)
}

func (s *Session) Token() Token           { return s.token }
func (s *Session) Shop() string           { return s.shop }
func (s *Session) Wallet() wallet.Address { return s.wallet }
func (s *Session) ChainID() int64         { return s.chainID }
func (s *Session) Status() Status         { return s.status }
func (s *Session) Nonce() Nonce           { return s.nonce }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
func (s *Session) ExpiresAt() time.Time   { return s.expiresAt }

// NormalizeShop lower-cases a shop domain and strips scheme and trailing slash.
func NormalizeShop(shop string) string {
	shop = strings.TrimSpace(strings.ToLower(shop))
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimSuffix(shop, "/")
}
