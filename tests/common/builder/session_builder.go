//go:build unit || e2e

package builder

import (
	"crypto/ecdsa"
	"time"

	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	reqdto "tokengate/internal/handler/dto/request"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/clock"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultShop = "holders.myshopify.com"

type SessionBuilder struct {
	Token   session.Token
	Nonce   session.Nonce
	Shop    string
	Key     *ecdsa.PrivateKey
	ChainID int64
	Status  session.Status
	Now     time.Time
	TTL     time.Duration
}

// NewSessionBuilder generates a fresh wallet key per builder so tests can
// produce real signatures with Sign.
func NewSessionBuilder() *SessionBuilder {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	token, err := session.NewToken()
	if err != nil {
		panic(err)
	}
	nonce, err := session.NewNonce()
	if err != nil {
		panic(err)
	}
	return &SessionBuilder{
		Token:   token,
		Nonce:   nonce,
		Shop:    DefaultShop,
		Key:     key,
		ChainID: 1,
		Status:  session.StatusPending,
		Now:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		TTL:     session.DefaultTTL,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) Wallet() wallet.Address {
	return wallet.MustParseAddress(crypto.PubkeyToAddress(b.Key.PublicKey).Hex())
}

// Sign produces a personal_sign signature over message with the builder's key.
func (b *SessionBuilder) Sign(message string) string {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), b.Key)
	if err != nil {
		panic(err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

// Build methods
func (b *SessionBuilder) BuildDomain() (*session.Session, error) {
	return session.New(clock.NewMockClock(b.Now), b.Shop, b.Wallet(), b.ChainID, b.TTL)
}

// BuildReconstructed returns the session stored under b.Token, in b.Status.
func (b *SessionBuilder) BuildReconstructed() *session.Session {
	return session.Reconstruct(b.Token, b.Shop, b.Wallet(), b.ChainID, b.Status, b.Nonce, b.Now, b.Now.Add(b.TTL))
}

// SignChallenge signs the challenge of the reconstructed session.
func (b *SessionBuilder) SignChallenge() string {
	return b.Sign(b.BuildReconstructed().Challenge())
}

func (b *SessionBuilder) BuildInfra() sqlc.VerificationSessions {
	s := b.BuildReconstructed()
	return sqlc.VerificationSessions{
		Token:         s.Token().String(),
		ShopDomain:    s.Shop(),
		WalletAddress: s.Wallet().String(),
		ChainID:       s.ChainID(),
		Nonce:         s.Nonce().String(),
		Status:        s.Status().String(),
		CreatedAt:     pgtype.Timestamptz{Time: s.CreatedAt(), Valid: true},
		ExpiresAt:     pgtype.Timestamptz{Time: s.ExpiresAt(), Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: s.CreatedAt(), Valid: true},
	}
}

func (b *SessionBuilder) BuildInitRequestDTO() reqdto.InitVerificationRequest {
	return reqdto.InitVerificationRequest{
		Shop:          b.Shop,
		WalletAddress: b.Wallet().String(),
		ChainID:       b.ChainID,
	}
}
