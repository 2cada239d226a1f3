package session

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"

	"tokengate/internal/pkg/errs"
)

const (
	tokenBytes = 32
	nonceBytes = 16 // 128 bits
)

var (
	ErrInvalidToken  = errs.NewMarked("invalid session token", errs.ErrValidation)
	ErrInvalidStatus = errs.NewMarked("invalid session status", errs.ErrValidation)
)

var tokenRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusFailed   Status = "failed"
	StatusExpired  Status = "expired"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusVerified, StatusFailed, StatusExpired:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Token is the opaque secret the storefront carries between calls.
type Token string

func NewToken() (Token, error) {
	s, err := randomHex(tokenBytes)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate session token")
	}
	return Token(s), nil
}

func ParseToken(s string) (Token, error) {
	if !tokenRegex.MatchString(s) {
		return "", ErrInvalidToken
	}
	return Token(s), nil
}

func (t Token) String() string {
	return string(t)
}

// Nonce is embedded in the challenge and stored next to the session.
type Nonce string

func NewNonce() (Nonce, error) {
	s, err := randomHex(nonceBytes)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate nonce")
	}
	return Nonce(s), nil
}

func (n Nonce) String() string {
	return string(n)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
