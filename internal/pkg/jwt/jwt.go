package jwt

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"tokengate/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errs.NewMarked("invalid session token", errs.ErrUnauthorized)
	ErrExpiredToken = errs.NewMarked("session token expired", errs.ErrUnauthorized)
)

// Claims of an embedded-app session token. Dest carries the shop origin,
// e.g. "https://example.myshopify.com".
type Claims struct {
	Dest string `json:"dest"`
	jwt.RegisteredClaims
}

// ShopDomain returns the bare host of Dest.
func (c *Claims) ShopDomain() (string, error) {
	u, err := url.Parse(c.Dest)
	if err != nil || u.Host == "" {
		return "", ErrInvalidToken
	}
	return strings.ToLower(u.Host), nil
}

type Service struct {
	secretKey []byte
	audience  string
	leeway    time.Duration
}

func NewService(secretKey, audience string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		audience:  audience,
		leeway:    5 * time.Second,
	}
}

// GenerateToken issues a token the way the platform would. Used by tests and local tooling.
func (s *Service) GenerateToken(shopDomain string, now time.Time, ttl time.Duration) (string, error) {
	origin := "https://" + shopDomain
	claims := Claims{
		Dest: origin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    origin + "/admin",
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithAudience(s.audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.leeway),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
