//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"tokengate/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", "api-key")

	token, err := svc.GenerateToken("Shop.MyShopify.com", time.Now(), time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	shop, err := claims.ShopDomain()
	require.NoError(t, err)
	assert.Equal(t, "shop.myshopify.com", shop)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	issuer := jwt.NewService("secret", "api-key")
	now := time.Now()

	expired, err := issuer.GenerateToken("s.test", now.Add(-time.Hour), time.Minute)
	require.NoError(t, err)
	otherAudience, err := jwt.NewService("secret", "someone-else").GenerateToken("s.test", now, time.Minute)
	require.NoError(t, err)
	otherSecret, err := jwt.NewService("wrong", "api-key").GenerateToken("s.test", now, time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: jwt.ErrExpiredToken},
		{name: "wrong audience", token: otherAudience, wantErr: jwt.ErrInvalidToken},
		{name: "wrong secret", token: otherSecret, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", wantErr: jwt.ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.ValidateToken(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
