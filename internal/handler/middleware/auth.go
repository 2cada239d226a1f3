package middleware

import (
	"log/slog"
	"strings"

	"tokengate/internal/handler/httperr"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/jwt"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxShopKey = "shop"

var errTokenRequired = errs.NewMarked("session token required", errs.ErrUnauthorized)

// MerchantAuth authenticates embedded-admin requests by their platform
// session token and resolves the shop they act for.
type MerchantAuth struct {
	tokens *jwt.Service
	shops  commands.ShopCommands
}

func NewMerchantAuth(tokens *jwt.Service, shops commands.ShopCommands) *MerchantAuth {
	return &MerchantAuth{tokens: tokens, shops: shops}
}

func (m *MerchantAuth) RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, errTokenRequired)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("session token rejected", slog.String("error", err.Error()))
			httperr.Abort(c, err)
			return
		}
		domain, err := claims.ShopDomain()
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		shop, err := m.shops.Register(c.Request.Context(), domain)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		SetShop(c, *shop)
		c.Next()
	}
}

func SetShop(c *gin.Context, shop shared.ShopSnapshot) {
	c.Set(ctxShopKey, shop)
}

// GetShop returns the shop resolved by RequireShop.
func GetShop(c *gin.Context) (shared.ShopSnapshot, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return shared.ShopSnapshot{}, false
	}
	shop, ok := v.(shared.ShopSnapshot)
	return shop, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
