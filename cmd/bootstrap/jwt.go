package bootstrap

import (
	"tokengate/internal/pkg/config"
	"tokengate/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService validates embedded-admin session tokens: signed with the app
// secret and addressed to the app's API key.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Shopify.APISecret, cfg.Shopify.APIKey)
}
