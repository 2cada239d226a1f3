package components

import (
	"tokengate/internal/handler"
	"tokengate/internal/handler/api"
	"tokengate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVerificationHandler,
		api.NewDiscountHandler,
		api.NewRuleHandler,
		middleware.NewMerchantAuth,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
