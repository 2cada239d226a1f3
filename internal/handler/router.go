package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tokengate/internal/handler/api"
	"tokengate/internal/handler/middleware"
	"tokengate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Verification *api.VerificationHandler
	Discount     *api.DiscountHandler
	Rule         *api.RuleHandler
}

func NewHandlers(v *api.VerificationHandler, d *api.DiscountHandler, r *api.RuleHandler) Handlers {
	return Handlers{Verification: v, Discount: d, Rule: r}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, merchantAuth *middleware.MerchantAuth) {
	gin.EnableJsonDecoderDisallowUnknownFields()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, merchantAuth, middleware.NewRateLimiter(cfg.RateLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, merchantAuth *middleware.MerchantAuth, limiter *middleware.RateLimiter) {
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		// Storefront routes are unauthenticated and limited per client IP.
		limited := []gin.HandlerFunc{limiter.Middleware()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/verify/init", Handler: h.Verification.Init, Mw: limited},
			{Method: http.MethodPost, Path: "/verify/signature", Handler: h.Verification.Signature, Mw: limited},
			{Method: http.MethodPost, Path: "/verify/token-balance", Handler: h.Verification.TokenBalance, Mw: limited},
			{Method: http.MethodPost, Path: "/apply-discount", Handler: h.Discount.Apply, Mw: limited},
		})

		merchant := apiGroup.Group("")
		merchant.Use(merchantAuth.RequireShop())
		addRoutes(merchant, []route{
			{Method: http.MethodGet, Path: "/shop", Handler: h.Rule.Shop},
			{Method: http.MethodGet, Path: "/discounts", Handler: h.Rule.List},
			{Method: http.MethodPost, Path: "/discounts", Handler: h.Rule.Create},
			{Method: http.MethodGet, Path: "/discounts/stats", Handler: h.Rule.Stats},
			{Method: http.MethodPut, Path: "/discounts/:id", Handler: h.Rule.Update},
			{Method: http.MethodDelete, Path: "/discounts/:id", Handler: h.Rule.Delete},
			{Method: http.MethodGet, Path: "/tokens/:chainId/:address", Handler: h.Rule.TokenInfo},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
