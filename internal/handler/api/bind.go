package api

import (
	"net/http"

	"tokengate/internal/handler/httperr"
	"tokengate/internal/handler/middleware"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "Missing or invalid parameters"

var errNoShop = errs.NewMarked("merchant session required", errs.ErrUnauthorized)

// bindJSON aborts with 400 when the body is malformed, has unknown members
// or fails its binding tags.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return false
	}
	return true
}

func requireShop(c *gin.Context) (shared.ShopSnapshot, bool) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.Abort(c, errNoShop)
	}
	return shop, ok
}
