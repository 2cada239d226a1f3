package api

import (
	"net/http"

	reqdto "tokengate/internal/handler/dto/request"
	resdto "tokengate/internal/handler/dto/response"
	"tokengate/internal/handler/httperr"
	"tokengate/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	cmds commands.DiscountCommands
}

func NewDiscountHandler(cmds commands.DiscountCommands) *DiscountHandler {
	return &DiscountHandler{cmds: cmds}
}

// @Summary Redeem a discount
// @Description Mint a single-use code for a verified wallet, counting it against the rule's limits
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyDiscountRequest true "Apply discount request"
// @Success 200 {object} resdto.ApplyDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/apply-discount [post]
func (h *DiscountHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyDiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	result, err := h.cmds.Apply(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplyDiscount(result))
}
