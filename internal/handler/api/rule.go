package api

import (
	"net/http"
	"strconv"

	reqdto "tokengate/internal/handler/dto/request"
	resdto "tokengate/internal/handler/dto/response"
	"tokengate/internal/handler/httperr"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleHandler struct {
	cmds commands.RuleCommands
	q    queries.RuleQueries
}

func NewRuleHandler(cmds commands.RuleCommands, q queries.RuleQueries) *RuleHandler {
	return &RuleHandler{cmds: cmds, q: q}
}

// @Summary List discount rules
// @Description Rules of the authenticated shop, newest first
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DiscountRuleResponse
// @Failure 401 {object} httperr.Response
// @Router /api/discounts [get]
func (h *RuleHandler) List(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), shop.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}

// @Summary Create discount rule
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRuleRequest true "Create rule request"
// @Success 201 {object} resdto.DiscountRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/discounts [post]
func (h *RuleHandler) Create(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	var req reqdto.CreateDiscountRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), shop.ID, req.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/discounts/"+r.ID().String())
	c.JSON(http.StatusCreated, resdto.FromRule(r))
}

// @Summary Update discount rule
// @Description Partial update; absent fields are kept, null clears optional fields
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpdateDiscountRuleRequest true "Fields to change"
// @Success 200 {object} resdto.DiscountRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/discounts/{id} [put]
func (h *RuleHandler) Update(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateDiscountRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Update(c.Request.Context(), shop.ID, id, req.ToPatch())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRule(r))
}

// @Summary Delete discount rule
// @Description Deletes the rule and its usage records
// @Tags merchant
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/discounts/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), shop.ID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Shop statistics
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ShopStatsResponse
// @Failure 401 {object} httperr.Response
// @Router /api/discounts/stats [get]
func (h *RuleHandler) Stats(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), shop.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopStats(stats))
}

// @Summary Current shop
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ShopResponse
// @Failure 401 {object} httperr.Response
// @Router /api/shop [get]
func (h *RuleHandler) Shop(c *gin.Context) {
	shop, ok := requireShop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromShop(shop))
}

// @Summary Token contract metadata
// @Description Name, symbol and decimals of an ERC-20 contract, for rule authoring
// @Tags merchant
// @Produce json
// @Security BearerAuth
// @Param chainId path int true "Chain ID"
// @Param address path string true "Contract address"
// @Success 200 {object} resdto.TokenInfoResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/tokens/{chainId}/{address} [get]
func (h *RuleHandler) TokenInfo(c *gin.Context) {
	chainID, err := strconv.ParseInt(c.Param("chainId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid chain id", nil)
		return
	}
	info, err := h.q.TokenInfo(c.Request.Context(), chainID, c.Param("address"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenInfo(info))
}
