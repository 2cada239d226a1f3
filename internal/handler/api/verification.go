package api

import (
	"net/http"

	reqdto "tokengate/internal/handler/dto/request"
	resdto "tokengate/internal/handler/dto/response"
	"tokengate/internal/handler/httperr"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	cmds commands.VerificationCommands
	q    queries.EligibilityQueries
}

func NewVerificationHandler(cmds commands.VerificationCommands, q queries.EligibilityQueries) *VerificationHandler {
	return &VerificationHandler{cmds: cmds, q: q}
}

// @Summary Start wallet verification
// @Description Issue a session and the challenge message the wallet must sign
// @Tags verification
// @Accept json
// @Produce json
// @Param request body reqdto.InitVerificationRequest true "Init verification request"
// @Success 200 {object} resdto.InitVerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/verify/init [post]
func (h *VerificationHandler) Init(c *gin.Context) {
	var req reqdto.InitVerificationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Init(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitVerification(result))
}

// @Summary Submit challenge signature
// @Tags verification
// @Accept json
// @Produce json
// @Param request body reqdto.VerifySignatureRequest true "Signature"
// @Success 200 {object} resdto.VerifySignatureResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/verify/signature [post]
func (h *VerificationHandler) Signature(c *gin.Context) {
	var req reqdto.VerifySignatureRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Verify(c.Request.Context(), req.SessionToken, req.Signature)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.VerifySignatureResponse{
		Success:       true,
		WalletAddress: result.WalletAddress.String(),
	})
}

// @Summary List discounts the verified wallet qualifies for
// @Description Rules whose on-chain check fails are left out rather than failing the request
// @Tags verification
// @Accept json
// @Produce json
// @Param request body reqdto.CheckBalanceRequest true "Balance check request"
// @Success 200 {object} resdto.TokenBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/verify/token-balance [post]
func (h *VerificationHandler) TokenBalance(c *gin.Context) {
	var req reqdto.CheckBalanceRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.q.CheckBalance(c.Request.Context(), req.ToQuery())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibility(result))
}
