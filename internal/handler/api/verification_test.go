//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/handler/api"
	resdto "tokengate/internal/handler/dto/response"
	"tokengate/internal/usecase/commands"
	"tokengate/internal/usecase/queries"
	"tokengate/internal/usecase/shared"
	"tokengate/tests/common/builder"
	"tokengate/tests/common/httptest"
	"tokengate/tests/common/testutil"
	commandsmock "tokengate/tests/mock/commands"
	queriesmock "tokengate/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VerificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVerificationCommands
	mockQueries  *queriesmock.MockEligibilityQueries
	handler      *api.VerificationHandler
}

func (s *VerificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVerificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.handler = api.NewVerificationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/verify/init", s.handler.Init)
	s.router.POST("/api/verify/signature", s.handler.Signature)
	s.router.POST("/api/verify/token-balance", s.handler.TokenBalance)
}

func (s *VerificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerTestSuite))
}

// ================================================================================
// TestInit
// ================================================================================

func (s *VerificationHandlerTestSuite) TestInit() {
	url := "/api/verify/init"
	sb := builder.NewSessionBuilder()
	reqBody := sb.BuildInitRequestDTO()
	result := &commands.InitVerificationResult{
		SessionToken: sb.Token,
		Message:      sb.BuildReconstructed().Challenge(),
		ExpiresAt:    sb.Now.Add(sb.TTL),
	}

	s.Run("success: returns session token and challenge", func() {
		s.mockCommands.EXPECT().Init(gomock.Any(), commands.InitVerificationRequest{
			Shop:          reqBody.Shop,
			WalletAddress: reqBody.WalletAddress,
			ChainID:       1,
		}).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.InitVerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(sb.Token.String(), body.SessionToken)
		s.Contains(body.Message, "Nonce: "+sb.Nonce.String())
		s.True(result.ExpiresAt.Equal(body.ExpiresAt))
	})

	s.Run("success: omitted chainId defaults to 1", func() {
		s.mockCommands.EXPECT().Init(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.InitVerificationRequest) (*commands.InitVerificationResult, error) {
				s.Equal(int64(1), req.ChainID)
				return result, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("chainId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing or unknown parameters", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing shop", mutate: testutil.Field("shop", nil)},
			{name: "missing walletAddress", mutate: testutil.Field("walletAddress", nil)},
			{name: "empty walletAddress", mutate: testutil.Field("walletAddress", "")},
			{name: "unknown member", mutate: testutil.Field("nonce", "abc")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing or invalid parameters")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid wallet", commandsError: wallet.ErrInvalidAddress, expectedStatus: http.StatusBadRequest, expectedMsg: "invalid wallet address"},
			{name: "negative chain", commandsError: session.ErrInvalidChainID, expectedStatus: http.StatusBadRequest, expectedMsg: "chain id must be positive"},
			{name: "store failure", commandsError: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection reset")
			})
		}
	})
}

// ================================================================================
// TestSignature
// ================================================================================

func (s *VerificationHandlerTestSuite) TestSignature() {
	url := "/api/verify/signature"
	sb := builder.NewSessionBuilder()
	reqBody := map[string]any{"sessionToken": sb.Token.String(), "signature": sb.SignChallenge()}

	s.Run("success: returns verified wallet", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), sb.Token.String(), reqBody["signature"]).
			Return(&commands.VerifySignatureResult{WalletAddress: sb.Wallet()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.VerifySignatureResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(sb.Wallet().String(), body.WalletAddress)
	})

	s.Run("error: 400 when signature missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("signature", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps session outcomes", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown session", err: session.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "session not found"},
			{name: "already processed", err: session.ErrAlreadyProcessed, expectedStatus: http.StatusBadRequest, expectedMsg: "session already processed"},
			{name: "expired", err: session.ErrExpired, expectedStatus: http.StatusBadRequest, expectedMsg: "session expired"},
			{name: "bad signature", err: session.ErrInvalidSignature, expectedStatus: http.StatusBadRequest, expectedMsg: "invalid signature"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTokenBalance
// ================================================================================

func (s *VerificationHandlerTestSuite) TestTokenBalance() {
	url := "/api/verify/token-balance"
	sb := builder.NewSessionBuilder()
	reqBody := map[string]any{
		"shop":          sb.Shop,
		"walletAddress": sb.Wallet().String(),
		"sessionToken":  sb.Token.String(),
	}

	s.Run("success: lists eligible discounts with human amounts", func() {
		r := builder.NewRuleBuilder().BuildReconstructed()
		s.mockQueries.EXPECT().CheckBalance(gomock.Any(), queries.CheckBalanceRequest{
			Shop:          sb.Shop,
			WalletAddress: sb.Wallet().String(),
			SessionToken:  sb.Token.String(),
		}).Return(&queries.EligibilityResult{
			WalletAddress: sb.Wallet(),
			Discounts:     []queries.EligibleDiscount{{Rule: r, TokenBalance: "150.5", RequiredTokens: "100"}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.TokenBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(sb.Wallet().String(), body.WalletAddress)
		s.Require().Len(body.EligibleDiscounts, 1)
		got := body.EligibleDiscounts[0]
		s.Equal(r.ID(), got.ID)
		s.Equal(string(rule.KindPercentage), got.DiscountType)
		s.Equal("150.5", got.TokenBalance)
		s.Equal("100", got.RequiredTokens)
		s.True(got.DiscountValue.Equal(r.Discount().Value()))
	})

	s.Run("success: no eligible discounts renders an empty list", func() {
		s.mockQueries.EXPECT().CheckBalance(gomock.Any(), gomock.Any()).
			Return(&queries.EligibilityResult{WalletAddress: sb.Wallet()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"eligibleDiscounts":[]`)
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "unverified session", err: session.ErrUnverified, expectedStatus: http.StatusUnauthorized},
			{name: "shop not installed", err: shared.ErrShopNotFound, expectedStatus: http.StatusNotFound},
			{name: "chain down", err: token.ErrRemoteUnavailable, expectedStatus: http.StatusServiceUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckBalance(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 when sessionToken missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("sessionToken", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
