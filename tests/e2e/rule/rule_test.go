//go:build e2e

package rule_test

import (
	"fmt"
	"net/http"
	"testing"

	resdto "tokengate/internal/handler/dto/response"
	"tokengate/tests/common/builder"
	"tokengate/tests/common/dbtest"
	"tokengate/tests/common/httptest"
	"tokengate/tests/common/testutil"
	"tokengate/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	discountsURL = "/api/discounts"
	discountURL  = "/api/discounts/%s"
	statsURL     = "/api/discounts/stats"
	tokenURL     = "/api/tokens/%d/%s"
	shopURL      = "/api/shop"

	otherShop = "someone-else.myshopify.com"
)

type RuleSuite struct {
	e2e.SharedSuite
}

func (s *RuleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRuleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RuleSuite))
}

func (s *RuleSuite) createRule(t *testing.T, token string, b *builder.RuleBuilder) resdto.DiscountRuleResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created resdto.DiscountRuleResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &created)
	return created
}

// =============================================================================
// TestMerchantAuth - session token handling on merchant routes
// =============================================================================

func (s *RuleSuite) TestMerchantAuth() {
	s.Run("Error case: missing token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "session token required")
	})

	s.Run("Error case: malformed token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "invalid session token")
	})

	s.Run("Normal case: first request installs the shop", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, s.MerchantToken(builder.DefaultShop))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.JSONEq(t, `[]`, w.Body.String())
		require.True(t, dbtest.ShopIsActive(t, s.DB, builder.DefaultShop))
	})

	s.Run("Normal case: shop info reports the install", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, shopURL, nil, s.MerchantToken(builder.DefaultShop))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got resdto.ShopResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, builder.DefaultShop, got.Shop.Domain)
		require.False(t, got.Shop.InstalledAt.IsZero())
	})
}

// =============================================================================
// TestRuleLifecycle - create, list, update and delete
// =============================================================================

func (s *RuleSuite) TestRuleLifecycle() {
	s.Run("Normal case: created rule is listed with its defaults", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)

		b := builder.NewRuleBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, b.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.DiscountRuleResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &created)
		httptest.AssertHeaders(t, w, map[string]string{"Location": "/api/discounts/" + created.ID.String()})

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var listed []resdto.DiscountRuleResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &listed)
		require.Len(t, listed, 1)

		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.DiscountRuleResponse{}, "CreatedAt", "UpdatedAt"),
			cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		}
		if diff := cmp.Diff(created, listed[0], opts); diff != "" {
			t.Errorf("listed rule mismatch (-created +listed):\n%s", diff)
		}
		require.True(t, listed[0].IsActive)
		require.Equal(t, int32(0), listed[0].UsageCount)
		require.Equal(t, builder.DefaultTokenContract, listed[0].TokenContractAddress)
	})

	s.Run("Error case: percentage above 100 is rejected", func() {
		t := s.T()
		b := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.Value = decimal.NewFromInt(150)
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, b.BuildCreateRequestDTO(), s.MerchantToken(builder.DefaultShop))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "percentage must be between 0 and 100")
	})

	s.Run("Error case: unsupported chain is rejected", func() {
		t := s.T()
		b := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.ChainID = 56
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, discountsURL, b.BuildCreateRequestDTO(), s.MerchantToken(builder.DefaultShop))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "unsupported chain")
	})

	s.Run("Normal case: partial update keeps untouched fields", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)
		created := s.createRule(t, token, builder.NewRuleBuilder())

		body := map[string]any{"name": "Renamed", "isActive": false}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(discountURL, created.ID), body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.DiscountRuleResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "Renamed", updated.Name)
		require.False(t, updated.IsActive)
		require.Equal(t, created.Description, updated.Description)
		require.True(t, created.DiscountValue.Equal(updated.DiscountValue))
	})

	s.Run("Normal case: null clears an optional limit", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)
		limit := int32(5)
		created := s.createRule(t, token, builder.NewRuleBuilder().WithLimits(&limit, nil))
		require.NotNil(t, created.UsageLimit)

		body := testutil.DtoMap(t, map[string]any{}, testutil.Null("usageLimit"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(discountURL, created.ID), body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.DiscountRuleResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Nil(t, updated.UsageLimit)
	})

	s.Run("Normal case: uninstalled shop is reactivated on its next request", func() {
		t := s.T()
		dbtest.CreateTestShop(t, s.DB, otherShop)
		dbtest.DeactivateShop(t, s.DB, otherShop)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, s.MerchantToken(otherShop))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.True(t, dbtest.ShopIsActive(t, s.DB, otherShop))
	})

	s.Run("Error case: null on a required field is rejected", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)
		created := s.createRule(t, token, builder.NewRuleBuilder())

		body := testutil.DtoMap(t, map[string]any{}, testutil.Null("name"))
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(discountURL, created.ID), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "field cannot be null")
	})

	s.Run("Normal case: delete removes the rule", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)
		created := s.createRule(t, token, builder.NewRuleBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(discountURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(discountURL, created.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "discount rule not found")
	})

	s.Run("Error case: malformed id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(discountURL, "nope"), nil, s.MerchantToken(builder.DefaultShop))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid id")
	})
}

// =============================================================================
// TestShopIsolation - a merchant only sees its own rules
// =============================================================================

func (s *RuleSuite) TestShopIsolation() {
	s.Run("Error case: another shop cannot update or delete", func() {
		t := s.T()
		created := s.createRule(t, s.MerchantToken(builder.DefaultShop), builder.NewRuleBuilder())
		foreign := s.MerchantToken(otherShop)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(discountURL, created.ID), map[string]any{"name": "Hijacked"}, foreign)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "discount rule not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(discountURL, created.ID), nil, foreign)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "discount rule not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, discountsURL, nil, foreign)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.JSONEq(t, `[]`, w.Body.String())
	})
}

// =============================================================================
// TestStatsAndTokenInfo
// =============================================================================

func (s *RuleSuite) TestStatsAndTokenInfo() {
	s.Run("Normal case: stats count active and inactive rules", func() {
		t := s.T()
		token := s.MerchantToken(builder.DefaultShop)
		s.createRule(t, token, builder.NewRuleBuilder())
		second := s.createRule(t, token, builder.NewRuleBuilder())

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(discountURL, second.ID), map[string]any{"isActive": false}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats resdto.ShopStatsResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &stats)
		require.Equal(t, int64(2), stats.TotalRules)
		require.Equal(t, int64(1), stats.ActiveRules)
		require.Equal(t, int64(0), stats.TotalDiscountsUsed)
		require.True(t, stats.TotalDiscountAmount.IsZero())
	})

	s.Run("Normal case: token metadata comes from the chain", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(tokenURL, 1, builder.DefaultTokenContract), nil, s.MerchantToken(builder.DefaultShop))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var info resdto.TokenInfoResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &info)
		require.Equal(t, "TST", info.Symbol)
		require.Equal(t, uint8(18), info.Decimals)
	})

	s.Run("Error case: unknown chain", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(tokenURL, 999, builder.DefaultTokenContract), nil, s.MerchantToken(builder.DefaultShop))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "unsupported chain")
	})
}
