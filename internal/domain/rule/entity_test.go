//go:build unit

package rule_test

import (
	"math/big"
	"testing"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/token"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/ptr"
	"tokengate/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(rule.Snapshot{}, "ID"),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.RuleBuilder)
	errIs  error
}

func TestRule_New(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRuleBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		expected := b.With(func(b *builder.RuleBuilder) {
			b.UsageCount = 0
			b.Active = true
		}).BuildSnapshot()

		if diff := cmp.Diff(expected, actual.Snapshot(), cmpOpts...); diff != "" {
			t.Errorf("Rule mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("trims name and description", func(t *testing.T) {
		r, err := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.Name = "  VIP  "
			b.Description = " gold holders "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "VIP", r.Name())
		assert.Equal(t, "gold holders", r.Description())
	})

	t.Run("missing chain defaults to ethereum", func(t *testing.T) {
		r, err := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) { b.ChainID = 0 }).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(1), r.ChainID())
	})

	t.Run("contract address is stored lower-case", func(t *testing.T) {
		r, err := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.TokenContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, builder.DefaultTokenContract, r.TokenContract().String())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.RuleBuilder) { b.Name = "   " }, errIs: rule.ErrNameRequired},
			{name: "zero minimum", mutate: func(b *builder.RuleBuilder) { b.MinTokenAmount = decimal.Zero }, errIs: rule.ErrInvalidMinimum},
			{name: "negative minimum", mutate: func(b *builder.RuleBuilder) { b.MinTokenAmount = decimal.NewFromInt(-1) }, errIs: rule.ErrInvalidMinimum},
			{name: "bad contract", mutate: func(b *builder.RuleBuilder) { b.TokenContract = "0x123" }, errIs: token.ErrInvalidAddress},
			{name: "contract without prefix", mutate: func(b *builder.RuleBuilder) { b.TokenContract = builder.DefaultTokenContract[2:] }, errIs: token.ErrInvalidAddress},
			{name: "negative chain", mutate: func(b *builder.RuleBuilder) { b.ChainID = -1 }, errIs: token.ErrUnsupportedChain},
			{name: "unknown kind", mutate: func(b *builder.RuleBuilder) { b.Kind = "bogo" }, errIs: rule.ErrInvalidKind},
			{name: "zero value", mutate: func(b *builder.RuleBuilder) { b.Value = decimal.Zero }, errIs: rule.ErrInvalidDiscountValue},
			{name: "percentage above 100", mutate: func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(101) }, errIs: rule.ErrPercentageTooLarge},
			{name: "percentage of exactly 100", mutate: func(b *builder.RuleBuilder) { b.Value = decimal.NewFromInt(100) }},
			{
				name: "fixed amount above 100",
				mutate: func(b *builder.RuleBuilder) {
					b.Kind = rule.KindFixed
					b.Value = decimal.NewFromInt(250)
				},
			},
			{name: "zero cap", mutate: func(b *builder.RuleBuilder) { b.MaxDiscountAmount = ptr.To(decimal.Zero) }, errIs: rule.ErrInvalidCap},
			{name: "zero usage limit", mutate: func(b *builder.RuleBuilder) { b.UsageLimit = ptr.To[int32](0) }, errIs: rule.ErrInvalidLimit},
			{name: "zero customer limit", mutate: func(b *builder.RuleBuilder) { b.PerCustomerLimit = ptr.To[int32](0) }, errIs: rule.ErrInvalidLimit},
			{
				name: "window ends before it starts",
				mutate: func(b *builder.RuleBuilder) {
					b.WithWindow(ptr.To(b.Now), ptr.To(b.Now.Add(-time.Hour)))
				},
				errIs: rule.ErrInvalidWindow,
			},
			{
				name: "empty window",
				mutate: func(b *builder.RuleBuilder) {
					b.WithWindow(ptr.To(b.Now), ptr.To(b.Now))
				},
				errIs: rule.ErrInvalidWindow,
			},
			{
				name: "open-ended window",
				mutate: func(b *builder.RuleBuilder) {
					b.WithWindow(ptr.To(b.Now), nil)
				},
			},
		})
	})

	t.Run("validation errors are categorised", func(t *testing.T) {
		_, err := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) { b.Name = "" }).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.IsCategory(err, errs.ErrValidation))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := builder.NewRuleBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRule_CheckRedeemable(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mutate       func(*builder.RuleBuilder)
		customerUses int64
		want         error
	}{
		{name: "no constraints", mutate: func(*builder.RuleBuilder) {}},
		{name: "inactive", mutate: func(b *builder.RuleBuilder) { b.Active = false }, want: rule.ErrInactive},
		{
			name:   "ended a second ago",
			mutate: func(b *builder.RuleBuilder) { b.WithWindow(nil, ptr.To(now.Add(-time.Second))) },
			want:   rule.ErrWindowClosed,
		},
		{
			name:   "ends in an hour",
			mutate: func(b *builder.RuleBuilder) { b.WithWindow(nil, ptr.To(now.Add(time.Hour))) },
		},
		{
			name:   "ends exactly now",
			mutate: func(b *builder.RuleBuilder) { b.WithWindow(nil, ptr.To(now)) },
		},
		{
			name:   "starts exactly now",
			mutate: func(b *builder.RuleBuilder) { b.WithWindow(ptr.To(now), nil) },
		},
		{
			name:   "starts tomorrow",
			mutate: func(b *builder.RuleBuilder) { b.WithWindow(ptr.To(now.Add(24*time.Hour)), nil) },
			want:   rule.ErrNotYetActive,
		},
		{
			name: "global limit exhausted",
			mutate: func(b *builder.RuleBuilder) {
				b.UsageLimit = ptr.To[int32](3)
				b.UsageCount = 3
			},
			want: rule.ErrUsageLimitReached,
		},
		{
			name: "one global use left",
			mutate: func(b *builder.RuleBuilder) {
				b.UsageLimit = ptr.To[int32](3)
				b.UsageCount = 2
			},
		},
		{
			name:         "customer limit exhausted",
			mutate:       func(b *builder.RuleBuilder) { b.PerCustomerLimit = ptr.To[int32](1) },
			customerUses: 1,
			want:         rule.ErrCustomerLimitReached,
		},
		{
			name:         "customer below limit",
			mutate:       func(b *builder.RuleBuilder) { b.PerCustomerLimit = ptr.To[int32](2) },
			customerUses: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewRuleBuilder().With(tc.mutate).BuildReconstructed()
			err := r.CheckRedeemable(now, tc.customerUses)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRule_Evaluate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
		b.MinTokenAmount = decimal.RequireFromString("1.5")
	}).BuildReconstructed()

	threshold, ok := new(big.Int).SetString("1500000000000000000", 10)
	require.True(t, ok)

	t.Run("balance exactly at the threshold qualifies", func(t *testing.T) {
		e, err := r.Evaluate(token.Balance{Raw: threshold, Decimals: 18}, now, 0)
		require.NoError(t, err)
		assert.True(t, e.Eligible())
		assert.Equal(t, "1.5", e.FormattedBalance())
		assert.Equal(t, "1.5", e.FormattedRequirement())
	})

	t.Run("one raw unit below does not", func(t *testing.T) {
		below := new(big.Int).Sub(threshold, big.NewInt(1))
		e, err := r.Evaluate(token.Balance{Raw: below, Decimals: 18}, now, 0)
		require.NoError(t, err)
		assert.False(t, e.Eligible())
		assert.ErrorIs(t, e.Reason, rule.ErrInsufficientBalance)
		assert.Equal(t, "1.499999999999999999", e.FormattedBalance())
	})

	t.Run("six-decimal token scales the same minimum", func(t *testing.T) {
		e, err := r.Evaluate(token.Balance{Raw: big.NewInt(1_500_000), Decimals: 6}, now, 0)
		require.NoError(t, err)
		assert.True(t, e.Eligible())
		assert.Equal(t, big.NewInt(1_500_000), e.Threshold)
	})

	t.Run("minimum finer than the token's decimals is an error", func(t *testing.T) {
		_, err := r.Evaluate(token.Balance{Raw: big.NewInt(100), Decimals: 0}, now, 0)
		assert.ErrorIs(t, err, token.ErrTooPrecise)
	})

	t.Run("enough balance but exhausted limit reports the limit", func(t *testing.T) {
		limited := builder.NewRuleBuilder().With(func(b *builder.RuleBuilder) {
			b.MinTokenAmount = decimal.NewFromInt(1)
			b.PerCustomerLimit = ptr.To[int32](1)
		}).BuildReconstructed()

		e, err := limited.Evaluate(token.Balance{Raw: threshold, Decimals: 18}, now, 1)
		require.NoError(t, err)
		assert.ErrorIs(t, e.Reason, rule.ErrCustomerLimitReached)
	})
}

func TestDiscount_AmountOff(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name     string
		kind     rule.Kind
		value    string
		cap      *decimal.Decimal
		subtotal *decimal.Decimal
		want     string
	}{
		{name: "percentage of subtotal", kind: rule.KindPercentage, value: "10", subtotal: ptr.To(d("80")), want: "8"},
		{name: "percentage rounds to cents", kind: rule.KindPercentage, value: "15", subtotal: ptr.To(d("9.99")), want: "1.5"},
		{name: "percentage capped", kind: rule.KindPercentage, value: "50", cap: ptr.To(d("20")), subtotal: ptr.To(d("100")), want: "20"},
		{name: "percentage without subtotal uses cap", kind: rule.KindPercentage, value: "50", cap: ptr.To(d("20")), want: "20"},
		{name: "percentage without subtotal or cap", kind: rule.KindPercentage, value: "50", want: "0"},
		{name: "fixed without subtotal", kind: rule.KindFixed, value: "15", want: "15"},
		{name: "fixed bounded by subtotal", kind: rule.KindFixed, value: "15", subtotal: ptr.To(d("12")), want: "12"},
		{name: "fixed capped", kind: rule.KindFixed, value: "15", cap: ptr.To(d("10")), want: "10"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			discount, err := rule.NewDiscount(tc.kind, d(tc.value), tc.cap)
			require.NoError(t, err)
			got := discount.AmountOff(tc.subtotal)
			assert.True(t, d(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := rule.ParseKind("fixed")
	require.NoError(t, err)
	assert.Equal(t, rule.KindFixed, k)

	_, err = rule.ParseKind("Percentage")
	assert.ErrorIs(t, err, rule.ErrInvalidKind)
}
