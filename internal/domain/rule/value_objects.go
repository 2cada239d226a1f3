package rule

import (
	"time"

	"tokengate/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind          = errs.NewMarked("discount type must be percentage or fixed", errs.ErrValidation)
	ErrInvalidDiscountValue = errs.NewMarked("discount value must be positive", errs.ErrValidation)
	ErrPercentageTooLarge   = errs.NewMarked("percentage must be between 0 and 100", errs.ErrValidation)
	ErrInvalidCap           = errs.NewMarked("max discount amount must be positive", errs.ErrValidation)
	ErrInvalidMinimum       = errs.NewMarked("minimum token amount must be positive", errs.ErrValidation)
	ErrInvalidLimit         = errs.NewMarked("usage limits must be at least 1", errs.ErrValidation)
	ErrInvalidWindow        = errs.NewMarked("endsAt must be after startsAt", errs.ErrValidation)
)

var hundred = decimal.NewFromInt(100)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPercentage, KindFixed:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Discount is what a redemption grants. For percentages Value is in [0,100];
// Cap bounds the realized amount of either kind.
type Discount struct {
	kind  Kind
	value decimal.Decimal
	cap   *decimal.Decimal
}

func NewDiscount(kind Kind, value decimal.Decimal, maxAmount *decimal.Decimal) (Discount, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Discount{}, err
	}
	if !value.IsPositive() {
		return Discount{}, ErrInvalidDiscountValue
	}
	if kind == KindPercentage && value.GreaterThan(hundred) {
		return Discount{}, ErrPercentageTooLarge
	}
	if maxAmount != nil && !maxAmount.IsPositive() {
		return Discount{}, ErrInvalidCap
	}
	return Discount{kind: kind, value: value, cap: maxAmount}, nil
}

// AmountOff is the discount realized on a cart. Without a subtotal, a fixed
// discount yields its (capped) value and a percentage yields its cap or zero.
func (d Discount) AmountOff(subtotal *decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch {
	case subtotal == nil && d.kind == KindFixed:
		amount = d.value
	case subtotal == nil:
		if d.cap == nil {
			return decimal.Zero
		}
		return *d.cap
	case d.kind == KindPercentage:
		amount = subtotal.Mul(d.value).Div(hundred).Round(2)
	default:
		amount = decimal.Min(d.value, *subtotal)
	}
	if d.cap != nil && amount.GreaterThan(*d.cap) {
		amount = *d.cap
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func (d Discount) Kind() Kind             { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) Cap() *decimal.Decimal  { return d.cap }

// Window is an optional [startsAt, endsAt] validity range; both ends inclusive.
type Window struct {
	startsAt *time.Time
	endsAt   *time.Time
}

func NewWindow(startsAt, endsAt *time.Time) (Window, error) {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return Window{}, ErrInvalidWindow
	}
	return Window{startsAt: startsAt, endsAt: endsAt}, nil
}

func (w Window) Check(now time.Time) error {
	if w.startsAt != nil && now.Before(*w.startsAt) {
		return ErrNotYetActive
	}
	if w.endsAt != nil && now.After(*w.endsAt) {
		return ErrWindowClosed
	}
	return nil
}

func (w Window) StartsAt() *time.Time { return w.startsAt }
func (w Window) EndsAt() *time.Time   { return w.endsAt }

type Limits struct {
	usageLimit       *int32
	perCustomerLimit *int32
}

func NewLimits(usageLimit, perCustomerLimit *int32) (Limits, error) {
	if usageLimit != nil && *usageLimit < 1 {
		return Limits{}, ErrInvalidLimit
	}
	if perCustomerLimit != nil && *perCustomerLimit < 1 {
		return Limits{}, ErrInvalidLimit
	}
	return Limits{usageLimit: usageLimit, perCustomerLimit: perCustomerLimit}, nil
}

func (l Limits) Check(usageCount int32, customerUses int64) error {
	if l.usageLimit != nil && usageCount >= *l.usageLimit {
		return ErrUsageLimitReached
	}
	if l.perCustomerLimit != nil && customerUses >= int64(*l.perCustomerLimit) {
		return ErrCustomerLimitReached
	}
	return nil
}

func (l Limits) UsageLimit() *int32       { return l.usageLimit }
func (l Limits) PerCustomerLimit() *int32 { return l.perCustomerLimit }

func validateMinimum(m decimal.Decimal) error {
	if !m.IsPositive() {
		return ErrInvalidMinimum
	}
	return nil
}
