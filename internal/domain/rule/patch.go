package rule

import (
	"strings"
	"time"

	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

var ErrFieldNotNullable = errs.NewMarked("field cannot be null", errs.ErrValidation)

// Patch lists every field a merchant may change after creation. The token
// contract and chain are fixed for the life of a rule.
type Patch struct {
	Name              patch.Field[string]
	Description       patch.Field[string]
	Active            patch.Field[bool]
	MinTokenAmount    patch.Field[decimal.Decimal]
	Kind              patch.Field[Kind]
	Value             patch.Field[decimal.Decimal]
	MaxDiscountAmount patch.Field[decimal.Decimal]
	UsageLimit        patch.Field[int32]
	PerCustomerLimit  patch.Field[int32]
	StartsAt          patch.Field[time.Time]
	EndsAt            patch.Field[time.Time]
}

// Apply validates the merged result as a whole and only then mutates r.
func (r *Rule) Apply(clk clock.Clock, p Patch) error {
	for _, f := range []struct {
		set, null bool
	}{
		{p.Name.Set, p.Name.Null},
		{p.Active.Set, p.Active.Null},
		{p.MinTokenAmount.Set, p.MinTokenAmount.Null},
		{p.Kind.Set, p.Kind.Null},
		{p.Value.Set, p.Value.Null},
	} {
		if f.set && f.null {
			return ErrFieldNotNullable
		}
	}

	name := r.name
	if p.Name.Set {
		name = strings.TrimSpace(p.Name.Value)
		if name == "" {
			return ErrNameRequired
		}
	}
	description := r.description
	if p.Description.Set {
		description = strings.TrimSpace(p.Description.Value)
	}
	minimum := r.minimum
	if p.MinTokenAmount.Set {
		minimum = p.MinTokenAmount.Value
		if err := validateMinimum(minimum); err != nil {
			return err
		}
	}

	kind := patch.Coalesce(valueIfSet(p.Kind), r.discount.kind)
	value := patch.Coalesce(valueIfSet(p.Value), r.discount.value)
	discount, err := NewDiscount(kind, value, p.MaxDiscountAmount.Apply(r.discount.cap))
	if err != nil {
		return err
	}
	limits, err := NewLimits(p.UsageLimit.Apply(r.limits.usageLimit), p.PerCustomerLimit.Apply(r.limits.perCustomerLimit))
	if err != nil {
		return err
	}
	window, err := NewWindow(p.StartsAt.Apply(r.window.startsAt), p.EndsAt.Apply(r.window.endsAt))
	if err != nil {
		return err
	}

	r.name = name
	r.description = description
	r.minimum = minimum
	r.discount = discount
	r.limits = limits
	r.window = window
	if p.Active.Set {
		r.active = p.Active.Value
	}
	r.updatedAt = clk.Now()
	return nil
}

func valueIfSet[T any](f patch.Field[T]) *T {
	if !f.Set || f.Null {
		return nil
	}
	return &f.Value
}
