package converter

import (
	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/wallet"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/pgconv"
)

func RuleToCreateParams(r *rule.Rule) sqlc.CreateDiscountRuleParams {
	s := r.Snapshot()
	return sqlc.CreateDiscountRuleParams{
		ID:                s.ID,
		ShopID:            s.ShopID,
		Name:              s.Name,
		Description:       s.Description,
		MinTokenAmount:    pgconv.NumericFromDecimal(s.MinTokenAmount),
		TokenContract:     s.TokenContract.String(),
		ChainID:           s.ChainID,
		DiscountType:      s.Kind.String(),
		DiscountValue:     pgconv.NumericFromDecimal(s.Value),
		MaxDiscountAmount: pgconv.NumericFromDecimalPtr(s.MaxDiscountAmount),
		UsageLimit:        pgconv.Int32PtrToPgtype(s.UsageLimit),
		PerCustomerLimit:  pgconv.Int32PtrToPgtype(s.PerCustomerLimit),
		UsageCount:        s.UsageCount,
		StartsAt:          pgconv.TimePtrToPgtype(s.StartsAt),
		EndsAt:            pgconv.TimePtrToPgtype(s.EndsAt),
		IsActive:          s.Active,
		CreatedAt:         pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

// RuleToUpdateParams covers the merchant-editable columns only; token,
// chain and usage_count never change through an update.
func RuleToUpdateParams(r *rule.Rule) sqlc.UpdateDiscountRuleParams {
	s := r.Snapshot()
	return sqlc.UpdateDiscountRuleParams{
		ID:                s.ID,
		ShopID:            s.ShopID,
		Name:              s.Name,
		Description:       s.Description,
		MinTokenAmount:    pgconv.NumericFromDecimal(s.MinTokenAmount),
		DiscountType:      s.Kind.String(),
		DiscountValue:     pgconv.NumericFromDecimal(s.Value),
		MaxDiscountAmount: pgconv.NumericFromDecimalPtr(s.MaxDiscountAmount),
		UsageLimit:        pgconv.Int32PtrToPgtype(s.UsageLimit),
		PerCustomerLimit:  pgconv.Int32PtrToPgtype(s.PerCustomerLimit),
		StartsAt:          pgconv.TimePtrToPgtype(s.StartsAt),
		EndsAt:            pgconv.TimePtrToPgtype(s.EndsAt),
		IsActive:          s.Active,
		UpdatedAt:         pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func RuleFromRow(row sqlc.DiscountRules) (*rule.Rule, error) {
	kind, err := rule.ParseKind(row.DiscountType)
	if err != nil {
		return nil, errs.Wrap(err, "stored discount type")
	}
	contract, err := wallet.ParseAddress(row.TokenContract)
	if err != nil {
		return nil, errs.Wrap(err, "stored token contract")
	}
	minimum, err := pgconv.DecimalFromNumeric(row.MinTokenAmount)
	if err != nil {
		return nil, errs.Wrap(err, "stored min_token_amount")
	}
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, errs.Wrap(err, "stored discount_value")
	}
	maxAmount, err := pgconv.DecimalPtrFromNumeric(row.MaxDiscountAmount)
	if err != nil {
		return nil, errs.Wrap(err, "stored max_discount_amount")
	}

	return rule.Reconstruct(rule.Snapshot{
		ID:                row.ID,
		ShopID:            row.ShopID,
		Name:              row.Name,
		Description:       row.Description,
		MinTokenAmount:    minimum,
		TokenContract:     contract,
		ChainID:           row.ChainID,
		Kind:              kind,
		Value:             value,
		MaxDiscountAmount: maxAmount,
		UsageLimit:        pgconv.Int32PtrFromPgtype(row.UsageLimit),
		PerCustomerLimit:  pgconv.Int32PtrFromPgtype(row.PerCustomerLimit),
		StartsAt:          pgconv.TimePtrFromPgtype(row.StartsAt),
		EndsAt:            pgconv.TimePtrFromPgtype(row.EndsAt),
		Active:            row.IsActive,
		UsageCount:        row.UsageCount,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func RulesFromRows(rows []sqlc.DiscountRules) ([]*rule.Rule, error) {
	out := make([]*rule.Rule, 0, len(rows))
	for _, row := range rows {
		r, err := RuleFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
