package rule

import (
	"math/big"
	"strings"
	"time"

	"tokengate/internal/domain/token"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired = errs.NewMarked("name is required", errs.ErrValidation)

	ErrInactive             = errs.NewMarked("discount rule not found or inactive", errs.ErrNotFound)
	ErrNotYetActive         = errs.NewMarked("discount not yet active", errs.ErrConflict)
	ErrWindowClosed         = errs.NewMarked("discount has expired", errs.ErrConflict)
	ErrUsageLimitReached    = errs.NewMarked("discount usage limit reached", errs.ErrConflict)
	ErrCustomerLimitReached = errs.NewMarked("customer usage limit reached", errs.ErrConflict)
	ErrInsufficientBalance  = errs.NewMarked("insufficient token balance", errs.ErrConflict)
)

const defaultChainID int64 = 1

// Rule is a merchant's token-gated discount. Only the issuer changes usageCount.
type Rule struct {
	id          uuid.UUID
	shopID      uuid.UUID
	name        string
	description string
	minimum     decimal.Decimal
	token       wallet.Address
	chainID     int64
	discount    Discount
	limits      Limits
	window      Window
	active      bool
	usageCount  int32
	createdAt   time.Time
	updatedAt   time.Time
}

type Params struct {
	Name              string
	Description       string
	MinTokenAmount    decimal.Decimal
	TokenContract     string
	ChainID           int64
	Kind              Kind
	Value             decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	UsageLimit        *int32
	PerCustomerLimit  *int32
	StartsAt          *time.Time
	EndsAt            *time.Time
}

func New(clk clock.Clock, shopID uuid.UUID, p Params) (*Rule, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := validateMinimum(p.MinTokenAmount); err != nil {
		return nil, err
	}
	contract, err := wallet.ParseAddress(p.TokenContract)
	if err != nil {
		return nil, token.ErrInvalidAddress
	}
	chainID := p.ChainID
	if chainID == 0 {
		chainID = defaultChainID
	}
	if chainID < 0 {
		return nil, token.ErrUnsupportedChain
	}
	discount, err := NewDiscount(p.Kind, p.Value, p.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}
	limits, err := NewLimits(p.UsageLimit, p.PerCustomerLimit)
	if err != nil {
		return nil, err
	}
	window, err := NewWindow(p.StartsAt, p.EndsAt)
	if err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Rule{
		id:          uuid.New(),
		shopID:      shopID,
		name:        name,
		description: strings.TrimSpace(p.Description),
		minimum:     p.MinTokenAmount,
		token:       contract,
		chainID:     chainID,
		discount:    discount,
		limits:      limits,
		window:      window,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Snapshot is the persisted shape of a rule.
type Snapshot struct {
	ID                uuid.UUID
	ShopID            uuid.UUID
	Name              string
	Description       string
	MinTokenAmount    decimal.Decimal
	TokenContract     wallet.Address
	ChainID           int64
	Kind              Kind
	Value             decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	UsageLimit        *int32
	PerCustomerLimit  *int32
	StartsAt          *time.Time
	EndsAt            *time.Time
	Active            bool
	UsageCount        int32
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Reconstruct rebuilds a stored rule without re-running creation validation.
func Reconstruct(s Snapshot) *Rule {
	return &Rule{
		id:          s.ID,
		shopID:      s.ShopID,
		name:        s.Name,
		description: s.Description,
		minimum:     s.MinTokenAmount,
		token:       s.TokenContract,
		chainID:     s.ChainID,
		discount:    Discount{kind: s.Kind, value: s.Value, cap: s.MaxDiscountAmount},
		limits:      Limits{usageLimit: s.UsageLimit, perCustomerLimit: s.PerCustomerLimit},
		window:      Window{startsAt: s.StartsAt, endsAt: s.EndsAt},
		active:      s.Active,
		usageCount:  s.UsageCount,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (r *Rule) Snapshot() Snapshot {
	return Snapshot{
		ID:                r.id,
		ShopID:            r.shopID,
		Name:              r.name,
		Description:       r.description,
		MinTokenAmount:    r.minimum,
		TokenContract:     r.token,
		ChainID:           r.chainID,
		Kind:              r.discount.kind,
		Value:             r.discount.value,
		MaxDiscountAmount: r.discount.cap,
		UsageLimit:        r.limits.usageLimit,
		PerCustomerLimit:  r.limits.perCustomerLimit,
		StartsAt:          r.window.startsAt,
		EndsAt:            r.window.endsAt,
		Active:            r.active,
		UsageCount:        r.usageCount,
		CreatedAt:         r.createdAt,
		UpdatedAt:         r.updatedAt,
	}
}

// Threshold is the minimum balance in raw units for a token with the given decimals.
func (r *Rule) Threshold(decimals uint8) (*big.Int, error) {
	return token.ToRaw(r.minimum, decimals)
}

// CheckRedeemable validates everything except the balance: active flag,
// validity window, global limit and the customer's own limit.
func (r *Rule) CheckRedeemable(now time.Time, customerUses int64) error {
	if !r.active {
		return ErrInactive
	}
	if err := r.window.Check(now); err != nil {
		return err
	}
	return r.limits.Check(r.usageCount, customerUses)
}

func (r *Rule) ID() uuid.UUID                   { return r.id }
func (r *Rule) ShopID() uuid.UUID               { return r.shopID }
func (r *Rule) Name() string                    { return r.name }
func (r *Rule) Description() string             { return r.description }
func (r *Rule) MinTokenAmount() decimal.Decimal { return r.minimum }
func (r *Rule) TokenContract() wallet.Address   { return r.token }
func (r *Rule) ChainID() int64                  { return r.chainID }
func (r *Rule) Discount() Discount              { return r.discount }
func (r *Rule) Limits() Limits                  { return r.limits }
func (r *Rule) Window() Window                  { return r.window }
func (r *Rule) IsActive() bool                  { return r.active }
func (r *Rule) UsageCount() int32               { return r.usageCount }
func (r *Rule) CreatedAt() time.Time            { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time            { return r.updatedAt }
