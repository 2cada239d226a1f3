package usage

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"time"

	"tokengate/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	codePrefix = "TG-"
	codeBytes  = 10 // 80 bits, 16 base32 characters
)

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

var ErrInvalidCode = errs.New("malformed redemption code")

// Code is a redemption code. It is random and is stored on the usage row it
// was minted for, so it can be traced back to exactly one redemption.
type Code string

func NewCode() (Code, error) {
	b := make([]byte, codeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errs.Wrap(err, "failed to generate redemption code")
	}
	return Code(codePrefix + codeEncoding.EncodeToString(b)), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Valid() bool {
	s := string(c)
	if !strings.HasPrefix(s, codePrefix) {
		return false
	}
	raw, err := codeEncoding.DecodeString(strings.TrimPrefix(s, codePrefix))
	return err == nil && len(raw) == codeBytes
}

// Record is one successful redemption.
type Record struct {
	ID         uuid.UUID
	RuleID     uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Code       Code
	CreatedAt  time.Time
}

func NewRecord(ruleID, customerID uuid.UUID, amount decimal.Decimal, now time.Time) (Record, error) {
	code, err := NewCode()
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:         uuid.New(),
		RuleID:     ruleID,
		CustomerID: customerID,
		Amount:     amount,
		Code:       code,
		CreatedAt:  now,
	}, nil
}
