package wallet

import (
	"strings"

	"tokengate/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress = errs.NewMarked("invalid wallet address", errs.ErrValidation)

// Address is a 20-byte EVM address kept in lower-case hex with the 0x prefix.
type Address string

func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return "", ErrInvalidAddress
	}
	return Address(strings.ToLower(s)), nil
}

func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string {
	return string(a)
}

func (a Address) Common() common.Address {
	return common.HexToAddress(string(a))
}

func (a Address) IsZero() bool {
	return a == ""
}

// EqualFold compares against an address in any letter case, including checksummed form.
func (a Address) EqualFold(other string) bool {
	return strings.EqualFold(string(a), strings.TrimSpace(other))
}
