package wallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"tokengate/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureLength = 65
	recoveryIDIndex = 64
)

var (
	errSignatureLength = errs.New("signature must be 65 bytes")
	errRecoveryID      = errs.New("invalid signature recovery id")
)

const challengeTemplate = "Sign this message to verify your wallet ownership for %s.\n\nNonce: %s\n\nThis will not trigger any blockchain transaction or cost any gas fees."

// Challenge is the exact text a wallet signs for a session. It binds the shop
// and the nonce so a signature cannot be replayed for another shop or session.
func Challenge(shop, nonce string) string {
	return fmt.Sprintf(challengeTemplate, shop, nonce)
}

type SignatureVerifier interface {
	Verify(message, signature string, claimed Address) bool
}

// EthereumVerifier checks personal_sign (EIP-191) signatures. It is pure and
// never touches the network.
type EthereumVerifier struct{}

func NewEthereumVerifier() *EthereumVerifier {
	return &EthereumVerifier{}
}

func (v *EthereumVerifier) Verify(message, signature string, claimed Address) bool {
	recovered, ok := RecoverSigner(message, signature)
	if !ok {
		return false
	}
	return claimed.EqualFold(recovered.String())
}

// RecoverSigner returns the address that produced signature over message.
// Malformed input yields ok=false.
func RecoverSigner(message, signature string) (Address, bool) {
	sig, err := decodeSignature(signature)
	if err != nil {
		return "", false
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil || pub == nil {
		return "", false
	}
	return Address(strings.ToLower(crypto.PubkeyToAddress(*pub).Hex())), true
}

func decodeSignature(signature string) ([]byte, error) {
	s := strings.TrimSpace(signature)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "signature is not hex")
	}
	if len(raw) != signatureLength {
		return nil, errSignatureLength
	}

	sig := make([]byte, signatureLength)
	copy(sig, raw)
	// wallets emit v as 27/28; the recovery routine expects 0/1
	if sig[recoveryIDIndex] >= 27 {
		sig[recoveryIDIndex] -= 27
	}
	if sig[recoveryIDIndex] > 1 {
		return nil, errRecoveryID
	}
	return sig, nil
}
