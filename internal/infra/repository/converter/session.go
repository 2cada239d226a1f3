package converter

import (
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/errs"
	"tokengate/internal/pkg/pgconv"
)

func SessionToCreateParams(s *session.Session) sqlc.CreateVerificationSessionParams {
	return sqlc.CreateVerificationSessionParams{
		Token:         s.Token().String(),
		ShopDomain:    s.Shop(),
		WalletAddress: s.Wallet().String(),
		ChainID:       s.ChainID(),
		Nonce:         s.Nonce().String(),
		Status:        s.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
		ExpiresAt:     pgconv.TimeToPgtype(s.ExpiresAt()),
	}
}

func SessionFromRow(row sqlc.VerificationSessions) (*session.Session, error) {
	status, err := session.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored session status")
	}
	addr, err := wallet.ParseAddress(row.WalletAddress)
	if err != nil {
		return nil, errs.Wrap(err, "stored wallet address")
	}
	return session.Reconstruct(
		session.Token(row.Token),
		row.ShopDomain,
		addr,
		row.ChainID,
		status,
		session.Nonce(row.Nonce),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
	), nil
}
