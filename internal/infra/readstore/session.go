package readstore

import (
	"context"

	"tokengate/internal/domain/session"
	"tokengate/internal/infra"
	"tokengate/internal/infra/repository/converter"
	sqlc "tokengate/internal/infra/sqlc/generated"
)

type SessionViewQueries interface {
	GetVerificationSession(ctx context.Context, db sqlc.DBTX, token string) (sqlc.VerificationSessions, error)
}

type SessionReadStore struct {
	queries SessionViewQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionViewQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{queries: queries, db: db}
}

func (r *SessionReadStore) FindByToken(ctx context.Context, token session.Token) (*session.Session, error) {
	row, err := r.queries.GetVerificationSession(ctx, r.db, token.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get verification session", err)
	}
	s, err := converter.SessionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification session", err)
	}
	return s, nil
}
