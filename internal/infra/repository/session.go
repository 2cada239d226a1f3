package repository

import (
	"context"
	"time"

	"tokengate/internal/domain/session"
	"tokengate/internal/infra"
	"tokengate/internal/infra/repository/converter"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SessionWriteQueries interface {
	CreateVerificationSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVerificationSessionParams) error
	GetVerificationSessionForUpdate(ctx context.Context, db sqlc.DBTX, token string) (sqlc.VerificationSessions, error)
	ResolveVerificationSession(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveVerificationSessionParams) (int64, error)
	ExpireStaleSessions(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

func (r *SessionRepository) Create(ctx context.Context, tx sqlc.DBTX, s *session.Session) error {
	if err := r.queries.CreateVerificationSession(ctx, tx, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create verification session", err)
	}
	return nil
}

func (r *SessionRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, token session.Token) (*session.Session, error) {
	row, err := r.queries.GetVerificationSessionForUpdate(ctx, tx, token.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock verification session", err)
	}
	s, err := converter.SessionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification session", err)
	}
	return s, nil
}

// SaveResolution only touches rows still pending, so a second resolver loses.
func (r *SessionRepository) SaveResolution(ctx context.Context, tx sqlc.DBTX, s *session.Session, now time.Time) (bool, error) {
	n, err := r.queries.ResolveVerificationSession(ctx, tx, sqlc.ResolveVerificationSessionParams{
		Token:     s.Token().String(),
		Status:    s.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to resolve verification session", err)
	}
	return n == 1, nil
}

func (r *SessionRepository) ExpireStale(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireStaleSessions(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale sessions", err)
	}
	return n, nil
}
