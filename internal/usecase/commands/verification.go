package commands

import (
	"context"
	"errors"
	"time"

	"tokengate/internal/domain/session"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	"tokengate/internal/pkg/clock"
	"tokengate/internal/pkg/metrics"
	"tokengate/internal/usecase/shared"
)

type InitVerificationRequest struct {
	Shop          string
	WalletAddress string
	ChainID       int64
}

type InitVerificationResult struct {
	SessionToken session.Token
	Message      string
	ExpiresAt    time.Time
}

type VerifySignatureResult struct {
	WalletAddress wallet.Address
}

type VerificationCommands interface {
	Init(ctx context.Context, req InitVerificationRequest) (*InitVerificationResult, error)
	Verify(ctx context.Context, sessionToken, signature string) (*VerifySignatureResult, error)
	// ExpireStale marks pending sessions past their expiry as expired.
	ExpireStale(ctx context.Context) (int64, error)
}

type verificationUseCaseImpl struct {
	uow      shared.UnitOfWork
	verifier wallet.SignatureVerifier
	clock    clock.Clock
	ttl      time.Duration
}

func NewVerificationUseCase(uow shared.UnitOfWork, verifier wallet.SignatureVerifier, clk clock.Clock, ttl time.Duration) VerificationCommands {
	return &verificationUseCaseImpl{uow: uow, verifier: verifier, clock: clk, ttl: ttl}
}

func (uc *verificationUseCaseImpl) Init(ctx context.Context, req InitVerificationRequest) (*InitVerificationResult, error) {
	addr, err := wallet.ParseAddress(req.WalletAddress)
	if err != nil {
		return nil, err
	}
	s, err := session.New(uc.clock, req.Shop, addr, req.ChainID, uc.ttl)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, tx.DB(), s)
	})
	if err != nil {
		return nil, err
	}
	return &InitVerificationResult{
		SessionToken: s.Token(),
		Message:      s.Challenge(),
		ExpiresAt:    s.ExpiresAt(),
	}, nil
}

// Verify settles a pending session. Expired and failed outcomes are committed
// before their error is returned, so a retry with the same token always sees
// ErrAlreadyProcessed.
func (uc *verificationUseCaseImpl) Verify(ctx context.Context, sessionToken, signature string) (*VerifySignatureResult, error) {
	tok, err := session.ParseToken(sessionToken)
	if err != nil {
		return nil, session.ErrNotFound
	}

	var (
		resolved *session.Session
		outcome  error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().GetForUpdate(ctx, tx.DB(), tok)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return session.ErrNotFound
			}
			return err
		}

		now := uc.clock.Now()
		status, rerr := s.Resolve(now, func(message string) bool {
			return uc.verifier.Verify(message, signature, s.Wallet())
		})
		if errors.Is(rerr, session.ErrAlreadyProcessed) {
			return rerr
		}

		saved, err := tx.Sessions().SaveResolution(ctx, tx.DB(), s, now)
		if err != nil {
			return err
		}
		if !saved {
			return session.ErrAlreadyProcessed
		}

		resolved, outcome = s, rerr
		if outcome == nil && status == session.StatusFailed {
			outcome = session.ErrInvalidSignature
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Discount().Verification(resolved.Status().String())
	if outcome != nil {
		return nil, outcome
	}
	return &VerifySignatureResult{WalletAddress: resolved.Wallet()}, nil
}

func (uc *verificationUseCaseImpl) ExpireStale(ctx context.Context) (int64, error) {
	var expired int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Sessions().ExpireStale(ctx, tx.DB(), uc.clock.Now())
		expired = n
		return err
	})
	return expired, err
}
