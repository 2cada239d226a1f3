//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/usage"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st *state
}

func (t *memTx) Sessions() shared.SessionRepository   { return sessionRepo{t.st} }
func (t *memTx) Rules() shared.RuleRepository         { return ruleRepo{t.st} }
func (t *memTx) Customers() shared.CustomerRepository { return customerRepo{t.st} }
func (t *memTx) Usages() shared.UsageRepository       { return usageRepo{t.st} }
func (t *memTx) Shops() shared.ShopRepository         { return shopRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads           { return reads{t.st} }
func (t *memTx) DB() sqlc.DBTX                        { return nil }

type sessionRepo struct{ st *state }

func (r sessionRepo) Create(_ context.Context, _ sqlc.DBTX, s *session.Session) error {
	if _, ok := r.st.sessions[s.Token()]; ok {
		return infra.WrapRepoErr("session token taken", nil, infra.KindDuplicateKey)
	}
	r.st.sessions[s.Token()] = copySession(s)
	return nil
}

func (r sessionRepo) GetForUpdate(ctx context.Context, _ sqlc.DBTX, tok session.Token) (*session.Session, error) {
	return reads{r.st}.SessionByToken(ctx, tok)
}

func (r sessionRepo) SaveResolution(_ context.Context, _ sqlc.DBTX, s *session.Session, _ time.Time) (bool, error) {
	cur, ok := r.st.sessions[s.Token()]
	if !ok || cur.Status() != session.StatusPending {
		return false, nil
	}
	r.st.sessions[s.Token()] = copySession(s)
	return true, nil
}

func (r sessionRepo) ExpireStale(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for tok, s := range r.st.sessions {
		if s.Status() == session.StatusPending && s.IsExpiredAt(now) {
			r.st.sessions[tok] = session.Reconstruct(s.Token(), s.Shop(), s.Wallet(), s.ChainID(), session.StatusExpired, s.Nonce(), s.CreatedAt(), s.ExpiresAt())
			n++
		}
	}
	return n, nil
}

type ruleRepo struct{ st *state }

func (r ruleRepo) Create(_ context.Context, _ sqlc.DBTX, ru *rule.Rule) error {
	r.st.rules[ru.ID()] = ru.Snapshot()
	return nil
}

func (r ruleRepo) Update(_ context.Context, _ sqlc.DBTX, ru *rule.Rule) error {
	cur, ok := r.st.rules[ru.ID()]
	if !ok || cur.ShopID != ru.ShopID() {
		return notFound("update rule")
	}
	snap := ru.Snapshot()
	snap.UsageCount = cur.UsageCount
	r.st.rules[ru.ID()] = snap
	return nil
}

func (r ruleRepo) Delete(_ context.Context, _ sqlc.DBTX, shopID, id uuid.UUID) error {
	cur, ok := r.st.rules[id]
	if !ok || cur.ShopID != shopID {
		return notFound("delete rule")
	}
	delete(r.st.rules, id)
	kept := r.st.usages[:0]
	for _, u := range r.st.usages {
		if u.RuleID != id {
			kept = append(kept, u)
		}
	}
	r.st.usages = kept
	return nil
}

func (r ruleRepo) GetForUpdate(_ context.Context, _ sqlc.DBTX, shopID, id uuid.UUID) (*rule.Rule, error) {
	snap, ok := r.st.rules[id]
	if !ok || snap.ShopID != shopID {
		return nil, notFound("get rule")
	}
	return rule.Reconstruct(snap), nil
}

func (r ruleRepo) IncrementUsage(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	snap, ok := r.st.rules[id]
	if !ok {
		return false, nil
	}
	if snap.UsageLimit != nil && snap.UsageCount >= *snap.UsageLimit {
		return false, nil
	}
	snap.UsageCount++
	r.st.rules[id] = snap
	return true, nil
}

type customerRepo struct{ st *state }

func (r customerRepo) Upsert(_ context.Context, _ sqlc.DBTX, shopID uuid.UUID, addr wallet.Address, chainID int64, now time.Time) (uuid.UUID, error) {
	key := customerKey{shopID: shopID, addr: addr}
	c, ok := r.st.customers[key]
	if !ok {
		c = customer{id: uuid.New(), firstVerifiedAt: now}
	}
	c.chainID = chainID
	c.lastVerifiedAt = now
	r.st.customers[key] = c
	return c.id, nil
}

type usageRepo struct{ st *state }

func (r usageRepo) Create(_ context.Context, _ sqlc.DBTX, rec usage.Record) error {
	for _, u := range r.st.usages {
		if u.Code == rec.Code {
			return infra.WrapRepoErr("redemption code taken", nil, infra.KindDuplicateKey)
		}
	}
	r.st.usages = append(r.st.usages, rec)
	return nil
}

func (r usageRepo) CountForCustomer(_ context.Context, _ sqlc.DBTX, ruleID, customerID uuid.UUID) (int64, error) {
	return reads{r.st}.countFor(ruleID, customerID), nil
}

type shopRepo struct{ st *state }

func (r shopRepo) Upsert(_ context.Context, _ sqlc.DBTX, domain string, now time.Time) (*shared.ShopSnapshot, error) {
	shop, ok := r.st.shops[domain]
	if !ok {
		shop = shared.ShopSnapshot{ID: uuid.New(), Domain: domain, InstalledAt: now}
	}
	shop.IsActive = true
	r.st.shops[domain] = shop
	return &shop, nil
}
