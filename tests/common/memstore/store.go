//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions run one at a time against a copy of the state and are
// published on commit, so a failed fn leaves nothing behind.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"tokengate/internal/domain/rule"
	"tokengate/internal/domain/session"
	"tokengate/internal/domain/usage"
	"tokengate/internal/domain/wallet"
	"tokengate/internal/infra"
	"tokengate/internal/usecase/queries"
	"tokengate/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type customerKey struct {
	shopID uuid.UUID
	addr   wallet.Address
}

type customer struct {
	id              uuid.UUID
	chainID         int64
	firstVerifiedAt time.Time
	lastVerifiedAt  time.Time
}

type state struct {
	shops     map[string]shared.ShopSnapshot
	sessions  map[session.Token]*session.Session
	rules     map[uuid.UUID]rule.Snapshot
	customers map[customerKey]customer
	usages    []usage.Record
}

func newState() *state {
	return &state{
		shops:     map[string]shared.ShopSnapshot{},
		sessions:  map[session.Token]*session.Session{},
		rules:     map[uuid.UUID]rule.Snapshot{},
		customers: map[customerKey]customer{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.shops {
		c.shops[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = copySession(v)
	}
	for k, v := range s.rules {
		c.rules[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	c.usages = append([]usage.Record(nil), s.usages...)
	return c
}

func copySession(s *session.Session) *session.Session {
	return session.Reconstruct(s.Token(), s.Shop(), s.Wallet(), s.ChainID(), s.Status(), s.Nonce(), s.CreatedAt(), s.ExpiresAt())
}

type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	live *state

	// Commits counts successful transactions.
	Commits int
}

var (
	_ shared.UnitOfWork     = (*Store)(nil)
	_ queries.RuleReadStore = (*Store)(nil)
)

func New() *Store {
	return &Store{live: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	work := s.live.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}

	s.mu.Lock()
	s.live = work
	s.Commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &liveReads{store: s}
}

// Seeding helpers bypass transactions.

func (s *Store) PutShop(domain string, active bool) shared.ShopSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop := shared.ShopSnapshot{
		ID:          uuid.New(),
		Domain:      session.NormalizeShop(domain),
		IsActive:    active,
		InstalledAt: time.Now().UTC(),
	}
	s.live.shops[shop.Domain] = shop
	return shop
}

func (s *Store) PutSession(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live.sessions[sess.Token()] = copySession(sess)
}

func (s *Store) PutRule(r *rule.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live.rules[r.ID()] = r.Snapshot()
}

// Inspection helpers.

func (s *Store) Session(tok session.Token) (*session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.live.sessions[tok]
	if !ok {
		return nil, false
	}
	return copySession(sess), true
}

func (s *Store) Rule(id uuid.UUID) (*rule.Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.live.rules[id]
	if !ok {
		return nil, false
	}
	return rule.Reconstruct(snap), true
}

func (s *Store) Shop(domain string) (shared.ShopSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shop, ok := s.live.shops[session.NormalizeShop(domain)]
	return shop, ok
}

func (s *Store) Usages() []usage.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]usage.Record(nil), s.live.usages...)
}

func (s *Store) CustomerCount(shopID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for k := range s.live.customers {
		if k.shopID == shopID {
			n++
		}
	}
	return n
}

// queries.RuleReadStore

func (s *Store) ListByShop(_ context.Context, shopID uuid.UUID) ([]*queries.RuleView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var views []*queries.RuleView
	for _, snap := range s.live.rules {
		if snap.ShopID == shopID {
			views = append(views, toView(snap))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	return views, nil
}

func (s *Store) StatsByShop(_ context.Context, shopID uuid.UUID) (*queries.ShopStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &queries.ShopStats{TotalDiscountAmount: decimal.Zero}
	ruleIDs := map[uuid.UUID]bool{}
	for id, snap := range s.live.rules {
		if snap.ShopID != shopID {
			continue
		}
		ruleIDs[id] = true
		stats.TotalRules++
		if snap.Active {
			stats.ActiveRules++
		}
	}
	for k := range s.live.customers {
		if k.shopID == shopID {
			stats.TotalVerifiedCustomers++
		}
	}
	for _, u := range s.live.usages {
		if ruleIDs[u.RuleID] {
			stats.TotalDiscountsUsed++
			stats.TotalDiscountAmount = stats.TotalDiscountAmount.Add(u.Amount)
		}
	}
	return stats, nil
}

func toView(snap rule.Snapshot) *queries.RuleView {
	return &queries.RuleView{
		ID:                snap.ID,
		ShopID:            snap.ShopID,
		Name:              snap.Name,
		Description:       snap.Description,
		MinTokenAmount:    snap.MinTokenAmount,
		TokenContract:     snap.TokenContract.String(),
		ChainID:           snap.ChainID,
		DiscountType:      string(snap.Kind),
		DiscountValue:     snap.Value,
		MaxDiscountAmount: snap.MaxDiscountAmount,
		UsageLimit:        snap.UsageLimit,
		PerCustomerLimit:  snap.PerCustomerLimit,
		UsageCount:        snap.UsageCount,
		StartsAt:          snap.StartsAt,
		EndsAt:            snap.EndsAt,
		IsActive:          snap.Active,
		CreatedAt:         snap.CreatedAt,
		UpdatedAt:         snap.UpdatedAt,
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

// reads are shared by the live view and the in-transaction view.
type reads struct {
	st *state
}

func (r reads) SessionByToken(_ context.Context, tok session.Token) (*session.Session, error) {
	sess, ok := r.st.sessions[tok]
	if !ok {
		return nil, notFound("session")
	}
	return copySession(sess), nil
}

func (r reads) ShopByDomain(_ context.Context, domain string) (*shared.ShopSnapshot, error) {
	shop, ok := r.st.shops[session.NormalizeShop(domain)]
	if !ok {
		return nil, notFound("shop")
	}
	return &shop, nil
}

func (r reads) ActiveRulesByShop(_ context.Context, shopID uuid.UUID) ([]*rule.Rule, error) {
	var snaps []rule.Snapshot
	for _, snap := range r.st.rules {
		if snap.ShopID == shopID && snap.Active {
			snaps = append(snaps, snap)
		}
	}
	sort.Slice(snaps, func(i, j int) bool {
		if !snaps[i].CreatedAt.Equal(snaps[j].CreatedAt) {
			return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
		}
		return snaps[i].ID.String() < snaps[j].ID.String()
	})
	out := make([]*rule.Rule, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, rule.Reconstruct(snap))
	}
	return out, nil
}

func (r reads) CustomerUsageCount(_ context.Context, ruleID, shopID uuid.UUID, addr wallet.Address) (int64, error) {
	c, ok := r.st.customers[customerKey{shopID: shopID, addr: addr}]
	if !ok {
		return 0, nil
	}
	return r.countFor(ruleID, c.id), nil
}

func (r reads) countFor(ruleID, customerID uuid.UUID) int64 {
	var n int64
	for _, u := range r.st.usages {
		if u.RuleID == ruleID && u.CustomerID == customerID {
			n++
		}
	}
	return n
}

type liveReads struct {
	store *Store
}

func (l *liveReads) SessionByToken(ctx context.Context, tok session.Token) (*session.Session, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return reads{st: l.store.live}.SessionByToken(ctx, tok)
}

func (l *liveReads) ShopByDomain(ctx context.Context, domain string) (*shared.ShopSnapshot, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return reads{st: l.store.live}.ShopByDomain(ctx, domain)
}

func (l *liveReads) ActiveRulesByShop(ctx context.Context, shopID uuid.UUID) ([]*rule.Rule, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return reads{st: l.store.live}.ActiveRulesByShop(ctx, shopID)
}

func (l *liveReads) CustomerUsageCount(ctx context.Context, ruleID, shopID uuid.UUID, addr wallet.Address) (int64, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return reads{st: l.store.live}.CustomerUsageCount(ctx, ruleID, shopID, addr)
}
