//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestShop installs shop and returns its id; an existing row is reused.
func CreateTestShop(t *testing.T, db DBLike, domain string) uuid.UUID {
	t.Helper()

	var shopID uuid.UUID
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO shops (domain) VALUES ($1)
		ON CONFLICT (domain) DO UPDATE SET is_active = TRUE, updated_at = now()
		RETURNING id`, domain).Scan(&shopID)
	require.NoError(t, err)

	return shopID
}

func DeactivateShop(t *testing.T, db DBLike, domain string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE shops SET is_active = FALSE WHERE domain = $1", domain)
	require.NoError(t, err)
}

func ShopIsActive(t *testing.T, db DBLike, domain string) bool {
	t.Helper()

	var active bool
	err := db.QueryRow(context.Background(), "SELECT is_active FROM shops WHERE domain = $1", domain).Scan(&active)
	require.NoError(t, err)
	return active
}

func SessionStatus(t *testing.T, db DBLike, token string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM verification_sessions WHERE token = $1", token).Scan(&status)
	require.NoError(t, err)
	return status
}

// ExpireSession moves a session's deadline into the past.
func ExpireSession(t *testing.T, db DBLike, token string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE verification_sessions SET expires_at = now() - interval '1 minute' WHERE token = $1", token)
	require.NoError(t, err)
}

func RuleUsageCount(t *testing.T, db DBLike, ruleID uuid.UUID) int32 {
	t.Helper()

	var count int32
	err := db.QueryRow(context.Background(), "SELECT usage_count FROM discount_rules WHERE id = $1", ruleID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountUsages(t *testing.T, db DBLike, ruleID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM discount_usages WHERE rule_id = $1", ruleID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountVerifiedCustomers(t *testing.T, db DBLike, shopID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM verified_customers WHERE shop_id = $1", shopID).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
