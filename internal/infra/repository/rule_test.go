//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"tokengate/internal/infra"
	"tokengate/internal/infra/repository"
	sqlc "tokengate/internal/infra/sqlc/generated"
	"tokengate/tests/common/builder"
	repositorymock "tokengate/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Rule Tests
// =============================================================================

func TestRuleRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: rule created"},
		{name: "error: database failure", returnErr: errConnectionLost, expectKind: infra.KindDBFailure},
		{name: "error: unknown shop", returnErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRuleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRuleRepository(mockQueries)

			dr, err := builder.NewRuleBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateDiscountRule(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDiscountRuleParams) error {
					assert.Equal(t, dr.ID(), arg.ID)
					assert.Equal(t, dr.ShopID(), arg.ShopID)
					assert.Equal(t, "percentage", arg.DiscountType)
					assert.True(t, arg.IsActive)
					return tc.returnErr
				})

			err = repo.Create(ctx, mockDB, dr)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Update / Delete Tests
// =============================================================================

func TestRuleRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: no row for this shop", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: errConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRuleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRuleRepository(mockQueries)
			dr := builder.NewRuleBuilder().BuildReconstructed()

			mockQueries.EXPECT().
				UpdateDiscountRule(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateDiscountRuleParams) (int64, error) {
					assert.Equal(t, dr.ID(), arg.ID)
					assert.Equal(t, dr.ShopID(), arg.ShopID)
					return tc.rows, tc.returnErr
				})

			err := repo.Update(ctx, mockDB, dr)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRuleRepository_Delete(t *testing.T) {
	ctx := context.Background()
	shopID, ruleID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRuleWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRuleRepository(mockQueries)
	params := sqlc.DeleteDiscountRuleParams{ID: ruleID, ShopID: shopID}

	gomock.InOrder(
		mockQueries.EXPECT().DeleteDiscountRule(ctx, mockDB, params).Return(int64(1), nil),
		mockQueries.EXPECT().DeleteDiscountRule(ctx, mockDB, params).Return(int64(0), nil),
	)

	require.NoError(t, repo.Delete(ctx, mockDB, shopID, ruleID))
	err := repo.Delete(ctx, mockDB, shopID, ruleID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// GetForUpdate Tests
// =============================================================================

func TestRuleRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewRuleBuilder()

	testCases := []struct {
		name       string
		row        sqlc.DiscountRules
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row decoded", row: b.BuildInfra()},
		{name: "error: not found", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: errConnectionLost, expectKind: infra.KindDBFailure},
		{
			name: "error: corrupt row",
			row: func() sqlc.DiscountRules {
				row := b.BuildInfra()
				row.DiscountType = "bogo"
				return row
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRuleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRuleRepository(mockQueries)

			mockQueries.EXPECT().
				GetDiscountRuleForUpdate(ctx, mockDB, sqlc.GetDiscountRuleForUpdateParams{ID: b.ID, ShopID: b.ShopID}).
				Return(tc.row, tc.returnErr)

			dr, err := repo.GetForUpdate(ctx, mockDB, b.ShopID, b.ID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, dr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, dr.ID())
			assert.Equal(t, b.Name, dr.Name())
		})
	}
}

func TestRuleRepository_IncrementUsage(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name      string
		rows      int64
		returnErr error
		wantTaken bool
		wantErr   bool
	}{
		{name: "slot taken", rows: 1, wantTaken: true},
		{name: "limit reached", rows: 0, wantTaken: false},
		{name: "database failure", returnErr: errConnectionLost, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRuleWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRuleRepository(mockQueries)

			mockQueries.EXPECT().IncrementDiscountRuleUsage(ctx, mockDB, id).Return(tc.rows, tc.returnErr)

			taken, err := repo.IncrementUsage(ctx, mockDB, id)
			if tc.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTaken, taken)
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
