package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/db"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	"github.com/velora-app/velora-server/internal/repository"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestGetOrCreateAccountLazyStarter(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 100)

	account, err := repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)
	assert.Equal(t, int64(100), account.LifetimeEarned)

	// second access reuses the row, no second starter credit
	account, err = repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)

	var entries []db.PointTransaction
	require.NoError(t, dbase.Where("user_id = ?", 1).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, db.TxTypeStarter, entries[0].Type)
	assert.Equal(t, int64(100), entries[0].Amount)
}

func TestHasEnoughPoints(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPointsRepository(setupTestDB(t), 10)

	// non-positive amounts are trivially affordable
	ok, err := repo.HasEnoughPoints(ctx, 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasEnoughPoints(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasEnoughPoints(ctx, 1, 11)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsumeDecrementsAndLogs(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 50)

	require.NoError(t, repo.Consume(ctx, 1, 20, db.TxTypeLike, "2"))

	account, err := repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), account.Balance)

	var entry db.PointTransaction
	require.NoError(t, dbase.Where("user_id = ? AND transaction_type = ?", 1, db.TxTypeLike).First(&entry).Error)
	assert.Equal(t, int64(-20), entry.Amount)
	assert.Equal(t, "2", entry.ReferenceID)
}

func TestConsumeInsufficientLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 10)

	err := repo.Consume(ctx, 1, 25, db.TxTypeMessage, "m1")
	require.Error(t, err)
	assert.True(t, svcErr.IsInsufficientPoints(err))

	account, getErr := repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, getErr)
	assert.Equal(t, int64(10), account.Balance)

	// only the starter entry exists
	var count int64
	require.NoError(t, dbase.Model(&db.PointTransaction{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConsumeRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPointsRepository(setupTestDB(t), 10)

	err := repo.Consume(ctx, 1, 0, db.TxTypeLike, "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidAmount)

	err = repo.Consume(ctx, 1, -5, db.TxTypeLike, "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidAmount)
}

func TestAddIncrementsBalanceAndLifetime(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 10)

	require.NoError(t, repo.Add(ctx, 1, 15, db.TxTypeMatchBonus, "7", "match bonus"))

	account, err := repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(25), account.Balance)
	assert.Equal(t, int64(25), account.LifetimeEarned)

	// consuming does not shrink lifetime_earned
	require.NoError(t, repo.Consume(ctx, 1, 5, db.TxTypeLike, "2"))
	account, err = repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), account.Balance)
	assert.Equal(t, int64(25), account.LifetimeEarned)
}

func TestBalanceNeverNegative(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 7)

	// drain in uneven steps; the over-ask must fail cleanly
	require.NoError(t, repo.Consume(ctx, 1, 3, db.TxTypeLike, ""))
	require.NoError(t, repo.Consume(ctx, 1, 4, db.TxTypeLike, ""))
	err := repo.Consume(ctx, 1, 1, db.TxTypeLike, "")
	assert.True(t, svcErr.IsInsufficientPoints(err))

	account, getErr := repo.GetOrCreateAccount(ctx, 1)
	require.NoError(t, getErr)
	assert.Equal(t, int64(0), account.Balance)
}

func TestListTransactionsPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewPointsRepository(dbase, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Add(ctx, 1, int64(i+1), db.TxTypePurchase, "", ""))
	}

	page1, next, err := repo.ListTransactions(ctx, 1, nil, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.NotNil(t, next)

	page2, next2, err := repo.ListTransactions(ctx, 1, next, 3)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Nil(t, next2)

	// newest first and no overlap across pages
	assert.Greater(t, page1[0].ID, page1[2].ID)
	assert.Greater(t, page1[2].ID, page2[0].ID)
}
