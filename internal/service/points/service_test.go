package points_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/app"
	"github.com/velora-app/velora-server/internal/cache"
	"github.com/velora-app/velora-server/internal/config"
	"github.com/velora-app/velora-server/internal/db"
	pb "github.com/velora-app/velora-server/internal/proto/points"
	"github.com/velora-app/velora-server/internal/service/points"
)

func setupService(t *testing.T) (*points.Service, *gorm.DB) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))

	user := db.User{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x", Gender: "male"}
	require.NoError(t, dbase.Create(&user).Error)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCtx := app.New(cfg, dbase, redisCache, logger)
	return points.NewPointsService(appCtx), dbase
}

// TestGetBalanceLazyStarter provisions the account with the starter
// grant on first access and returns the same account afterwards.
func TestGetBalanceLazyStarter(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	resp, err := svc.GetBalance(ctx, &pb.GetBalanceRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Balance)
	assert.Equal(t, int64(100), resp.LifetimeEarned)

	// the grant is visible in the ledger
	var entries []db.PointTransaction
	require.NoError(t, gdb.Where("user_id = ?", 1).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, db.TxTypeStarter, entries[0].Type)
	assert.Equal(t, int64(100), entries[0].Amount)

	// second read does not grant again
	resp, err = svc.GetBalance(ctx, &pb.GetBalanceRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Balance)

	require.NoError(t, gdb.Where("user_id = ?", 1).Find(&entries).Error)
	assert.Len(t, entries, 1)
}

func TestGetBalanceBadUserID(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, raw := range []string{"", "0", "abc"} {
		_, err := svc.GetBalance(ctx, &pb.GetBalanceRequest{UserId: raw})
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "user_id %q", raw)
	}
}

// TestListTransactionsPaginated walks a 25-entry ledger through the
// cursor, newest first.
func TestListTransactionsPaginated(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	require.NoError(t, gdb.Create(&db.PointsAccount{UserID: 1, Balance: 0}).Error)
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	for i := 0; i < 25; i++ {
		entry := db.PointTransaction{
			UserID:      1,
			Amount:      1,
			Type:        db.TxTypeMatchBonus,
			Description: fmt.Sprintf("entry %d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, gdb.Create(&entry).Error)
	}

	first, err := svc.ListTransactions(ctx, &pb.ListTransactionsRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, first.Transactions, 20)
	assert.Equal(t, "entry 24", first.Transactions[0].Description)
	require.NotNil(t, first.NextPaginationToken)

	second, err := svc.ListTransactions(ctx, &pb.ListTransactionsRequest{
		UserId:          "1",
		PaginationToken: first.NextPaginationToken,
	})
	require.NoError(t, err)
	require.Len(t, second.Transactions, 5)
	assert.Equal(t, "entry 4", second.Transactions[0].Description)
	assert.Equal(t, "entry 0", second.Transactions[4].Description)
	assert.Nil(t, second.NextPaginationToken)
}
