package interaction_test

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
	pb "github.com/velora-app/velora-server/internal/proto/interaction"
	"github.com/velora-app/velora-server/internal/service/interaction"
)

//
// Test helpers
//

// seedUsers inserts deterministic profiles. Point accounts are created
// lazily by the ledger with the configured starter balance (100).
func seedUsers(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	users := []db.User{
		{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x", Gender: "male"},
		{ID: 2, Username: "user2", Email: "u2@test.com", PasswordHash: "x", Gender: "female"},
		{ID: 3, Username: "user3", Email: "u3@test.com", PasswordHash: "x", Gender: "female"},
	}
	require.NoError(t, gdb.Create(&users).Error)
}

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds test users, starts a miniredis, and wires everything into an
// InteractionService instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) (*interaction.Service, *gorm.DB) {
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
	seedUsers(t, dbase)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(cfg, dbase, redisCache, logger)
	return interaction.NewInteractionService(appCtx), dbase
}

func balanceOf(t *testing.T, gdb *gorm.DB, userID uint64) int64 {
	t.Helper()
	var account db.PointsAccount
	require.NoError(t, gdb.Where("user_id = ?", userID).First(&account).Error)
	return account.Balance
}

//
// Tests
//

// TestSendLikeOneWay verifies a first like: edge stored, like cost
// charged, target notified, no match yet.
func TestSendLikeOneWay(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{
		ActorUserId:  "1",
		TargetUserId: "2",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsMatch)

	// starter 100 - like cost 5
	assert.Equal(t, int64(95), balanceOf(t, gdb, 1))

	var notifs []db.Notification
	require.NoError(t, gdb.Where("user_id = ?", 2).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, db.NotificationTypeLike, notifs[0].Type)
}

// TestSendLikeIdempotent ensures a repeated like keeps exactly one edge
// and charges points at most once.
func TestSendLikeIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	req := &pb.SendLikeRequest{ActorUserId: "1", TargetUserId: "2"}

	resp, err := svc.SendLike(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.IsMatch)

	resp, err = svc.SendLike(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.IsMatch)

	var edges int64
	require.NoError(t, gdb.Model(&db.LikeEdge{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	// charged once, not twice
	assert.Equal(t, int64(95), balanceOf(t, gdb, 1))

	// no duplicate like notification either
	var notifs int64
	require.NoError(t, gdb.Model(&db.Notification{}).Where("user_id = ?", 2).Count(&notifs).Error)
	assert.Equal(t, int64(1), notifs)
}

// TestSendLikeReciprocalCreatesMatch walks the full match scenario:
// U1 likes U2, then U2 likes U1. Exactly one match row exists, both
// balances gained the match bonus, and each user has exactly one match
// notification.
func TestSendLikeReciprocalCreatesMatch(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "1", TargetUserId: "2"})
	require.NoError(t, err)
	assert.False(t, resp.IsMatch)

	resp, err = svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "2", TargetUserId: "1"})
	require.NoError(t, err)
	assert.True(t, resp.IsMatch)
	assert.NotZero(t, resp.MatchId)

	var matches int64
	require.NoError(t, gdb.Model(&db.Match{}).Count(&matches).Error)
	assert.Equal(t, int64(1), matches)

	// 100 - 5 (like) + 10 (bonus) on both sides
	assert.Equal(t, int64(105), balanceOf(t, gdb, 1))
	assert.Equal(t, int64(105), balanceOf(t, gdb, 2))

	for _, userID := range []uint64{1, 2} {
		var count int64
		require.NoError(t, gdb.Model(&db.Notification{}).
			Where("user_id = ? AND type = ?", userID, db.NotificationTypeMatch).
			Count(&count).Error)
		assert.Equal(t, int64(1), count, "user %d", userID)
	}
}

// TestSendLikeSelfRejected verifies the self-like guard.
func TestSendLikeSelfRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "1", TargetUserId: "1"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestSendLikeInsufficientPointsRollsBack ensures a like never persists
// unpaid: the failed charge aborts the transaction and the edge is gone.
func TestSendLikeInsufficientPointsRollsBack(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	// fund user3 below the like cost
	require.NoError(t, gdb.Create(&db.PointsAccount{UserID: 3, Balance: 3, LifetimeEarned: 3}).Error)

	_, err := svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "3", TargetUserId: "1"})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var edges int64
	require.NoError(t, gdb.Model(&db.LikeEdge{}).Count(&edges).Error)
	assert.Equal(t, int64(0), edges)

	assert.Equal(t, int64(3), balanceOf(t, gdb, 3))

	// no ledger entry, no notification leaked out of the rollback
	var entries int64
	require.NoError(t, gdb.Model(&db.PointTransaction{}).Where("user_id = ?", 3).Count(&entries).Error)
	assert.Equal(t, int64(0), entries)
	var notifs int64
	require.NoError(t, gdb.Model(&db.Notification{}).Count(&notifs).Error)
	assert.Equal(t, int64(0), notifs)
}

// TestSendLikePremiumBypassesPoints verifies premium senders are never
// charged, even with an empty balance.
func TestSendLikePremiumBypassesPoints(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	require.NoError(t, gdb.Create(&db.PointsAccount{UserID: 3, Balance: 0}).Error)

	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{
		ActorUserId:  "3",
		TargetUserId: "1",
		IsPremium:    true,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsMatch)

	assert.Equal(t, int64(0), balanceOf(t, gdb, 3))

	var edges int64
	require.NoError(t, gdb.Model(&db.LikeEdge{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)
}

// TestSkipDirectionalAndUndo covers the skip registry: directional
// visibility and idempotent undo.
func TestSkipDirectionalAndUndo(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SkipUser(ctx, &pb.SkipUserRequest{ActorUserId: "1", TargetUserId: "2"})
	require.NoError(t, err)

	mine, err := svc.ListSkippedUsers(ctx, &pb.ListSkippedUsersRequest{ActorUserId: "1"})
	require.NoError(t, err)
	require.Len(t, mine.SkippedUsers, 1)
	assert.Equal(t, "2", mine.SkippedUsers[0].UserId)
	assert.Equal(t, "user2", mine.SkippedUsers[0].Username)

	// skipping 1 -> 2 never appears in 2's own list
	theirs, err := svc.ListSkippedUsers(ctx, &pb.ListSkippedUsersRequest{ActorUserId: "2"})
	require.NoError(t, err)
	assert.Len(t, theirs.SkippedUsers, 0)

	_, err = svc.UndoSkip(ctx, &pb.UndoSkipRequest{ActorUserId: "1", TargetUserId: "2"})
	require.NoError(t, err)

	mine, err = svc.ListSkippedUsers(ctx, &pb.ListSkippedUsersRequest{ActorUserId: "1"})
	require.NoError(t, err)
	assert.Len(t, mine.SkippedUsers, 0)

	// undoing again is still fine
	_, err = svc.UndoSkip(ctx, &pb.UndoSkipRequest{ActorUserId: "1", TargetUserId: "2"})
	require.NoError(t, err)
}

// TestSkipSelfRejected verifies the self-skip guard.
func TestSkipSelfRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SkipUser(ctx, &pb.SkipUserRequest{ActorUserId: "2", TargetUserId: "2"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestListMatches returns the caller's matches with the other profile.
func TestListMatches(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "1", TargetUserId: "2"})
	require.NoError(t, err)
	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{ActorUserId: "2", TargetUserId: "1"})
	require.NoError(t, err)
	require.True(t, resp.IsMatch)

	matches, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.Equal(t, "2", matches.Matches[0].OtherUserId)
	assert.Equal(t, "user2", matches.Matches[0].Username)
}
