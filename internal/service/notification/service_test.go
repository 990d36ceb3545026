package notification_test

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
	pb "github.com/velora-app/velora-server/internal/proto/notification"
	"github.com/velora-app/velora-server/internal/service/notification"
)

func setupService(t *testing.T) (*notification.Service, *gorm.DB, *miniredis.Miniredis) {
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
	return notification.NewNotificationService(appCtx), dbase, mr
}

func seedNotification(t *testing.T, gdb *gorm.DB, typ, priority string, isRead bool, createdAt time.Time) db.Notification {
	t.Helper()
	n := db.Notification{
		UserID:    1,
		Type:      typ,
		Title:     typ,
		Message:   "m",
		Priority:  priority,
		IsRead:    isRead,
		CreatedAt: createdAt,
	}
	require.NoError(t, gdb.Create(&n).Error)
	return n
}

// TestListNotificationsFeedOrder expects unread first, then priority,
// then recency.
func TestListNotificationsFeedOrder(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	readHigh := seedNotification(t, gdb, db.NotificationTypeMatch, db.PriorityHigh, true, now)
	unreadLowOld := seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityLow, false, now.Add(-2*time.Hour))
	unreadHigh := seedNotification(t, gdb, db.NotificationTypeMatch, db.PriorityHigh, false, now.Add(-time.Hour))

	resp, err := svc.ListNotifications(ctx, &pb.ListNotificationsRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 3)
	assert.Equal(t, unreadHigh.ID, resp.Notifications[0].Id)
	assert.Equal(t, unreadLowOld.ID, resp.Notifications[1].Id)
	assert.Equal(t, readHigh.ID, resp.Notifications[2].Id)
}

// TestListNotificationsGroupedByType keeps feed order inside each group
// and group keys in first-seen order.
func TestListNotificationsGroupedByType(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	seedNotification(t, gdb, db.NotificationTypeMatch, db.PriorityHigh, false, now)
	seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, false, now.Add(-time.Minute))
	seedNotification(t, gdb, db.NotificationTypeMatch, db.PriorityHigh, false, now.Add(-2*time.Minute))

	resp, err := svc.ListNotifications(ctx, &pb.ListNotificationsRequest{
		UserId:  "1",
		GroupBy: pb.GroupBy_GROUP_BY_TYPE,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
	require.Len(t, resp.Groups, 2)
	assert.Equal(t, db.NotificationTypeMatch, resp.Groups[0].Key)
	assert.Len(t, resp.Groups[0].Notifications, 2)
	assert.Equal(t, db.NotificationTypeLike, resp.Groups[1].Key)
	assert.Len(t, resp.Groups[1].Notifications, 1)
}

// TestListNotificationsGroupedByDay buckets a read-only feed by day.
func TestListNotificationsGroupedByDay(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t)

	// read rows so the feed stays in plain recency order across buckets
	now := time.Now().UTC().Truncate(time.Millisecond)
	seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, true, now.Add(-time.Minute))
	seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, true, now.AddDate(0, 0, -1))
	seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, true, now.AddDate(0, 0, -30))

	resp, err := svc.ListNotifications(ctx, &pb.ListNotificationsRequest{
		UserId:  "1",
		GroupBy: pb.GroupBy_GROUP_BY_DAY,
	})
	require.NoError(t, err)
	require.Len(t, resp.Groups, 3)
	assert.Equal(t, "today", resp.Groups[0].Key)
	assert.Equal(t, "yesterday", resp.Groups[1].Key)
	assert.Equal(t, "older", resp.Groups[2].Key)
}

// TestMarkNotificationRead flips once, reports false on repeat, and
// rejects other users' rows.
func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := setupService(t)

	n := seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, false, time.Now().UTC())

	resp, err := svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{
		UserId: "1", NotificationId: n.ID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Updated)

	resp, err = svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{
		UserId: "1", NotificationId: n.ID,
	})
	require.NoError(t, err)
	assert.False(t, resp.Updated)

	// a different user cannot flip someone else's row
	other := seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, false, time.Now().UTC())
	resp, err = svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{
		UserId: "99", NotificationId: other.ID,
	})
	require.NoError(t, err)
	assert.False(t, resp.Updated)
}

// TestCountUnreadCacheFirst checks the DB fallback populates Redis and
// subsequent reads are served from the cache.
func TestCountUnreadCacheFirst(t *testing.T) {
	ctx := context.Background()
	svc, gdb, mr := setupService(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, false, now)
	seedNotification(t, gdb, db.NotificationTypeMatch, db.PriorityHigh, false, now)
	seedNotification(t, gdb, db.NotificationTypeMessage, db.PriorityMedium, true, now)

	resp, err := svc.CountUnread(ctx, &pb.CountUnreadRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Count)

	key := "notifications:unread:1"
	cached, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "2", cached)

	// stale cache wins until invalidated
	require.NoError(t, mr.Set(key, "7"))
	resp, err = svc.CountUnread(ctx, &pb.CountUnreadRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Count)
}

// TestMarkReadInvalidatesCache drops the cached count so the next read
// hits the DB again.
func TestMarkReadInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	svc, gdb, mr := setupService(t)

	n := seedNotification(t, gdb, db.NotificationTypeLike, db.PriorityMedium, false, time.Now().UTC())

	key := "notifications:unread:1"
	_, err := svc.CountUnread(ctx, &pb.CountUnreadRequest{UserId: "1"})
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))

	resp, err := svc.MarkNotificationRead(ctx, &pb.MarkNotificationReadRequest{
		UserId: "1", NotificationId: n.ID,
	})
	require.NoError(t, err)
	require.True(t, resp.Updated)
	assert.False(t, mr.Exists(key))

	fresh, err := svc.CountUnread(ctx, &pb.CountUnreadRequest{UserId: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), fresh.Count)
}

func TestListNotificationsBadUserID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.ListNotifications(ctx, &pb.ListNotificationsRequest{UserId: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
