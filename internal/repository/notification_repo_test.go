package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-app/velora-server/internal/db"
	"github.com/velora-app/velora-server/internal/repository"
)

func TestNotificationFeedOrdering(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewNotificationRepository(dbase)

	now := time.Now().UTC().Truncate(time.Millisecond)
	rows := []db.Notification{
		{UserID: 1, Type: db.NotificationTypeLike, Title: "old read high", Priority: db.PriorityHigh, IsRead: true},
		{UserID: 1, Type: db.NotificationTypeMessage, Title: "unread low", Priority: db.PriorityLow},
		{UserID: 1, Type: db.NotificationTypeMatch, Title: "unread high", Priority: db.PriorityHigh},
		{UserID: 1, Type: db.NotificationTypeMessage, Title: "unread medium", Priority: db.PriorityMedium},
		{UserID: 2, Type: db.NotificationTypeLike, Title: "other user", Priority: db.PriorityHigh},
	}
	for i := range rows {
		require.NoError(t, repo.Create(ctx, &rows[i]))
		// space timestamps out so recency is deterministic
		require.NoError(t, dbase.Model(&db.Notification{}).
			Where("id = ?", rows[i].ID).
			Update("created_at", now.Add(time.Duration(i)*time.Second)).Error)
	}

	feed, err := repo.ListForUser(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, feed, 4)

	// unread before read, then priority high > medium > low
	assert.Equal(t, "unread high", feed[0].Title)
	assert.Equal(t, "unread medium", feed[1].Title)
	assert.Equal(t, "unread low", feed[2].Title)
	assert.Equal(t, "old read high", feed[3].Title)
}

func TestNotificationDefaultPriority(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNotificationRepository(setupTestDB(t))

	n := db.Notification{UserID: 1, Type: db.NotificationTypeLike, Title: "x"}
	require.NoError(t, repo.Create(ctx, &n))
	assert.Equal(t, db.PriorityMedium, n.Priority)
}

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNotificationRepository(setupTestDB(t))

	n := db.Notification{UserID: 1, Type: db.NotificationTypeMatch, Title: "match"}
	require.NoError(t, repo.Create(ctx, &n))

	// wrong owner cannot flip it
	updated, err := repo.MarkRead(ctx, n.ID, 2)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = repo.MarkRead(ctx, n.ID, 1)
	require.NoError(t, err)
	assert.True(t, updated)

	// repeat is a no-op
	updated, err = repo.MarkRead(ctx, n.ID, 1)
	require.NoError(t, err)
	assert.False(t, updated)

	count, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCountUnread(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNotificationRepository(setupTestDB(t))

	for i := 0; i < 3; i++ {
		n := db.Notification{UserID: 1, Type: db.NotificationTypeMessage, Title: "m"}
		require.NoError(t, repo.Create(ctx, &n))
	}
	read := db.Notification{UserID: 1, Type: db.NotificationTypeMessage, Title: "seen", IsRead: true}
	require.NoError(t, repo.Create(ctx, &read))

	count, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
