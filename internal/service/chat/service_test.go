package chat_test

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
	pb "github.com/velora-app/velora-server/internal/proto/chat"
	"github.com/velora-app/velora-server/internal/service/chat"
)

//
// Test helpers
//

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds two users, starts a miniredis, and wires everything into a
// ChatService instance.
func setupService(t *testing.T) (*chat.Service, *gorm.DB) {
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

	users := []db.User{
		{ID: 1, Username: "user1", Email: "u1@test.com", PasswordHash: "x", Gender: "male"},
		{ID: 2, Username: "user2", Email: "u2@test.com", PasswordHash: "x", Gender: "female"},
	}
	require.NoError(t, dbase.Create(&users).Error)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(cfg, dbase, redisCache, logger)
	return chat.NewChatService(appCtx), dbase
}

// openConversation resolves the 1<->2 thread for the tests.
func openConversation(t *testing.T, svc *chat.Service) uint64 {
	t.Helper()
	resp, err := svc.GetOrCreateConversation(context.Background(), &pb.GetOrCreateConversationRequest{
		UserId:      "1",
		OtherUserId: "2",
	})
	require.NoError(t, err)
	return resp.ConversationId
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

// TestGetOrCreateConversationDedup ensures (A,B) and (B,A) resolve to
// the same thread.
func TestGetOrCreateConversationDedup(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)

	first, err := svc.GetOrCreateConversation(ctx, &pb.GetOrCreateConversationRequest{
		UserId: "1", OtherUserId: "2",
	})
	require.NoError(t, err)

	second, err := svc.GetOrCreateConversation(ctx, &pb.GetOrCreateConversationRequest{
		UserId: "2", OtherUserId: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ConversationId, second.ConversationId)

	var count int64
	require.NoError(t, gdb.Model(&db.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestGetConversationByIDUnknown returns NotFound for a missing id.
func TestGetConversationByIDUnknown(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	_, err := svc.GetOrCreateConversation(ctx, &pb.GetOrCreateConversationRequest{
		UserId:         "1",
		ConversationId: 999,
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestSendMessageSelfRejected and empty content validation.
func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	convID := openConversation(t, svc)

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId: "1", ReceiverUserId: "1", ConversationId: convID, Content: "hi",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId: "1", ReceiverUserId: "2", ConversationId: convID, Content: "   ",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestUnreadAccounting sends N messages and checks the receiver's
// counter, then MarkRead resets it and flips every message.
func TestUnreadAccounting(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)
	convID := openConversation(t, svc)

	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
			SenderUserId:   "1",
			ReceiverUserId: "2",
			ConversationId: convID,
			Content:        fmt.Sprintf("hello %d", i),
		})
		require.NoError(t, err)
	}

	var conv db.Conversation
	require.NoError(t, gdb.First(&conv, convID).Error)
	assert.Equal(t, int64(3), conv.User2UnreadCount)
	assert.Equal(t, int64(0), conv.User1UnreadCount)
	require.NotNil(t, conv.LastMessageTime)

	resp, err := svc.MarkRead(ctx, &pb.MarkReadRequest{ConversationId: convID, ReaderUserId: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.UpdatedCount)

	require.NoError(t, gdb.First(&conv, convID).Error)
	assert.Equal(t, int64(0), conv.User2UnreadCount)

	var unread int64
	require.NoError(t, gdb.Model(&db.Message{}).
		Where("conversation_id = ? AND is_read = ?", convID, false).
		Count(&unread).Error)
	assert.Equal(t, int64(0), unread)

	// idempotent repeat
	resp, err = svc.MarkRead(ctx, &pb.MarkReadRequest{ConversationId: convID, ReaderUserId: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.UpdatedCount)
}

// TestPointExhaustion drains a balance of 10 with one highlighted
// message, then verifies the next send fails with no message row.
func TestPointExhaustion(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)
	convID := openConversation(t, svc)

	require.NoError(t, gdb.Create(&db.PointsAccount{UserID: 1, Balance: 10, LifetimeEarned: 10}).Error)

	resp, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "look at me",
		IsHighlighted:  true, // cost 10
	})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, int64(0), balanceOf(t, gdb, 1))

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "one more",
	})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var count int64
	require.NoError(t, gdb.Model(&db.Message{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// the failed send did not bump the receiver's counter either
	var conv db.Conversation
	require.NoError(t, gdb.First(&conv, convID).Error)
	assert.Equal(t, int64(1), conv.User2UnreadCount)
}

// TestSendMessageDedupToken replays a send with the same token and
// expects the original row back, charged once.
func TestSendMessageDedupToken(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)
	convID := openConversation(t, svc)

	token := "retry-abc"
	req := &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "hello",
		DedupToken:     &token,
	}

	first, err := svc.SendMessage(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := svc.SendMessage(ctx, req)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.MessageId, second.MessageId)

	var count int64
	require.NoError(t, gdb.Model(&db.Message{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// starter 100 - regular cost 1, charged exactly once
	assert.Equal(t, int64(99), balanceOf(t, gdb, 1))

	var conv db.Conversation
	require.NoError(t, gdb.First(&conv, convID).Error)
	assert.Equal(t, int64(1), conv.User2UnreadCount)
}

// TestSendMessagePremiumBypassesPoints verifies premium senders are not
// charged.
func TestSendMessagePremiumBypassesPoints(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)
	convID := openConversation(t, svc)

	require.NoError(t, gdb.Create(&db.PointsAccount{UserID: 1, Balance: 0}).Error)

	resp, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "free ride",
		IsHighlighted:  true,
		IsPremium:      true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, int64(0), balanceOf(t, gdb, 1))
}

// TestSendMessageNotifiesReceiver checks the message notification row,
// with elevated priority for highlighted sends.
func TestSendMessageNotifiesReceiver(t *testing.T) {
	ctx := context.Background()
	svc, gdb := setupService(t)
	convID := openConversation(t, svc)

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "plain",
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "shiny",
		IsHighlighted:  true,
	})
	require.NoError(t, err)

	var notifs []db.Notification
	require.NoError(t, gdb.Where("user_id = ? AND type = ?", 2, db.NotificationTypeMessage).
		Order("id ASC").Find(&notifs).Error)
	require.Len(t, notifs, 2)
	assert.Equal(t, db.PriorityMedium, notifs[0].Priority)
	assert.Equal(t, db.PriorityHigh, notifs[1].Priority)
}

// TestListMessagesInsertionOrder pages history and expects insertion
// order within the page.
func TestListMessagesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	convID := openConversation(t, svc)

	for i := 0; i < 4; i++ {
		_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
			SenderUserId:   "1",
			ReceiverUserId: "2",
			ConversationId: convID,
			Content:        fmt.Sprintf("m%d", i),
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListMessages(ctx, &pb.ListMessagesRequest{ConversationId: convID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 4)
	assert.Equal(t, "m0", resp.Messages[0].Content)
	assert.Equal(t, "m3", resp.Messages[3].Content)
	assert.Nil(t, resp.NextPaginationToken)
}

// TestListConversationsShowsOwnUnread lists threads with the caller's
// unread count.
func TestListConversationsShowsOwnUnread(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)
	convID := openConversation(t, svc)

	_, err := svc.SendMessage(ctx, &pb.SendMessageRequest{
		SenderUserId:   "1",
		ReceiverUserId: "2",
		ConversationId: convID,
		Content:        "ping",
	})
	require.NoError(t, err)

	receiver, err := svc.ListConversations(ctx, &pb.ListConversationsRequest{UserId: "2"})
	require.NoError(t, err)
	require.Len(t, receiver.Conversations, 1)
	assert.Equal(t, int64(1), receiver.Conversations[0].UnreadCount)
	assert.Equal(t, "1", receiver.Conversations[0].OtherUserId)

	sender, err := svc.ListConversations(ctx, &pb.ListConversationsRequest{UserId: "1"})
	require.NoError(t, err)
	require.Len(t, sender.Conversations, 1)
	assert.Equal(t, int64(0), sender.Conversations[0].UnreadCount)
}
