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

func TestGetOrCreateConversationPairDedup(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewChatRepository(dbase)

	conv1, created, err := repo.GetOrCreateConversation(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint64(1), conv1.User1ID)
	assert.Equal(t, uint64(2), conv1.User2ID)

	// reversed order resolves to the same thread
	conv2, created, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv1.ID, conv2.ID)

	var count int64
	require.NoError(t, dbase.Model(&db.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateMessageDedupToken(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewChatRepository(dbase)

	conv, _, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)

	msg := db.Message{
		ConversationID: conv.ID,
		SenderID:       1,
		ReceiverID:     2,
		Content:        "hello",
		DedupToken:     "tok-1",
	}
	created, err := repo.CreateMessage(ctx, &msg)
	require.NoError(t, err)
	assert.True(t, created)
	firstID := msg.ID

	// replay with the same token returns the stored row
	replay := db.Message{
		ConversationID: conv.ID,
		SenderID:       1,
		ReceiverID:     2,
		Content:        "hello",
		DedupToken:     "tok-1",
	}
	created, err = repo.CreateMessage(ctx, &replay)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, replay.ID)

	var count int64
	require.NoError(t, dbase.Model(&db.Message{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordIncomingMessageBumpsUnread(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewChatRepository(setupTestDB(t))

	conv, _, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)

	sentAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.RecordIncomingMessage(ctx, conv, 2, sentAt))
	require.NoError(t, repo.RecordIncomingMessage(ctx, conv, 2, sentAt))

	conv, err = repo.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), conv.User1UnreadCount)
	assert.Equal(t, int64(2), conv.User2UnreadCount)
	require.NotNil(t, conv.LastMessageTime)
}

func TestMarkMessagesReadIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewChatRepository(dbase)

	conv, _, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)

	for _, token := range []string{"a", "b", "c"} {
		msg := db.Message{
			ConversationID: conv.ID,
			SenderID:       1,
			ReceiverID:     2,
			Content:        "msg",
			DedupToken:     token,
		}
		_, err := repo.CreateMessage(ctx, &msg)
		require.NoError(t, err)
		require.NoError(t, repo.RecordIncomingMessage(ctx, conv, 2, time.Now()))
	}

	flipped, err := repo.MarkMessagesRead(ctx, conv, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)

	conv, err = repo.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), conv.User2UnreadCount)

	var unread int64
	require.NoError(t, dbase.Model(&db.Message{}).
		Where("receiver_id = ? AND is_read = ?", 2, false).
		Count(&unread).Error)
	assert.Equal(t, int64(0), unread)

	// second call is a no-op
	flipped, err = repo.MarkMessagesRead(ctx, conv, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), flipped)
}

func TestListMessagesPagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewChatRepository(setupTestDB(t))

	conv, _, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)

	tokens := []string{"t1", "t2", "t3", "t4", "t5"}
	for _, token := range tokens {
		msg := db.Message{
			ConversationID: conv.ID,
			SenderID:       1,
			ReceiverID:     2,
			Content:        token,
			DedupToken:     token,
		}
		_, err := repo.CreateMessage(ctx, &msg)
		require.NoError(t, err)
	}

	page1, next, err := repo.ListMessages(ctx, conv.ID, nil, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.NotNil(t, next)
	assert.Equal(t, "t5", page1[0].Content)

	page2, next2, err := repo.ListMessages(ctx, conv.ID, next, 3)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Nil(t, next2)
	assert.Equal(t, "t1", page2[1].Content)
}

func TestListConversationsOrdersByActivity(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewChatRepository(setupTestDB(t))

	convA, _, err := repo.GetOrCreateConversation(ctx, 1, 2)
	require.NoError(t, err)
	convB, _, err := repo.GetOrCreateConversation(ctx, 1, 3)
	require.NoError(t, err)

	require.NoError(t, repo.RecordIncomingMessage(ctx, convA, 2, time.Now().Add(-time.Hour)))
	require.NoError(t, repo.RecordIncomingMessage(ctx, convB, 3, time.Now()))

	convs, err := repo.ListConversations(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, convB.ID, convs[0].ID)
	assert.Equal(t, convA.ID, convs[1].ID)
}
