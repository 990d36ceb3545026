package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-app/velora-server/internal/db"
	"github.com/velora-app/velora-server/internal/utils/pagination"
)

// ChatRepository provides data access methods for conversations and
// messages.
//
// Conversations store their unordered pair normalized (user1_id <
// user2_id) under a unique index, so (A,B) and (B,A) resolve to the
// same thread. The two unread counters are only mutated through atomic
// store-side arithmetic.
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new repository bound to the given DB
// connection.
func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{db: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ChatRepository) WithTx(tx *gorm.DB) *ChatRepository {
	return &ChatRepository{db: tx}
}

// GetConversation fetches a conversation by id.
func (r *ChatRepository) GetConversation(ctx context.Context, conversationID uint64) (db.Conversation, error) {
	var conv db.Conversation
	err := r.db.WithContext(ctx).First(&conv, conversationID).Error
	return conv, err
}

// GetOrCreateConversation resolves the unique conversation for the
// unordered pair {a, b}, creating it with both unread counters at zero
// if absent.
//
// The lookup matches the exact pair in either order; the normalized
// unique index plus OnConflict DoNothing keep concurrent creates from
// producing duplicate threads.
func (r *ChatRepository) GetOrCreateConversation(ctx context.Context, a, b uint64) (db.Conversation, bool, error) {
	var conv db.Conversation

	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", a, b, b, a).
		First(&conv).Error
	if err == nil {
		return conv, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return db.Conversation{}, false, err
	}

	u1, u2 := normalizePair(a, b)
	conv = db.Conversation{User1ID: u1, User2ID: u2, IsActive: true}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&conv)
	if res.Error != nil {
		return db.Conversation{}, false, res.Error
	}
	if res.RowsAffected > 0 {
		return conv, true, nil
	}

	// lost the creation race; the other side's row is authoritative
	err = r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&conv).Error
	return conv, false, err
}

// UnreadCountFor returns the unread counter belonging to userID.
func UnreadCountFor(conv db.Conversation, userID uint64) int64 {
	if conv.User1ID == userID {
		return conv.User1UnreadCount
	}
	return conv.User2UnreadCount
}

// unreadColumnFor maps a participant to their unread counter column.
func unreadColumnFor(conv db.Conversation, userID uint64) string {
	if conv.User1ID == userID {
		return "user1_unread_count"
	}
	return "user2_unread_count"
}

// IsParticipant reports whether userID belongs to the conversation.
func IsParticipant(conv db.Conversation, userID uint64) bool {
	return conv.User1ID == userID || conv.User2ID == userID
}

// ResetUnread zeroes the given participant's unread counter. Idempotent.
func (r *ChatRepository) ResetUnread(ctx context.Context, conv db.Conversation, userID uint64) error {
	return r.db.WithContext(ctx).
		Model(&db.Conversation{}).
		Where("id = ?", conv.ID).
		Update(unreadColumnFor(conv, userID), 0).Error
}

// CreateMessage inserts a message row.
//
// Behavior:
//   - The (conversation_id, dedup_token) unique index plus OnConflict
//     DoNothing absorbs client retries: a replayed send returns the
//     original row with created=false, and the caller must not charge
//     points or bump counters again.
func (r *ChatRepository) CreateMessage(ctx context.Context, msg *db.Message) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(msg)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// replayed send: surface the already-stored row
	var existing db.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND dedup_token = ?", msg.ConversationID, msg.DedupToken).
		First(&existing).Error
	if err != nil {
		return false, err
	}
	*msg = existing
	return false, nil
}

// RecordIncomingMessage updates the conversation for a freshly inserted
// message: stamps last_message_time and atomically increments the
// receiver's unread counter in one UPDATE.
func (r *ChatRepository) RecordIncomingMessage(ctx context.Context, conv db.Conversation, receiverID uint64, sentAt time.Time) error {
	col := unreadColumnFor(conv, receiverID)
	return r.db.WithContext(ctx).
		Model(&db.Conversation{}).
		Where("id = ?", conv.ID).
		Updates(map[string]interface{}{
			"last_message_time": sentAt,
			col:                 gorm.Expr(col+" + ?", 1),
		}).Error
}

// MarkMessagesRead flips is_read on all of the reader's unread messages
// in the conversation and zeroes the reader's unread counter.
// Idempotent; returns how many messages were flipped.
func (r *ChatRepository) MarkMessagesRead(ctx context.Context, conv db.Conversation, readerID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conv.ID, readerID, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	if err := r.ResetUnread(ctx, conv, readerID); err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// ListMessages returns one page of a conversation's messages, newest
// first, with cursor-based pagination. Callers reverse the page to get
// insertion order for display.
func (r *ChatRepository) ListMessages(
	ctx context.Context,
	conversationID uint64,
	paginationToken *string,
	limit int,
) ([]db.Message, *string, error) {
	var messages []db.Message

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if cursor.LastID > 0 && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND id < ?))",
			ts, ts, cursor.LastID,
		)
	}

	if err := query.Find(&messages).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(messages) > limit {
		last := messages[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			LastID:      last.ID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		messages = messages[:limit]
	}

	return messages, nextToken, nil
}

// ListConversations returns the user's active conversations, most
// recently active first.
func (r *ChatRepository) ListConversations(ctx context.Context, userID uint64, limit int) ([]db.Conversation, error) {
	var convs []db.Conversation
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND is_active = ?", userID, userID, true).
		Order("last_message_time DESC").
		Limit(limit).
		Find(&convs).Error
	return convs, err
}
