package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/velora-app/velora-server/internal/cache"
	"github.com/velora-app/velora-server/internal/db"
)

// Dispatcher fans out domain events over Redis pub/sub after the
// backing rows have been committed. The row insert is the durable
// record ("at least stored"); publishing is best-effort and consumers
// deduplicate by row id.
type Dispatcher struct {
	cache  *cache.RedisCache
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given Redis cache.
func NewDispatcher(c *cache.RedisCache, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{cache: c, logger: logger}
}

// NotificationEvent is the payload pushed on a user's channel whenever
// a notification row is inserted for them.
type NotificationEvent struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	CreatedAt int64  `json:"created_at"`
}

// MessageEvent is the payload pushed on a conversation's channel for
// every stored message, in insertion order. Clients ignore the echo of
// their own just-sent message and deduplicate by id.
type MessageEvent struct {
	ID             uint64 `json:"id"`
	ConversationID uint64 `json:"conversation_id"`
	SenderID       uint64 `json:"sender_id"`
	ReceiverID     uint64 `json:"receiver_id"`
	Content        string `json:"content"`
	IsHighlighted  bool   `json:"is_highlighted"`
	CreatedAt      int64  `json:"created_at"`
}

// PublishNotification pushes the committed notification row to the
// recipient's channel and drops their cached unread count.
func (d *Dispatcher) PublishNotification(ctx context.Context, n db.Notification) {
	_ = d.cache.InvalidateUnreadNotificationCount(ctx, n.UserID)

	payload, err := json.Marshal(NotificationEvent{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Priority:  n.Priority,
		CreatedAt: n.CreatedAt.UnixMilli(),
	})
	if err != nil {
		d.logger.Warn("failed to encode notification event", "id", n.ID, "err", err)
		return
	}
	if err := d.cache.Publish(ctx, d.cache.ChannelForUser(n.UserID), payload); err != nil {
		d.logger.Warn("failed to publish notification event", "id", n.ID, "err", err)
	}
}

// PublishMessage pushes the committed message row to its conversation
// channel.
func (d *Dispatcher) PublishMessage(ctx context.Context, msg db.Message) {
	payload, err := json.Marshal(MessageEvent{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		Content:        msg.Content,
		IsHighlighted:  msg.IsHighlighted,
		CreatedAt:      msg.CreatedAt.UnixMilli(),
	})
	if err != nil {
		d.logger.Warn("failed to encode message event", "id", msg.ID, "err", err)
		return
	}
	if err := d.cache.Publish(ctx, d.cache.ChannelForConversation(msg.ConversationID), payload); err != nil {
		d.logger.Warn("failed to publish message event", "id", msg.ID, "err", err)
	}
}

// metadata builds the JSON metadata blob stored on a notification row.
func metadata(kv map[string]interface{}) string {
	b, err := json.Marshal(kv)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// NewMatchNotification builds the row sent to both parties when a
// reciprocal like promotes to a match.
func NewMatchNotification(userID, otherUserID, matchID uint64) db.Notification {
	return db.Notification{
		UserID:   userID,
		Type:     db.NotificationTypeMatch,
		Title:    "It's a match!",
		Message:  "You and your match both liked each other. Say hi!",
		Priority: db.PriorityHigh,
		Metadata: metadata(map[string]interface{}{
			"match_id":      matchID,
			"other_user_id": otherUserID,
		}),
	}
}

// NewLikeNotification builds the row sent to the target of a one-way like.
func NewLikeNotification(userID, actorID uint64) db.Notification {
	return db.Notification{
		UserID:   userID,
		Type:     db.NotificationTypeLike,
		Title:    "Someone likes you",
		Message:  "A new admirer liked your profile.",
		Priority: db.PriorityMedium,
		Metadata: metadata(map[string]interface{}{
			"actor_user_id": actorID,
		}),
	}
}

// NewMessageNotification builds the row sent to a message receiver.
// Highlighted messages get elevated priority.
func NewMessageNotification(userID, senderID, conversationID uint64, highlighted bool) db.Notification {
	priority := db.PriorityMedium
	title := "New message"
	if highlighted {
		priority = db.PriorityHigh
		title = "New highlighted message"
	}
	return db.Notification{
		UserID:   userID,
		Type:     db.NotificationTypeMessage,
		Title:    title,
		Message:  fmt.Sprintf("You have a new message in conversation %d.", conversationID),
		Priority: priority,
		Metadata: metadata(map[string]interface{}{
			"sender_user_id":  senderID,
			"conversation_id": conversationID,
		}),
	}
}
