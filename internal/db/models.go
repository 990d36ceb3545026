package db

import (
	"time"
)

// User table
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	Gender       string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// PointsAccount holds a user's consumable point balance.
//
// Balance is only ever mutated through conditional UPDATE statements
// (balance = balance +/- ?), never via read-then-write, so the
// balance >= 0 invariant holds under concurrent consumers.
// Accounts are created lazily on first access with a starter balance.
type PointsAccount struct {
	UserID         uint64    `gorm:"primaryKey"`
	Balance        int64     `gorm:"not null;default:0"`
	LifetimeEarned int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (PointsAccount) TableName() string { return "points_accounts" }

// Transaction type tags recorded on the point ledger.
const (
	TxTypeStarter    = "starter"
	TxTypeLike       = "like"
	TxTypeMessage    = "message"
	TxTypeMatchBonus = "match_bonus"
	TxTypeRefund     = "refund"
	TxTypePurchase   = "purchase"
)

// PointTransaction is one immutable, append-only ledger entry.
// Amount is signed: negative for consumption, positive for credits.
type PointTransaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index:idx_tx_user_created,priority:1"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"column:transaction_type;size:32;not null"`
	ReferenceID string    `gorm:"size:64"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_tx_user_created,priority:2,sort:desc"`
}

func (PointTransaction) TableName() string { return "point_transactions" }

// LikeEdge is a directional like from one user toward another.
//
// Composite PK: (UserID, LikedUserID)
//   - Ensures a single row per direction (idempotent insert).
//
// Rows are never updated; the only delete path is the rollback of a
// like whose point charge failed.
type LikeEdge struct {
	UserID      uint64    `gorm:"primaryKey"`
	LikedUserID uint64    `gorm:"primaryKey;index:idx_liked_user"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (LikeEdge) TableName() string { return "user_likes" }

// Match is the symmetric state formed once both directions of a like
// exist. The pair is stored normalized (User1ID < User2ID) and a unique
// index guarantees exactly one row per unordered pair.
type Match struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	User1ID   uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:1"`
	User2ID   uint64    `gorm:"not null;uniqueIndex:idx_match_pair,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Match) TableName() string { return "user_matches" }

// SkipEdge is a directional exclusion used to filter candidate feeds.
// Deletable (undo), idempotent in both directions.
type SkipEdge struct {
	UserID        uint64    `gorm:"primaryKey"`
	SkippedUserID uint64    `gorm:"primaryKey"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_skip_user_created,sort:desc"`
}

func (SkipEdge) TableName() string { return "user_skips" }

// Conversation is the message-thread container for one unordered user
// pair. The pair is stored normalized like user_matches. The two unread
// counters are the contended columns; they are only mutated through
// atomic increments and resets at the store.
type Conversation struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	User1ID          uint64 `gorm:"not null;uniqueIndex:idx_conv_pair,priority:1"`
	User2ID          uint64 `gorm:"not null;uniqueIndex:idx_conv_pair,priority:2"`
	LastMessageTime  *time.Time
	IsActive         bool      `gorm:"not null;default:true"`
	User1UnreadCount int64     `gorm:"not null;default:0"`
	User2UnreadCount int64     `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string { return "conversations" }

// Message rows are append-only; only IsRead flips after insert.
// DedupToken is supplied by the client so that a retried send maps onto
// the original row instead of double-sending.
type Message struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	ConversationID uint64    `gorm:"not null;index:idx_msg_conv_created,priority:1;uniqueIndex:idx_msg_conv_dedup,priority:1"`
	SenderID       uint64    `gorm:"not null"`
	ReceiverID     uint64    `gorm:"not null"`
	Content        string    `gorm:"type:text;not null"`
	IsHighlighted  bool      `gorm:"not null;default:false"`
	IsRead         bool      `gorm:"not null;default:false"`
	DedupToken     string    `gorm:"size:64;not null;uniqueIndex:idx_msg_conv_dedup,priority:2"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_msg_conv_created,priority:2"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Message) TableName() string { return "messages" }

// Notification types and priorities.
const (
	NotificationTypeMatch   = "match"
	NotificationTypeLike    = "like"
	NotificationTypeMessage = "message"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Notification is an append-only fan-out row consumed by the
// presentation layer. Metadata carries a JSON payload (match id,
// conversation id, ...) for deep links.
type Notification struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index:idx_notif_user_created,priority:1"`
	Type      string    `gorm:"size:32;not null"`
	Title     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text"`
	Priority  string    `gorm:"size:16;not null;default:medium"`
	IsRead    bool      `gorm:"not null;default:false"`
	Metadata  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notif_user_created,priority:2,sort:desc"`
}

func (Notification) TableName() string { return "notifications" }
