package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-app/velora-server/internal/db"
)

// InteractionRepository provides data access methods for like edges,
// matches and skip edges.
//
// Like edges are directional and append-only; a match row materializes
// the unordered pair once both directions exist. Skips are directional
// and deletable (undo).
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new repository bound to the given
// DB connection.
func NewInteractionRepository(database *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *InteractionRepository) WithTx(tx *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: tx}
}

// normalizePair orders an unordered user pair so that matches and
// conversations store each pair exactly once.
func normalizePair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

// CreateLike inserts the directional like edge actor -> target.
//
// Behavior:
//   - OnConflict DoNothing on the composite PK makes the insert
//     idempotent; the returned flag tells whether a new row was written.
//   - A false return with nil error is the repeat-like case: the caller
//     must not charge points again.
func (r *InteractionRepository) CreateLike(ctx context.Context, actorID, targetID uint64) (bool, error) {
	edge := db.LikeEdge{UserID: actorID, LikedUserID: targetID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasLiked checks whether actor has liked target.
// Used for the reciprocity lookup in the like flow.
func (r *InteractionRepository) HasLiked(ctx context.Context, actorID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.LikeEdge{}).
		Where("user_id = ? AND liked_user_id = ?", actorID, targetID).
		Count(&count).Error
	return count > 0, err
}

// CreateMatch materializes the unordered pair {a, b} as a match row.
//
// Behavior:
//   - The pair is stored normalized (user1_id < user2_id); the unique
//     index plus OnConflict DoNothing guarantee exactly one row per pair
//     even when both directions race into match creation.
//   - Returns the match row and whether this call created it.
func (r *InteractionRepository) CreateMatch(ctx context.Context, a, b uint64) (db.Match, bool, error) {
	u1, u2 := normalizePair(a, b)
	match := db.Match{User1ID: u1, User2ID: u2}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&match)
	if res.Error != nil {
		return db.Match{}, false, res.Error
	}
	if res.RowsAffected > 0 {
		return match, true, nil
	}

	// pair already matched; return the existing row
	var existing db.Match
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&existing).Error
	return existing, false, err
}

// GetMatch fetches the match row for the unordered pair {a, b}.
func (r *InteractionRepository) GetMatch(ctx context.Context, a, b uint64) (db.Match, error) {
	u1, u2 := normalizePair(a, b)
	var match db.Match
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&match).Error
	return match, err
}

// MatchEntry is one row of a user's match list, enriched with the other
// party's profile fields.
type MatchEntry struct {
	MatchID     uint64
	OtherUserID uint64
	Username    string
	Gender      string
	MatchedAt   time.Time
}

// ListMatches returns the user's matches, newest first, with the other
// user's profile joined in.
func (r *InteractionRepository) ListMatches(ctx context.Context, userID uint64, limit int) ([]MatchEntry, error) {
	var entries []MatchEntry
	err := r.db.WithContext(ctx).
		Table("user_matches m").
		Select(`m.id AS match_id,
			u.id AS other_user_id,
			u.username,
			u.gender,
			m.created_at AS matched_at`).
		Joins(`JOIN users u ON u.id = CASE WHEN m.user1_id = ? THEN m.user2_id ELSE m.user1_id END`, userID).
		Where("m.user1_id = ? OR m.user2_id = ?", userID, userID).
		Order("m.created_at DESC, m.id DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// CreateSkip inserts the directional skip edge actor -> target.
// Idempotent: repeating the skip is not an error.
func (r *InteractionRepository) CreateSkip(ctx context.Context, actorID, targetID uint64) (bool, error) {
	edge := db.SkipEdge{UserID: actorID, SkippedUserID: targetID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteSkip removes the directional skip edge actor -> target.
// Idempotent: deleting an absent edge is not an error.
func (r *InteractionRepository) DeleteSkip(ctx context.Context, actorID, targetID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND skipped_user_id = ?", actorID, targetID).
		Delete(&db.SkipEdge{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SkippedUser is one row of a user's skip list, enriched with the
// skipped user's profile fields.
type SkippedUser struct {
	UserID    uint64
	Username  string
	Gender    string
	SkippedAt time.Time
}

// ListSkips returns users the actor skipped, most recent first.
// Strictly directional: skipping A -> B never affects B's view of A.
func (r *InteractionRepository) ListSkips(ctx context.Context, actorID uint64, limit int) ([]SkippedUser, error) {
	var skipped []SkippedUser
	err := r.db.WithContext(ctx).
		Table("user_skips s").
		Select(`u.id AS user_id,
			u.username,
			u.gender,
			s.created_at AS skipped_at`).
		Joins("JOIN users u ON u.id = s.skipped_user_id").
		Where("s.user_id = ?", actorID).
		Order("s.created_at DESC, s.skipped_user_id DESC").
		Limit(limit).
		Scan(&skipped).Error
	return skipped, err
}
