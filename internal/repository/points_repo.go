package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-app/velora-server/internal/db"
	svcErr "github.com/velora-app/velora-server/internal/errors"
	"github.com/velora-app/velora-server/internal/utils/pagination"
)

// PointsRepository provides data access methods for the points ledger:
// the per-user PointsAccount row and the append-only PointTransaction log.
//
// Balance is only ever touched through store-side arithmetic
// (balance = balance +/- ?), guarded by a balance >= amount predicate on
// the consume path. Concurrent consumers can therefore never overdraw.
type PointsRepository struct {
	db             *gorm.DB
	starterBalance int64
}

// NewPointsRepository creates a new repository bound to the given DB
// connection. starterBalance is credited when an account is created
// lazily on first access.
func NewPointsRepository(database *gorm.DB, starterBalance int64) *PointsRepository {
	return &PointsRepository{db: database, starterBalance: starterBalance}
}

// WithTx returns a copy of the repository bound to the given transaction.
// Used to run ledger mutations inside a caller-owned gorm transaction.
func (r *PointsRepository) WithTx(tx *gorm.DB) *PointsRepository {
	return &PointsRepository{db: tx, starterBalance: r.starterBalance}
}

// NeedsPointConsumption reports whether an action must be paid for.
// Premium accounts bypass all point costs.
func NeedsPointConsumption(isPremium bool) bool {
	return !isPremium
}

// GetOrCreateAccount returns the user's points account, creating it with
// the starter balance (plus a "starter" ledger entry) if absent.
//
// The insert uses OnConflict DoNothing so two concurrent first accesses
// cannot double-credit the starter balance.
func (r *PointsRepository) GetOrCreateAccount(ctx context.Context, userID uint64) (db.PointsAccount, error) {
	var account db.PointsAccount

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&account).Error
	if err == nil {
		return account, nil
	}
	if err != gorm.ErrRecordNotFound {
		return db.PointsAccount{}, err
	}

	account = db.PointsAccount{
		UserID:         userID,
		Balance:        r.starterBalance,
		LifetimeEarned: r.starterBalance,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&account)
	if res.Error != nil {
		return db.PointsAccount{}, res.Error
	}

	if res.RowsAffected > 0 && r.starterBalance > 0 {
		entry := db.PointTransaction{
			UserID:      userID,
			Amount:      r.starterBalance,
			Type:        db.TxTypeStarter,
			Description: "starter balance",
		}
		if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return db.PointsAccount{}, err
		}
		return account, nil
	}

	// lost the race: someone else created it, re-read the winner's row
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
			return db.PointsAccount{}, err
		}
	}
	return account, nil
}

// HasEnoughPoints reports whether the user can afford amount.
// amount <= 0 is trivially satisfied. Creates the account lazily so a
// brand-new user is judged against the starter balance.
func (r *PointsRepository) HasEnoughPoints(ctx context.Context, userID uint64, amount int64) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	account, err := r.GetOrCreateAccount(ctx, userID)
	if err != nil {
		return false, err
	}
	return account.Balance >= amount, nil
}

// Consume atomically decrements the balance by amount iff
// balance >= amount, then appends a negative ledger entry.
//
// Behavior:
//   - amount must be > 0.
//   - The decrement is a single conditional UPDATE; RowsAffected == 0
//     means the guard did not hold and an InsufficientPointsError is
//     returned with the current deficit. Nothing is written in that case.
//   - Run inside a caller transaction (WithTx) when the consumption must
//     commit or roll back together with a domain write.
func (r *PointsRepository) Consume(ctx context.Context, userID uint64, amount int64, txType, referenceID string) error {
	if amount <= 0 {
		return svcErr.ErrInvalidAmount
	}

	account, err := r.GetOrCreateAccount(ctx, userID)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&db.PointsAccount{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return svcErr.InsufficientPoints(amount, account.Balance)
	}

	entry := db.PointTransaction{
		UserID:      userID,
		Amount:      -amount,
		Type:        txType,
		ReferenceID: referenceID,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

// Add atomically increments the balance (and lifetime_earned) and
// appends a positive ledger entry. Never gated; always succeeds barring
// storage failure.
func (r *PointsRepository) Add(ctx context.Context, userID uint64, amount int64, txType, referenceID, description string) error {
	if amount <= 0 {
		return svcErr.ErrInvalidAmount
	}

	if _, err := r.GetOrCreateAccount(ctx, userID); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&db.PointsAccount{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", amount),
			"lifetime_earned": gorm.Expr("lifetime_earned + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}

	entry := db.PointTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		ReferenceID: referenceID,
		Description: description,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

// ListTransactions returns the user's ledger entries, newest first, with
// cursor-based pagination.
func (r *PointsRepository) ListTransactions(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.PointTransaction, *string, error) {
	var entries []db.PointTransaction

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if cursor.LastID > 0 && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND id < ?))",
			ts, ts, cursor.LastID,
		)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(entries) > limit {
		last := entries[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			LastID:      last.ID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		entries = entries[:limit]
	}

	return entries, nextToken, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
