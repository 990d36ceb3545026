package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTestData resets the database and populates it with demo users,
// point accounts and interactions.
//
// Behavior:
//  1. Clears all domain tables.
//  2. Creates 20 users (10 male, 10 female) with hashed passwords and a
//     funded points account each.
//  3. Generates ~100 like edges with ~70% like probability and a mutual
//     like (plus match row and notifications) for every 3rd pair.
//  4. Opens a conversation with a greeting message for a few matches.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	tables := []string{
		"messages", "conversations", "notifications",
		"user_matches", "user_likes", "user_skips",
		"point_transactions", "points_accounts", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range tables {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		for _, table := range tables {
			db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table)
		}
	}

	log.Println("Cleared existing data")

	// --- Seed Users (10 male, 10 female) with funded accounts ---
	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		gender := "male"
		if i > 10 {
			gender = "female"
		}

		user := User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Gender:       gender,
			Active:       true,
			LastLoginAt:  time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		account := PointsAccount{UserID: user.ID, Balance: 100, LifetimeEarned: 100}
		if err := db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}
		entry := PointTransaction{UserID: user.ID, Amount: 100, Type: TxTypeStarter, Description: "starter balance"}
		if err := db.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed starter transaction: %w", err)
		}
	}
	log.Println("Seeded 20 users with funded accounts.")

	// --- Seed likes, with a guaranteed mutual pair every 3rd edge ---
	counter := 0
	for actorID := uint64(1); actorID <= 20; actorID++ {
		for j := 0; j < 6; j++ {
			targetID := uint64(r.Intn(20) + 1)
			if actorID == targetID {
				continue
			}

			var actor, target User
			if err := db.First(&actor, actorID).Error; err != nil {
				continue
			}
			if err := db.First(&target, targetID).Error; err != nil {
				continue
			}
			if actor.Gender == target.Gender {
				continue
			}

			// like probability 70%
			if r.Intn(100) >= 70 && counter%3 != 0 {
				continue
			}

			if err := seedLike(db, actorID, targetID); err != nil {
				return err
			}

			// guarantee mutual likes every 3rd pair
			if counter%3 == 0 {
				if err := seedLike(db, targetID, actorID); err != nil {
					return err
				}
				if err := seedMatch(db, actorID, targetID); err != nil {
					return err
				}
			}
			counter++
		}
	}
	log.Printf("Seeded %d like edges.", counter)

	return nil
}

func seedLike(db *gorm.DB, actorID, targetID uint64) error {
	edge := LikeEdge{UserID: actorID, LikedUserID: targetID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
		return fmt.Errorf("failed to seed like: %w", err)
	}
	return nil
}

func seedMatch(db *gorm.DB, a, b uint64) error {
	u1, u2 := a, b
	if u2 < u1 {
		u1, u2 = u2, u1
	}
	match := Match{User1ID: u1, User2ID: u2}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&match)
	if res.Error != nil {
		return fmt.Errorf("failed to seed match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil
	}

	for _, userID := range []uint64{u1, u2} {
		n := Notification{
			UserID:   userID,
			Type:     NotificationTypeMatch,
			Title:    "It's a match!",
			Message:  "You and your match both liked each other. Say hi!",
			Priority: PriorityHigh,
			Metadata: fmt.Sprintf(`{"match_id":%d}`, match.ID),
		}
		if err := db.Create(&n).Error; err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}

	conv := Conversation{User1ID: u1, User2ID: u2, IsActive: true}
	res = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&conv)
	if res.Error != nil {
		return fmt.Errorf("failed to seed conversation: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		now := time.Now()
		msg := Message{
			ConversationID: conv.ID,
			SenderID:       u1,
			ReceiverID:     u2,
			Content:        "Hey, we matched!",
			DedupToken:     fmt.Sprintf("seed-%d", conv.ID),
		}
		if err := db.Create(&msg).Error; err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
		if err := db.Model(&Conversation{}).Where("id = ?", conv.ID).
			Updates(map[string]interface{}{
				"last_message_time":  now,
				"user2_unread_count": gorm.Expr("user2_unread_count + 1"),
			}).Error; err != nil {
			return fmt.Errorf("failed to touch conversation: %w", err)
		}
	}
	return nil
}
