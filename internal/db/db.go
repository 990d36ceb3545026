package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velora-app/velora-server/internal/config"
)

// NewDB initializes the database connection using DSN from config.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DB.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// AutoMigrate ensures schema is in sync with models. Services assume
	// the collections exist and never probe for them at call time.
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// Migrate applies the full schema. Shared by the server startup and the
// sqlite-backed test setups.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&PointsAccount{},
		&PointTransaction{},
		&LikeEdge{},
		&Match{},
		&SkipEdge{},
		&Conversation{},
		&Message{},
		&Notification{},
	)
}
