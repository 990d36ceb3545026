package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/cache"
	"github.com/velora-app/velora-server/internal/config"
)

// AppContext holds shared dependencies (DB, Redis, Logger, Config)
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Cfg        *config.Config
}

// New creates a new AppContext
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Cfg:        cfg,
	}
}
