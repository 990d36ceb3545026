package main

import (
	"context"

	"github.com/velora-app/velora-server/internal/app"
	"github.com/velora-app/velora-server/internal/cache"
	"github.com/velora-app/velora-server/internal/config"
	"github.com/velora-app/velora-server/internal/db"
	"github.com/velora-app/velora-server/internal/logger"
	"github.com/velora-app/velora-server/internal/server"
	"github.com/velora-app/velora-server/internal/service/chat"
	"github.com/velora-app/velora-server/internal/service/interaction"
	"github.com/velora-app/velora-server/internal/service/notification"
	"github.com/velora-app/velora-server/internal/service/points"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", logger.Err(err))
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", logger.Err(err))
		return
	}

	// Inject shared deps into app context
	appCtx := app.New(cfg, database, redisCache, log)

	registrars := []server.Registrar{
		points.NewRegistrar(appCtx),
		interaction.NewRegistrar(appCtx),
		chat.NewRegistrar(appCtx),
		notification.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", logger.Err(err))
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", logger.Err(err))
	}
}
