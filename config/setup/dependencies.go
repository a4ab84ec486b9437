package setup

import (
	"carehub/app"
	"carehub/cache"
	"carehub/config"
	"carehub/database"
	"context"
	"log/slog"
	"time"
)

const (
	revocationCleanupInterval = time.Hour
	cacheCleanupInterval      = 5 * time.Minute
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitCache connects to Redis when REDIS_ADDR is set and uses an in-process cache otherwise
func InitCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		mc := cache.NewMemoryCache()
		mc.StartCleanupRoutine(cacheCleanupInterval)
		logger.Info("using in-memory cache", "cleanup_interval", cacheCleanupInterval)
		return mc, nil
	}

	rc, err := cache.NewRedis(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   "carehub:",
	})
	if err != nil {
		return nil, err
	}

	logger.Info("redis cache connected", "addr", cfg.RedisAddr)
	return rc, nil
}

// InitApp initializes the application with all dependencies
func InitApp(cfg *config.Config, db *database.DB, c cache.Cache, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(cfg, repo, c, logger)

	application.Revoked.StartCleanupRoutine(revocationCleanupInterval)
	logger.Info("token revocation cleanup started", "interval", revocationCleanupInterval)

	if application.Config.GoogleClientID == "" {
		logger.Info("sign-in with Google disabled")
	}
	if !application.Config.AuthzStrict {
		logger.Warn("route authorization is lenient, unmatched routes are allowed")
	}

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil {
		application.Revoked.Stop()
		logger.Info("token revocation cleanup stopped")

		if err := application.Cache.Close(); err != nil {
			logger.Error("failed to close cache", "error", err)
		}
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
