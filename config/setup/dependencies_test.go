package setup

import (
	"carehub/cache"
	"carehub/config"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitCacheDefaultsToMemory(t *testing.T) {
	c, err := InitCache(context.Background(), &config.Config{}, testLogger())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.(*cache.MemoryCache)
	assert.True(t, ok)
}

func TestInitCacheUnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := InitCache(ctx, &config.Config{RedisAddr: "127.0.0.1:1"}, testLogger())
	assert.Error(t, err)
}

func TestInitAppAndShutdown(t *testing.T) {
	logger := testLogger()

	db, err := InitDatabase(filepath.Join(t.TempDir(), "nested", "app.db"), logger)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "setup-secret", JWTIssuer: "carehub", JWTTTL: time.Hour, AuthzStrict: true}
	application := InitApp(cfg, db, cache.NewMemoryCache(), logger)
	require.NotNil(t, application.Auth)
	require.NotNil(t, application.Access)

	fiberApp := NewFiberApp(cfg, logger)
	ApplyMiddleware(fiberApp, cfg, logger)
	RegisterRoutes(fiberApp, application)

	Shutdown(application, db, logger)
	assert.Error(t, db.Ping(), "database is closed after shutdown")
}
