package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "MYSQL_DSN",
		"DB_POOL_SIZE", "DB_MAX_OVERFLOW", "JWT_SECRET", "JWT_EXPIRES_MINUTES", "REDIS_ADDR",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "task_user", cfg.Database.User)
	assert.Equal(t, "task_pass", cfg.Database.Password)
	assert.Equal(t, "task_manager", cfg.Database.Name)
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.PoolSize)
	assert.Equal(t, 20, cfg.Database.MaxOverflow)
	assert.Equal(t, 60*time.Minute, cfg.Auth.TokenTTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.UsesDefaultSecret())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_POOL_SIZE", "4")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_MINUTES", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 4, cfg.Database.PoolSize)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.UsesDefaultSecret())
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DB_POOL_SIZE", "")

	cfg := Load()

	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.PoolSize)
}
