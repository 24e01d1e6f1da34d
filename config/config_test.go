package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "inventory-management", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "inventory-management", cfg.JWTIssuer)
	// secrets never default to literals
	assert.Empty(t, cfg.JWTAccessSecret)
	assert.Empty(t, cfg.JWTRefreshSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "users_test")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("JWT_ACCESS_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "users_test", cfg.DBName)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.Equal(t, "s3cret", cfg.JWTAccessSecret)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")
	cfg := Load()
	assert.Equal(t, time.Hour, cfg.AccessTTL)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("DB_SSLMODE", "disable")

	cfg := Load()
	assert.Equal(t, "postgres://app:pw@db:5433/inventory?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	cfg := Load()
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}
