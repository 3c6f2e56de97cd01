package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$notarealhashbutnonempty0000000000000000000000000000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 1000, cfg.Auth.MaxSessions)
	assert.False(t, cfg.Auth.SecureCookies)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_HashesPlaintextPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "admin123")

	cfg, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Auth.AdminPasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cfg.Auth.AdminPasswordHash), []byte("admin123")))
}

func TestLoad_MissingCredentials(t *testing.T) {
	// Neither ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD set.
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionSecureCookies(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "x")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.SecureCookies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "x")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("MAX_SESSIONS", "25")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 25, cfg.Auth.MaxSessions)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "x")
	t.Setenv("SESSION_TTL", "tomorrow")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
}
