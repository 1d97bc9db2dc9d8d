package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "")
	t.Setenv("TOKEN_PURGE_INTERVAL", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, 15*time.Minute, cfg.Cron.TokenPurgeInterval)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/att?sslmode=disable")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TOKEN_PURGE_INTERVAL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "postgres://u:p@db:5432/att?sslmode=disable", cfg.DatabaseURL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.Cron.TokenPurgeInterval)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "")

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET_KEY")
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "jwt-secret")
		t.Setenv("APP_PORT", "eighty")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_PORT")
	})

	t.Run("bad expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "jwt-secret")
		t.Setenv("APP_PORT", "")
		t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "forever")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_ACCESS_EXPIRATION_TIME")
	})
}

func TestDatabaseURL_FromParts(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 5432, User: "postgres", Password: "pw", Name: "attendance", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://postgres:pw@localhost:5432/attendance?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.App.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
