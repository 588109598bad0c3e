package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, "banners", cfg.Storage.Bucket)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.False(t, cfg.AllowSignUp)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, "pt-BR", cfg.DefaultLocale)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("ALLOW_SIGNUP", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STORAGE_BUCKET", "images")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://cdn.example/public")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.AllowSignUp)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "images", cfg.Storage.Bucket)
	assert.Equal(t, "https://cdn.example/public", cfg.Storage.PublicBaseURL)
}

func TestRequireSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.RequireSecret(), ErrWeakSecret, "unset secret")

	cfg.JWTSecret = "change-me"
	assert.ErrorIs(t, cfg.RequireSecret(), ErrWeakSecret)

	cfg.JWTSecret = "short-but-private"
	assert.ErrorIs(t, cfg.RequireSecret(), ErrWeakSecret)

	cfg.JWTSecret = "9f0c2b7e4d1a86c35e2f7b90a4d6c1e8"
	assert.NoError(t, cfg.RequireSecret())
}

func TestFromEnv_InvalidNumber(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}
