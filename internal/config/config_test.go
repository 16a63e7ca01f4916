package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOTIFY_TIMEOUT", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 30*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.False(t, cfg.TrustProxy)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_BUNDLE", "com.example.app")
	t.Setenv("NOTIFY_TIMEOUT", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test,https://b.test")
	t.Setenv("PREVIEW_SEED", "false")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "com.example.app", cfg.AppBundle)
	assert.Equal(t, 5*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
	assert.False(t, cfg.PreviewSeed)
	assert.True(t, cfg.TrustProxy)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("X_DUR", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getEnvDuration("X_DUR", time.Second))

	t.Setenv("X_DUR", "garbage")
	assert.Equal(t, time.Second, getEnvDuration("X_DUR", time.Second))
}
