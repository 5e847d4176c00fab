package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults follow the capture constraints", func(t *testing.T) {
		t.Setenv("CAPTURE_WIDTH", "")
		t.Setenv("CAPTURE_HEIGHT", "")
		t.Setenv("CAPTURE_JPEG_QUALITY", "")

		cfg := NewInternalConfig()
		assert.Equal(t, 1280, cfg.Capture.Width, "Default capture width should be 1280")
		assert.Equal(t, 720, cfg.Capture.Height, "Default capture height should be 720")
		assert.Equal(t, 80, cfg.Capture.JPEGQuality, "Default JPEG quality should be 80")
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("PORTAL_BASE_URL", "http://portal.test")
		t.Setenv("WIZARD_MAX_SESSIONS", "5")
		t.Setenv("APP_MINIO_ENABLED", "true")

		cfg := NewInternalConfig()
		assert.Equal(t, "http://portal.test", cfg.Portal.BaseUrl)
		assert.Equal(t, 5, cfg.Wizard.MaxSessions)
		assert.True(t, cfg.Minio.Enabled)
	})

	t.Run("Malformed numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("PORTAL_REQUEST_TIMEOUT_IN_SECONDS", "soon")

		cfg := NewInternalConfig()
		assert.Equal(t, 30, cfg.Portal.RequestTimeoutInSeconds)
	})
}

func TestBootstrapShutdownWithoutDrivers(t *testing.T) {
	stopped := false
	b := &Bootstrap{RegistryStop: func() { stopped = true }}

	err := b.Shutdown(context.Background())
	assert.NoError(t, err)
	assert.True(t, stopped, "Registry should be stopped on shutdown")
}
