package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiration)
	assert.Contains(t, cfg.Auth.PublicPaths, "/login")
	assert.Contains(t, cfg.Auth.PublicPaths, "/health")
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HD_SERVER_PORT", "9090")
	t.Setenv("HD_DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "helpdesk", cfg.Tracing.ServiceName)
	assert.Equal(t, 120, cfg.Features.RequestsPerMinute)
}
