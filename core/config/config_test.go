package config_test

import (
	"testing"

	"blob-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)

	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "minioadmin", cfg.Storage.AccessKey)
	assert.Equal(t, "default", cfg.Storage.Project)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "mysql", cfg.Journal.Driver)
	assert.Equal(t, 3306, cfg.Journal.Port)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_ENDPOINT", "minio.internal:9000")
	t.Setenv("STORAGE_PROJECT", "analytics")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JOURNAL_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "minio.internal:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "analytics", cfg.Storage.Project)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}
