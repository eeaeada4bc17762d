package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "MOSB", cfg.Server.Site)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "mosb_portal", cfg.Database.Name)
	assert.Equal(t, "gate-exports", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Scan.Capacity)
	assert.Equal(t, 2000, cfg.Scan.AutoIntervalMs)
	assert.Equal(t, 100, cfg.History.MaxSize)
	assert.Equal(t, 0, cfg.Matching.CacheTTLSeconds)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SCAN_CAPACITY", "25")
	t.Setenv("HISTORY_MAX_SIZE", "10")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Scan.Capacity)
	assert.Equal(t, 10, cfg.History.MaxSize)
}
