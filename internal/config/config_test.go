package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Loads the config file the repo actually ships with, so a bad default can
// not slip through unnoticed.
func TestLoadConfigShippedDefaults(t *testing.T) {
	dir, err := filepath.Abs("../../configs")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	// expire_hours is a bare hour count multiplied into a duration; a
	// negative or zero lifetime would expire every token at issue time.
	assert.Equal(t, 72*time.Hour, cfg.JWT.ExpireTime)
	assert.Greater(t, cfg.JWT.ExpireTime, time.Duration(0))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Player.CheckpointSeconds)
	assert.InDelta(t, 0.9, cfg.Player.CompletionThreshold, 0.0001)
	assert.Equal(t, 1000, cfg.RateLimit.MaxRequests)
}
