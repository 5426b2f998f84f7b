package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesselwatch/aisdecode/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.DecodeMessage)
	assert.Equal(t, 8, cfg.MaxPendingFragments)
	assert.Equal(t, logger.Info, cfg.LoggerLevel())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nmax_pending_fragments: 16\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, logger.Debug, cfg.LoggerLevel())
	assert.Equal(t, 16, cfg.MaxPendingFragments)
	assert.True(t, cfg.DecodeMessage) // untouched field keeps its default
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_pending_fragments: 16\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	resolve := Flags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path, "--max-pending-fragments", "32"}))

	cfg, err := resolve()
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.MaxPendingFragments)
}
