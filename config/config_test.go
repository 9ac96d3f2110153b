package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.EqualValues(t, 1000000, cfg.Execution.MaxSteps)
	assert.True(t, cfg.Execution.TrapOnUnknownLabel)
	assert.EqualValues(t, 0, cfg.Memory.StartAddress)
	assert.EqualValues(t, 65536, cfg.Memory.SizeBytes)
	assert.Equal(t, 16, cfg.Display.BytesPerLine)
	assert.Equal(t, "hex", cfg.Display.NumberFormat)
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveTo_LoadFrom_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := config.DefaultConfig()
	cfg.Execution.MaxSteps = 42
	cfg.Execution.TrapOnUnknownLabel = false
	cfg.Memory.StartAddress = 0x1000
	cfg.Memory.SizeBytes = 4096
	cfg.Display.BytesPerLine = 8
	cfg.Display.NumberFormat = "dec"

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFrom_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("execution = [this is not valid toml"), 0600))

	_, err := config.LoadFrom(path)
	assert.Error(t, err)
}
