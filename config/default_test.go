package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/binpix/home")
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestReadConfigOverrides(t *testing.T) {
	in := bytes.NewReader([]byte(`
log_level = "debug"
[encode]
  square = true
  [encode.resize]
    enabled = true
    width = 128
    height = 64
    filter = "nearest"
`))
	cfg, err := ReadConfig(in)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Encode.Square)
	require.True(t, cfg.Encode.Resize.Enabled)
	require.Equal(t, 128, cfg.Encode.Resize.Width)
	require.Equal(t, 64, cfg.Encode.Resize.Height)
	require.Equal(t, "nearest", cfg.Encode.Resize.Filter)
}
