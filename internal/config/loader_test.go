package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facebook/libfbjs/internal/config"
)

func TestLoad_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte(""), 0o600))

	cfg, err := config.Load(emptyPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.False(t, cfg.Render.Pretty)
	assert.False(t, cfg.Render.KeepLines)
	assert.True(t, cfg.Reduce.Enabled)
}

func TestLoad_ValidFile_Unmarshals(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".fbjs.yaml")
	content := `render:
  pretty: true
  keep_lines: true
reduce:
  enabled: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Render.Pretty)
	assert.True(t, cfg.Render.KeepLines)
	assert.False(t, cfg.Reduce.Enabled)
}

func TestLoad_PartialConfig_MergesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".fbjs.yaml")
	content := `render:
  pretty: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.True(t, cfg.Render.Pretty)
	assert.False(t, cfg.Render.KeepLines)
	assert.True(t, cfg.Reduce.Enabled)
}

func TestLoad_MalformedYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	content := `render: [invalid yaml
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.Load(cfgPath)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_UnknownKeys_NoError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".fbjs.yaml")
	content := `unknown_section:
  unknown_key: "value"
render:
  pretty: true
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.True(t, cfg.Render.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte(""), 0o600))

	t.Setenv("FBJS_RENDER_PRETTY", "true")

	cfg, err := config.Load(emptyPath)
	require.NoError(t, err)
	assert.True(t, cfg.Render.Pretty)
}

func TestLoad_ExplicitPath_NotFound_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".fbjs.yaml")

	require.NoError(t, config.WriteDefault(cfgPath))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestWriteDefault_ExistingFile_ReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".fbjs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("render: {}\n"), 0o600))

	require.Error(t, config.WriteDefault(cfgPath))
}
