package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "ts", cfg.Defaults.Language)
	assert.Equal(t, "", cfg.Defaults.PackageManager)
	assert.True(t, cfg.Defaults.Install)
	assert.True(t, cfg.Defaults.Git)
	assert.Equal(t, []string{"src/**/*.ts", "src/**/*.js"}, cfg.Docs.APIs)
	assert.Equal(t, "/api-docs", cfg.Docs.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.File)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charcole.yaml")
	content := `defaults:
  language: js
  package_manager: pnpm
  install: false
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "js", cfg.Defaults.Language)
	assert.Equal(t, "pnpm", cfg.Defaults.PackageManager)
	assert.False(t, cfg.Defaults.Install)
	assert.True(t, cfg.Defaults.Git)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, path, cfg.File)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("CHARCOLE_DEFAULTS_LANGUAGE", "js")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "js", cfg.Defaults.Language)
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
