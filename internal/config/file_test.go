package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFileConfig(), cfg)
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, `
working_dir = "/srv/work"
overwrite = true
replace = "never"
include_folders = true
log_level = "debug"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/work", cfg.WorkingDir)
	require.NotNil(t, cfg.Overwrite)
	assert.True(t, *cfg.Overwrite)
	assert.Equal(t, ReplaceNever, cfg.Replace)
	require.NotNil(t, cfg.IncludeFolders)
	assert.True(t, *cfg.IncludeFolders)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `working_dir = "/tmp/w"`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/w", cfg.WorkingDir)
	assert.False(t, *cfg.Overwrite)
	assert.False(t, *cfg.IncludeFolders)
	assert.Equal(t, ReplaceAsk, cfg.Replace)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(writeConfig(t, `working_dir = [`))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, `replace = "sometimes"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestValidateReplace(t *testing.T) {
	for _, policy := range []string{ReplaceAsk, ReplaceAlways, ReplaceNever} {
		assert.NoError(t, ValidateReplace(policy))
	}
	assert.Error(t, ValidateReplace(""))
	assert.Error(t, ValidateReplace("ASK"))
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if os.Getenv("HOME") == "" {
		t.Setenv("HOME", t.TempDir())
	}

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
	assert.Equal(t, "config.toml", filepath.Base(path))
}
