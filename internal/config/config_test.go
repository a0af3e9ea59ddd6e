package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	tmpDir, err := os.MkdirTemp("", "thememigrate_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultSourceDir, cfg.SourceDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultPaletteName, cfg.PaletteName)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.False(t, ConfigExists())
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := &Config{
		SourceDir:   "/src/themes",
		OutputDir:   "/out/themes",
		DBPath:      filepath.Join(configDir, "test.db"),
		PaletteName: "nord",
	}

	require.NoError(t, SaveConfig(cfg))
	assert.True(t, ConfigExists())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("source_dir: /themes/ts\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/themes/ts", cfg.SourceDir)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultPaletteName, cfg.PaletteName)
	assert.Equal(t, filepath.Join(configDir, "history.db"), cfg.DBPath)
}

func TestLoadConfig_Malformed(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, os.WriteFile(configFile, []byte("source_dir: [unclosed\n"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	os.RemoveAll(configDir)

	require.NoError(t, SaveConfig(GetDefaultConfig()))

	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSet(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	t.Run("known key", func(t *testing.T) {
		require.NoError(t, Set("output_dir", "/tmp/md"))

		loaded, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/md", loaded.OutputDir)
		assert.Equal(t, DefaultSourceDir, loaded.SourceDir)
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.Error(t, Set("colour", "red"))
	})

	t.Run("empty value", func(t *testing.T) {
		assert.Error(t, Set("source_dir", ""))
	})
}

func TestUpdatePalette(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, UpdatePalette("gruvbox"))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", loaded.PaletteName)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"db_path", "output_dir", "palette", "source_dir"}, Keys())
}
