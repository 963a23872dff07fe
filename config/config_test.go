package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Arrange
		viper.Reset()
		t.Cleanup(viper.Reset)
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")
		chdir(t, t.TempDir())

		// Act
		Init()
		cfg := Load()

		// Assert
		assert.Equal(t, Config{
			APIURL:       "https://api.github.com/",
			PerPage:      30,
			Selector:     "fzf",
			FzfPath:      "fzf",
			BinDir:       filepath.Join(home, ".local", "bin"),
			Elevate:      "sudo",
			ReleaseOrder: "service",
			LogLevel:     "warn",
		}, cfg)
	})

	t.Run("env_overrides", func(t *testing.T) {
		// Arrange
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("GITHUB_TOKEN", "ghp_token")
		t.Setenv("RELINSTALL_SELECTOR_BACKEND", "TUI")
		t.Setenv("RELINSTALL_INSTALL_ELEVATE", "doas")
		chdir(t, t.TempDir())

		// Act
		Init()
		cfg := Load()

		// Assert
		assert.Equal(t, "ghp_token", cfg.Token)
		assert.Equal(t, "tui", cfg.Selector)
		assert.Equal(t, "doas", cfg.Elevate)
	})

	t.Run("config_file", func(t *testing.T) {
		// Arrange
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")
		dir := t.TempDir()
		content := "install:\n  bin_dir: /opt/bin\nrelease:\n  order: version\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
		chdir(t, dir)

		// Act
		Init()
		cfg := Load()

		// Assert
		assert.Equal(t, "/opt/bin", cfg.BinDir)
		assert.Equal(t, "version", cfg.ReleaseOrder)
		assert.Equal(t, "fzf", cfg.Selector)
	})
}
