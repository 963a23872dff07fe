package config

import (
	"os"
	"path/filepath"
	"strings"

	"releaseinstallergo/internal/logger"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	APIURL       string
	Token        string
	PerPage      int
	Selector     string
	FzfPath      string
	BinDir       string
	Elevate      string
	ReleaseOrder string
	LogLevel     string
}

func Init() {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "relinstall"))
	}

	viper.SetEnvPrefix("relinstall")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("github.token", "RELINSTALL_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN")

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Log.Debug("No config file found; using defaults.", "err", err)
	}
}

func setDefaults() {
	viper.SetDefault("github.api_url", "https://api.github.com/")
	viper.SetDefault("github.per_page", 30)
	viper.SetDefault("selector.backend", "fzf")
	viper.SetDefault("selector.fzf_path", "fzf")
	viper.SetDefault("install.bin_dir", defaultBinDir())
	viper.SetDefault("install.elevate", "sudo")
	viper.SetDefault("release.order", "service")
	viper.SetDefault("log.level", "warn")
}

// defaultBinDir is the user's personal executable directory, ~/.local/bin.
func defaultBinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "bin")
	}
	return filepath.Join(home, ".local", "bin")
}

// Load snapshots the current viper state into a Config.
func Load() Config {
	return Config{
		APIURL:       viper.GetString("github.api_url"),
		Token:        strings.TrimSpace(viper.GetString("github.token")),
		PerPage:      viper.GetInt("github.per_page"),
		Selector:     strings.ToLower(viper.GetString("selector.backend")),
		FzfPath:      viper.GetString("selector.fzf_path"),
		BinDir:       viper.GetString("install.bin_dir"),
		Elevate:      viper.GetString("install.elevate"),
		ReleaseOrder: strings.ToLower(viper.GetString("release.order")),
		LogLevel:     viper.GetString("log.level"),
	}
}
