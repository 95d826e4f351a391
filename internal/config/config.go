package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	UI        UIConfig        `mapstructure:"ui"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// APIConfig points at the character collection.
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
}

// HTTPConfig holds client settings. A zero timeout means none.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation settings. An empty locale is detected from
// the environment.
type UIConfig struct {
	Locale string `mapstructure:"locale"`
}

// LogConfig controls where log output goes while the TUI owns the terminal.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// TelemetryConfig holds OTLP trace export settings.
type TelemetryConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Endpoint   string  `mapstructure:"endpoint"`
	SampleRate float64 `mapstructure:"sample_rate"`
}

const envPrefix = "CHARBROWSER"

// Path resolves the config file: explicit, then $CHARBROWSER_CONFIG, then
// ~/.config/charbrowser/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "charbrowser", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// CHARBROWSER_. A missing file is not an error.
func Load(explicit string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://rickandmortyapi.com/api/character")
	v.SetDefault("api.user_agent", "charbrowser")
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("ui.locale", "")
	v.SetDefault("log.file", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("telemetry.sample_rate", 1.0)

	v.SetConfigType("toml")
	v.SetConfigFile(Path(explicit))

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SaveLocale records the UI locale in the config file. Only keys already in
// the file are kept; defaults and env overrides are not written.
func SaveLocale(explicit, loc string) error {
	path := Path(explicit)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("ui.locale", loc)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
