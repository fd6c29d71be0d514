// Package config loads the optional user configuration file and
// environment overrides. Everything has a working default; a missing
// config file is not an error.
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

// Config is the complete user-tunable configuration.
type Config struct {
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Database DatabaseConfig `mapstructure:"database"`
	Export   ExportConfig   `mapstructure:"export"`
}

// WebhookConfig controls the optional result submission endpoint.
type WebhookConfig struct {
	// URL is the submission endpoint. Empty disables submission.
	URL string `mapstructure:"url"`
	// TimeoutMS bounds one submission request, in milliseconds.
	TimeoutMS int `mapstructure:"timeout_ms"`
}

// Timeout returns the webhook timeout as a duration.
func (w WebhookConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutMS) * time.Millisecond
}

// DatabaseConfig controls where the SQLite database lives.
type DatabaseConfig struct {
	// Path overrides the default XDG location when non-empty.
	Path string `mapstructure:"path"`
}

// ExportConfig controls report export.
type ExportConfig struct {
	// Dir is where exported reports are written. Empty means the
	// current working directory.
	Dir string `mapstructure:"dir"`
}

const defaultWebhookTimeoutMS = 10000

// Load reads config.yaml from the user config directory, then applies
// DISHA_* environment overrides (DISHA_WEBHOOK_URL, DISHA_DATABASE_PATH,
// and so on). A missing file yields the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("DISHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("webhook.url", "")
	v.SetDefault("webhook.timeout_ms", defaultWebhookTimeoutMS)
	v.SetDefault("database.path", "")
	v.SetDefault("export.dir", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Webhook.TimeoutMS <= 0 {
		cfg.Webhook.TimeoutMS = defaultWebhookTimeoutMS
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from an explicit path, for the
// --config flag. The file must exist.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("webhook.timeout_ms", defaultWebhookTimeoutMS)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Webhook.TimeoutMS <= 0 {
		cfg.Webhook.TimeoutMS = defaultWebhookTimeoutMS
	}
	return &cfg, nil
}

// configDir resolves the user config directory:
// $XDG_CONFIG_HOME/disha or ~/.config/disha.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "disha"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "disha"), nil
}
