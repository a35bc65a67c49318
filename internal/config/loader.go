// Package config loads fundictl configuration from file, environment, and
// defaults, in that order of increasing precedence for env overrides.
//
// The config file is YAML, looked up at --config, $FUNDI_CONFIG, or
// ~/.config/fundictl/config.yaml. Environment variables use the FUNDI_
// prefix with underscores (e.g. FUNDI_API_BASE_URL).
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config is the resolved fundictl configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Server ServerConfig `mapstructure:"server"`
	Output OutputConfig `mapstructure:"output"`
}

// APIConfig configures the platform API client.
type APIConfig struct {
	// BaseURL is the platform API root.
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds each API request.
	Timeout time.Duration `mapstructure:"timeout"`

	// RateLimit / RateBurst pace outgoing requests.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// AuthConfig configures session token storage.
type AuthConfig struct {
	// TokenPath is where the session token file lives.
	TokenPath string `mapstructure:"token_path"`
}

// ServerConfig configures the local dashboard server (serve mode).
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// RefreshInterval is how often serve mode re-fetches jobs from the
	// platform. Snapshots older than this render as stale.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// OutputConfig configures CLI rendering.
type OutputConfig struct {
	// Format is the default output format (table|jsonl).
	Format string `mapstructure:"format"`
}

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSONL = "jsonl"
)

// Defaults for optional settings.
const (
	DefaultBaseURL         = "https://api.fundiconnect.co.ke/api/v1"
	DefaultTimeout         = 30 * time.Second
	DefaultHost            = "localhost"
	DefaultPort            = 8080
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultRefreshInterval = time.Minute
	DefaultFormat          = "table"
)

// Load resolves configuration. explicitPath, when non-empty, bypasses the
// default file lookup; a missing default file is not an error.
func Load(ctx context.Context, explicitPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("api.rate_limit", 10.0)
	v.SetDefault("api.rate_burst", 5)
	v.SetDefault("auth.token_path", defaultTokenPath())
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.refresh_interval", DefaultRefreshInterval)
	v.SetDefault("output.format", DefaultFormat)

	v.SetEnvPrefix("FUNDI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case explicitPath != "":
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicitPath, err)
		}
	case os.Getenv("FUNDI_CONFIG") != "":
		v.SetConfigFile(os.Getenv("FUNDI_CONFIG"))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", os.Getenv("FUNDI_CONFIG"), err)
		}
	default:
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook)); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Output.Format {
	case FormatTable, FormatJSONL:
	default:
		return fmt.Errorf("output.format must be table or jsonl, got %q", c.Output.Format)
	}
	return nil
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "fundictl")
}

func defaultTokenPath() string {
	return filepath.Join(defaultConfigDir(), "token.json")
}
