package config

import (
	"errors"
	"fmt"
	"strings"

	"fotolia/catalog/internal/domain"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the catalog RPC endpoint configuration
type APIConfig struct {
	Endpoint             string   `mapstructure:"endpoint"`
	APIKey               string   `mapstructure:"api_key"`
	Language             string   `mapstructure:"language"`
	Timeout              int      `mapstructure:"timeout"` // Seconds
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	Proxies              []string `mapstructure:"proxies"`
}

// LoggingConfig holds logrus settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultEndpoint = "http://api.fotolia.com/Xmlrpc/rpc"
	envPrefix       = "FOTOLIA"
)

// Load loads configuration from a YAML file with environment variable overrides.
// An empty path searches config.yaml in the current directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.endpoint", DefaultEndpoint)
	v.SetDefault("api.api_key", "")
	v.SetDefault("api.language", domain.DefaultLanguage.String())
	v.SetDefault("api.timeout", 30)
	v.SetDefault("api.max_requests_per_second", 0)
	v.SetDefault("api.proxies", []string{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func validate(cfg *Config) error {
	if cfg.API.Endpoint == "" {
		return fmt.Errorf("api.endpoint is required")
	}

	if cfg.API.APIKey == "" {
		return fmt.Errorf("api.api_key: %w", domain.ErrAPIKeyRequired)
	}

	if _, err := domain.ParseLanguage(cfg.API.Language); err != nil {
		return fmt.Errorf("api.language: %w", err)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %d", cfg.API.Timeout)
	}

	if cfg.API.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("api.max_requests_per_second must not be negative, got %d", cfg.API.MaxRequestsPerSecond)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// LanguageOrDefault returns the configured language, falling back to the default language.
func (c APIConfig) LanguageOrDefault() domain.Language {
	lang, err := domain.ParseLanguage(c.Language)
	if err != nil {
		return domain.DefaultLanguage
	}
	return lang
}
