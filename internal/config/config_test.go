package config

import (
	"os"
	"path/filepath"
	"testing"

	"fotolia/catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: DefaultEndpoint,
			APIKey:   "test-key",
			Language: "en_us",
			Timeout:  30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.API.APIKey = "" },
			wantErr: "api key is required",
		},
		{
			name:    "missing endpoint",
			mutate:  func(c *Config) { c.API.Endpoint = "" },
			wantErr: "api.endpoint is required",
		},
		{
			name:    "unknown language",
			mutate:  func(c *Config) { c.API.Language = "xx" },
			wantErr: "language not defined",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "api.timeout",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.API.MaxRequestsPerSecond = -1 },
			wantErr: "max_requests_per_second",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`api:
  api_key: file-key
  language: de
  max_requests_per_second: 5
  proxies:
    - http://proxy-a:3128
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.API.APIKey)
	assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, []string{"http://proxy-a:3128"}, cfg.API.Proxies)
	assert.Equal(t, domain.LanguageGerman, cfg.API.LanguageOrDefault())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  api_key: file-key\n"), 0o600))

	t.Setenv("FOTOLIA_API_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.APIKey)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
