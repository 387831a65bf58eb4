package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"WOO_APP_NAME":       os.Getenv("WOO_APP_NAME"),
		"WOO_APP_ENV":        os.Getenv("WOO_APP_ENV"),
		"WOO_API_BASE_URL":   os.Getenv("WOO_API_BASE_URL"),
		"WOO_API_AUTH_TOKEN": os.Getenv("WOO_API_AUTH_TOKEN"),
		"WOO_API_SITE_ID":    os.Getenv("WOO_API_SITE_ID"),
		"WOO_API_TIMEOUT":    os.Getenv("WOO_API_TIMEOUT"),
		"WOO_API_USER_AGENT": os.Getenv("WOO_API_USER_AGENT"),
		"WOO_CACHE_ENABLED":  os.Getenv("WOO_CACHE_ENABLED"),
		"WOO_CACHE_TTL":      os.Getenv("WOO_CACHE_TTL"),
		"WOO_LOG_LEVEL":      os.Getenv("WOO_LOG_LEVEL"),
		"WOO_LOG_FORMAT":     os.Getenv("WOO_LOG_FORMAT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "wooctl", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "https://public-api.wordpress.com", cfg.API.BaseURL)
		assert.Equal(t, "", cfg.API.AuthToken)
		assert.Equal(t, int64(0), cfg.API.SiteID)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.False(t, cfg.Cache.Enabled)
		assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stderr", cfg.Log.Output)
	})

	t.Run("loads values from environment variables with WOO prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_APP_NAME", "test-app")
		os.Setenv("WOO_APP_ENV", "testing")
		os.Setenv("WOO_API_BASE_URL", "https://api.example.com")
		os.Setenv("WOO_API_AUTH_TOKEN", "token-abc")
		os.Setenv("WOO_API_SITE_ID", "123")
		os.Setenv("WOO_API_TIMEOUT", "10s")
		os.Setenv("WOO_CACHE_ENABLED", "true")
		os.Setenv("WOO_CACHE_TTL", "2m")
		os.Setenv("WOO_LOG_LEVEL", "debug")
		os.Setenv("WOO_LOG_FORMAT", "json")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
		assert.Equal(t, "token-abc", cfg.API.AuthToken)
		assert.Equal(t, int64(123), cfg.API.SiteID)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("rejects malformed base URL", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_API_BASE_URL", "not a url")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.base_url")
	})

	t.Run("rejects negative site ID", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_API_SITE_ID", "-5")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.site_id cannot be negative")
	})

	t.Run("zero timeout uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_API_TIMEOUT", "0s")

		cfg, err := Load("")
		require.NoError(t, err)
		// 0 is treated as "not set", so default (30s) is used
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	})
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Run("loads from the given file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wooctl.toml")
		contents := `[api]
base_url = "https://api.example.com"
site_id = 99

[log]
level = "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
		assert.Equal(t, int64(99), cfg.API.SiteID)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"WOO_APP_ENV":        os.Getenv("WOO_APP_ENV"),
		"WOO_API_BASE_URL":   os.Getenv("WOO_API_BASE_URL"),
		"WOO_API_AUTH_TOKEN": os.Getenv("WOO_API_AUTH_TOKEN"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires api.auth_token in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_APP_ENV", "production")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.auth_token is required in production")
	})

	t.Run("requires https base URL in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_APP_ENV", "production")
		os.Setenv("WOO_API_AUTH_TOKEN", "token-abc")
		os.Setenv("WOO_API_BASE_URL", "http://api.example.com")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.base_url must use https in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("WOO_APP_ENV", "production")
		os.Setenv("WOO_API_AUTH_TOKEN", "token-abc")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}
