package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("HTMLPARSER_SERVER_PORT")
		os.Unsetenv("HTMLPARSER_SERVER_ENVIRONMENT")
		os.Unsetenv("HTMLPARSER_PARSER_MAX_INPUT_LENGTH")
		os.Unsetenv("HTMLPARSER_PARSER_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("HTMLPARSER_RATELIMIT_PER_IP")
		os.Unsetenv("HTMLPARSER_RATELIMIT_RPS")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Parser.MaxInputLength != 100000 {
			t.Errorf("Parser.MaxInputLength = %d, want 100000", cfg.Parser.MaxInputLength)
		}
		if cfg.Parser.EnableDebugLogging {
			t.Error("Parser.EnableDebugLogging = true, want false")
		}
		if cfg.RateLimit.PerIP != 20 {
			t.Errorf("RateLimit.PerIP = %d, want 20", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.RPS != 10.0 {
			t.Errorf("RateLimit.RPS = %f, want 10.0", cfg.RateLimit.RPS)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HTMLPARSER_SERVER_PORT", "9090")
		os.Setenv("HTMLPARSER_SERVER_ENVIRONMENT", "production")
		os.Setenv("HTMLPARSER_PARSER_MAX_INPUT_LENGTH", "50000")
		os.Setenv("HTMLPARSER_PARSER_ENABLE_DEBUG_LOGGING", "true")
		os.Setenv("HTMLPARSER_RATELIMIT_PER_IP", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Parser.MaxInputLength != 50000 {
			t.Errorf("Parser.MaxInputLength = %d, want 50000", cfg.Parser.MaxInputLength)
		}
		if !cfg.Parser.EnableDebugLogging {
			t.Error("Parser.EnableDebugLogging = false, want true")
		}
		if cfg.RateLimit.PerIP != 5 {
			t.Errorf("RateLimit.PerIP = %d, want 5", cfg.RateLimit.PerIP)
		}
	})

	t.Run("rejects non-positive max input length", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HTMLPARSER_PARSER_MAX_INPUT_LENGTH", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HTMLPARSER_RATELIMIT_PER_IP", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}
