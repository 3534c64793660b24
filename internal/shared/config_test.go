package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[credentials.spotify]
client_id = "abc"
client_secret = "def"

[transport]
rate_limit = 2.5
timeout_seconds = 15

[logging]
level = "debug"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if config.Credentials.Spotify.ClientID != "abc" {
			t.Errorf("unexpected client_id %q", config.Credentials.Spotify.ClientID)
		}
		if config.Credentials.Spotify.ClientSecret != "def" {
			t.Errorf("unexpected client_secret %q", config.Credentials.Spotify.ClientSecret)
		}
		if config.Transport.RateLimit != 2.5 {
			t.Errorf("unexpected rate_limit %v", config.Transport.RateLimit)
		}
		if config.Transport.TimeoutSeconds != 15 {
			t.Errorf("unexpected timeout_seconds %d", config.Transport.TimeoutSeconds)
		}
		if config.Logging.Level != "debug" {
			t.Errorf("unexpected level %q", config.Logging.Level)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Transport.RateLimit <= 0 {
		t.Errorf("expected a default rate limit, got %v", config.Transport.RateLimit)
	}
	if config.Transport.TimeoutSeconds <= 0 {
		t.Errorf("expected a default timeout, got %d", config.Transport.TimeoutSeconds)
	}
	if config.Logging.Level == "" {
		t.Error("expected a default log level")
	}
	if config.Credentials.Spotify.ClientID != "" {
		t.Error("expected the default credentials to be empty")
	}
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the starter config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("expected the written config to load, got %v", err)
		}
		if config.Logging.Level == "" {
			t.Error("expected the starter config to carry defaults")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error for an existing file")
		}
	})
}
