package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "updater.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
source:
  url: http://example.com/master.csv
  timeout: 10s
  max_retries: 5
output:
  root: /tmp/out
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source.URL != "http://example.com/master.csv" {
		t.Errorf("Source.URL = %q, want %q", cfg.Source.URL, "http://example.com/master.csv")
	}
	if cfg.Source.Timeout != 10*time.Second {
		t.Errorf("Source.Timeout = %v, want %v", cfg.Source.Timeout, 10*time.Second)
	}
	if cfg.Source.MaxRetries != 5 {
		t.Errorf("Source.MaxRetries = %d, want 5", cfg.Source.MaxRetries)
	}
	if cfg.Output.Root != "/tmp/out" {
		t.Errorf("Output.Root = %q, want %q", cfg.Output.Root, "/tmp/out")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: tickers
  user: updater
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "output:\n  root: /tmp/out\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Source.URL != DefaultSourceURL {
		t.Errorf("Source.URL = %q, want default %q", cfg.Source.URL, DefaultSourceURL)
	}
	if cfg.Source.Timeout != DefaultTimeout {
		t.Errorf("Source.Timeout = %v, want default %v", cfg.Source.Timeout, DefaultTimeout)
	}
	if cfg.Source.MaxRetries != DefaultMaxRetries {
		t.Errorf("Source.MaxRetries = %d, want default %d", cfg.Source.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Source.RetryDelay != DefaultRetryDelay {
		t.Errorf("Source.RetryDelay = %v, want default %v", cfg.Source.RetryDelay, DefaultRetryDelay)
	}
	if cfg.Output.Root != "/tmp/out" {
		t.Errorf("Output.Root = %q, want %q", cfg.Output.Root, "/tmp/out")
	}
}

func TestOutputRootDefaults(t *testing.T) {
	t.Run("workspace env wins when root unset", func(t *testing.T) {
		t.Setenv(OutputRootEnv, "/srv/workspace")

		path := writeTempFile(t, "source:\n  max_retries: 1\n")
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		if cfg.Output.Root != "/srv/workspace" {
			t.Errorf("Output.Root = %q, want %q", cfg.Output.Root, "/srv/workspace")
		}
	})

	t.Run("current directory without env", func(t *testing.T) {
		t.Setenv(OutputRootEnv, "")

		path := writeTempFile(t, "source:\n  max_retries: 1\n")
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		if cfg.Output.Root != "." {
			t.Errorf("Output.Root = %q, want %q", cfg.Output.Root, ".")
		}
	})

	t.Run("explicit root wins over env", func(t *testing.T) {
		t.Setenv(OutputRootEnv, "/srv/workspace")

		path := writeTempFile(t, "output:\n  root: /explicit\n")
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("LoadWithDefaults failed: %v", err)
		}
		if cfg.Output.Root != "/explicit" {
			t.Errorf("Output.Root = %q, want %q", cfg.Output.Root, "/explicit")
		}
	})
}

func TestDatabaseDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: tickers
  user: updater
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.SSLMode != DefaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want default %q", cfg.Database.SSLMode, DefaultDBSSLMode)
	}
	if cfg.Database.MaxConns != DefaultMaxConns {
		t.Errorf("Database.MaxConns = %d, want default %d", cfg.Database.MaxConns, DefaultMaxConns)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing url", func(c *Config) { c.Source.URL = "" }, true},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, true},
		{"zero retries", func(c *Config) { c.Source.MaxRetries = 0 }, true},
		{"negative delay", func(c *Config) { c.Source.RetryDelay = -time.Second }, true},
		{"database without name", func(c *Config) {
			c.Database.Host = "localhost"
			c.Database.User = "updater"
			c.Database.MaxConns = 4
		}, true},
		{"valid database", func(c *Config) {
			c.Database.Host = "localhost"
			c.Database.Name = "tickers"
			c.Database.User = "updater"
			c.Database.MaxConns = 4
		}, false},
		{"min conns exceed max", func(c *Config) {
			c.Database.Host = "localhost"
			c.Database.Name = "tickers"
			c.Database.User = "updater"
			c.Database.MaxConns = 2
			c.Database.MinConns = 5
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
