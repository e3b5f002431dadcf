package config

import (
	"os"
	"time"
)

// Default values for optional configuration fields. The source constants
// mirror the updater's historical behavior against the IIFL endpoint.
const (
	DefaultSourceURL  = "http://content.indiainfoline.com/IIFLTT/Scripmaster.csv"
	DefaultUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
	DefaultDBPort     = 5432
	DefaultDBSSLMode  = "prefer"
	DefaultMaxConns   = 4
	DefaultMinConns   = 1
)

// OutputRootEnv overrides the output root when no explicit root is
// configured; the updater historically ran inside GitHub Actions and wrote
// into the checkout.
const OutputRootEnv = "GITHUB_WORKSPACE"

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Source defaults
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = DefaultUserAgent
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = DefaultTimeout
	}
	if c.Source.MaxRetries == 0 {
		c.Source.MaxRetries = DefaultMaxRetries
	}
	if c.Source.RetryDelay == 0 {
		c.Source.RetryDelay = DefaultRetryDelay
	}

	// Output defaults
	if c.Output.Root == "" {
		if ws := os.Getenv(OutputRootEnv); ws != "" {
			c.Output.Root = ws
		} else {
			c.Output.Root = "."
		}
	}

	// Database defaults, only when the archive is configured
	if c.Database.Enabled() {
		if c.Database.Port == 0 {
			c.Database.Port = DefaultDBPort
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = DefaultDBSSLMode
		}
		if c.Database.MaxConns == 0 {
			c.Database.MaxConns = DefaultMaxConns
		}
		if c.Database.MinConns == 0 {
			c.Database.MinConns = DefaultMinConns
		}
	}
}
