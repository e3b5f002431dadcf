package config

import "time"

// Config is the root configuration for the ticker updater.
type Config struct {
	Source   SourceConfig `yaml:"source"`
	Output   OutputConfig `yaml:"output"`
	Database DBConfig     `yaml:"database"`
}

// SourceConfig holds scrip master download settings.
type SourceConfig struct {
	URL        string        `yaml:"url"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// OutputConfig holds filesystem output settings. Files land under
// <Root>/data.
type OutputConfig struct {
	Root string `yaml:"root"`
}

// DBConfig holds the optional run archive connection. The archive is
// disabled when Host is empty.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Enabled reports whether the run archive is configured.
func (db DBConfig) Enabled() bool { return db.Host != "" }
