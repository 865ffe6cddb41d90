package types

import "time"

const (
	DefaultLogLevel      = "info"
	DefaultRetryAttempts = 1
	DefaultRetryDelay    = 100 * time.Millisecond
)

// RetryConfig controls how often the CLI re-attempts a push that failed for
// a transient reason (clipboard busy, memory pressure).
type RetryConfig struct {
	Attempts int           `yaml:"attempts"` // total attempts, 1 means no retry
	Delay    time.Duration `yaml:"delay"`    // wait between attempts, e.g. "250ms"
}

type Config struct {
	LogLevel string      `yaml:"log_level"`
	LogFile  string      `yaml:"log_file"`
	Quiet    bool        `yaml:"quiet"`
	Retry    RetryConfig `yaml:"retry"`
}

// GetRetryConfig returns the retry settings with defaults applied
func (c *Config) GetRetryConfig() RetryConfig {
	config := c.Retry
	if config.Attempts < 1 {
		config.Attempts = DefaultRetryAttempts
	}
	if config.Delay <= 0 {
		config.Delay = DefaultRetryDelay
	}
	return config
}

// GetLogLevel returns the configured log level or the default
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// DefaultConfig returns a config populated with the defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Retry: RetryConfig{
			Attempts: DefaultRetryAttempts,
			Delay:    DefaultRetryDelay,
		},
	}
}
