package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the proxy service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"proxy-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Proxy Sources
	HTMLSourceURL string `env:"PROXY_HTML_SOURCE_URL" envDefault:"https://free-proxy-list.net/"`
	JSONSourceURL string `env:"PROXY_JSON_SOURCE_URL" envDefault:"https://cdn.jsdelivr.net/gh/proxifly/free-proxy-list@main/proxies/all/data.json"`

	// Validation
	TestURL             string        `env:"PROXY_TEST_URL" envDefault:"https://httpbin.org/ip"`
	SourceFetchTimeout  time.Duration `env:"SOURCE_FETCH_TIMEOUT" envDefault:"10s"`
	TestTimeout         time.Duration `env:"PROXY_TEST_TIMEOUT" envDefault:"3s"`
	ValidationBatchSize int           `env:"VALIDATION_BATCH_SIZE" envDefault:"20"`
	ValidationWorkers   int           `env:"VALIDATION_CONCURRENCY" envDefault:"10"`

	// Refresh
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`

	// Rate limiting for POST /v1/refresh, per client per minute
	RefreshRateLimit int `env:"REFRESH_RATE_LIMIT" envDefault:"10"`
	RefreshRateBurst int `env:"REFRESH_RATE_BURST" envDefault:"10"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.ValidationBatchSize < 1 {
		return nil, fmt.Errorf("VALIDATION_BATCH_SIZE must be at least 1")
	}
	if cfg.ValidationWorkers < 1 {
		return nil, fmt.Errorf("VALIDATION_CONCURRENCY must be at least 1")
	}
	if cfg.RefreshInterval < time.Minute {
		return nil, fmt.Errorf("REFRESH_INTERVAL must be at least 1m")
	}
	if cfg.SourceFetchTimeout <= 0 || cfg.TestTimeout <= 0 {
		return nil, fmt.Errorf("fetch and test timeouts must be positive")
	}
	if cfg.RefreshRateLimit < 1 {
		return nil, fmt.Errorf("REFRESH_RATE_LIMIT must be at least 1")
	}
	if cfg.RefreshRateBurst < 1 {
		cfg.RefreshRateBurst = cfg.RefreshRateLimit
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
