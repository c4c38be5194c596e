// Package config defines client configuration options.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// AuthType defines the authentication method applied to outgoing requests.
type AuthType string

const (
	AuthNone   AuthType = "none"   // No authentication
	AuthBasic  AuthType = "basic"  // HTTP Basic Auth
	AuthBearer AuthType = "bearer" // Bearer token
)

// Config holds all configuration for the client.
type Config struct {
	// User-Agent string sent on every request
	UserAgent string `json:"user_agent"`

	// Socket deadline covering connect, send and receive.
	// 0 disables the deadline and blocks until the peer responds.
	Timeout time.Duration `json:"timeout"`

	// Maximum number of redirects to follow
	MaxRedirects int `json:"max_redirects"`

	// Whether redirects are followed at all
	FollowRedirects bool `json:"follow_redirects"`

	// Maximum requests per second (0 = unlimited)
	RequestsPerSecond float64 `json:"requests_per_second"`

	// Cache freshness window; entries older than this are refetched
	CacheMaxAge time.Duration `json:"cache_max_age"`

	// Path of the sqlite database holding the cache and last results
	CachePath string `json:"cache_path"`

	// === Authentication ===

	AuthType AuthType `json:"auth_type"`

	// Basic auth credentials
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Bearer token
	Token string `json:"token,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
		Timeout:         30 * time.Second,
		MaxRedirects:    5,
		FollowRedirects: true,
		CacheMaxAge:     time.Hour,
		AuthType:        AuthNone,
	}
}

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		c.UserAgent = DefaultConfig().UserAgent
	}
	if c.MaxRedirects < 0 {
		c.MaxRedirects = 0
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
	if c.RequestsPerSecond < 0 {
		c.RequestsPerSecond = 0
	}
	if c.CacheMaxAge <= 0 {
		c.CacheMaxAge = time.Hour
	}
	switch c.AuthType {
	case "", AuthNone, AuthBasic, AuthBearer:
	default:
		return fmt.Errorf("unknown auth type: %s", c.AuthType)
	}
	return nil
}

// Save saves the configuration to a JSON file.
func (c *Config) Save(filePath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load loads configuration from a JSON file.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
