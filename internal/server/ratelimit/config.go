package ratelimit

import (
	"net/http"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration. Endpoint tiers are not part of
// the file/env surface; they come from DefaultEndpointConfigs.
type Config struct {
	Enabled         bool             `mapstructure:"enabled"`
	DefaultLimit    int              `mapstructure:"default_limit" validate:"gte=0"`
	DefaultWindow   time.Duration    `mapstructure:"default_window" validate:"gte=0"`
	CleanupInterval time.Duration    `mapstructure:"cleanup_interval" validate:"gte=0"`
	Whitelist       []string         `mapstructure:"whitelist"`
	Blacklist       []string         `mapstructure:"blacklist"`
	EndpointConfigs []EndpointConfig `mapstructure:"-"`
}

// DefaultConfig returns the limiter configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: exports launch a headless browser
		{Path: "/api/export/", Method: http.MethodGet, Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/print", Method: http.MethodGet, Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 2: whole-document writes
		{Path: "/api/document", Method: http.MethodPut, Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/document/", Method: http.MethodPost, Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: per-keystroke input and reads use the default limit
		// Tier 4: health and the event stream are unlimited (see MatchEndpoint)
	}
}
