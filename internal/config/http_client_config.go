package config

import "time"

// HTTPClientConfig holds configuration for the shared HTTP client.
type HTTPClientConfig struct {
	TimeoutSeconds      int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	UserAgent           string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	MaxIdleConns        int    `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty" validate:"omitempty,min=1"`
	MaxIdleConnsPerHost int    `json:"max_idle_conns_per_host,omitempty" yaml:"max_idle_conns_per_host,omitempty" validate:"omitempty,min=1"`
	EnableHTTP2         bool   `json:"enable_http2" yaml:"enable_http2"`
	InsecureSkipVerify  bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSeconds:      30,
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		EnableHTTP2:         true,
		InsecureSkipVerify:  false,
	}
}

// Timeout returns the overall client timeout.
func (c HTTPClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
