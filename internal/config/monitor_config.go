package config

import "time"

// MonitorConfig defines configuration for the watch loop.
type MonitorConfig struct {
	CheckIntervalSeconds int    `json:"check_interval_seconds,omitempty" yaml:"check_interval_seconds,omitempty" validate:"omitempty,min=1"`
	FetchTimeoutSeconds  int    `json:"fetch_timeout_seconds,omitempty" yaml:"fetch_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	MaxConcurrentChecks  int    `json:"max_concurrent_checks,omitempty" yaml:"max_concurrent_checks,omitempty" validate:"omitempty,min=1"`
	MaxContentSize       int    `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"` // Max schedule fragment size in bytes
	MaxCycles            int    `json:"max_cycles,omitempty" yaml:"max_cycles,omitempty" validate:"omitempty,min=0"`             // 0 means run indefinitely
	Timezone             string `json:"timezone,omitempty" yaml:"timezone,omitempty" validate:"omitempty,timezone"`
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckIntervalSeconds: DefaultCheckIntervalSeconds,
		FetchTimeoutSeconds:  DefaultFetchTimeoutSeconds,
		MaxConcurrentChecks:  DefaultMaxConcurrentChecks,
		MaxContentSize:       DefaultMaxContentSize,
		MaxCycles:            0,
		Timezone:             DefaultTimezone,
	}
}

// CheckInterval returns the configured interval between cycles.
func (c MonitorConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

// FetchTimeout returns the per-request fetch timeout.
func (c MonitorConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded. Validation catches bad names earlier, so the
// fallback only matters for programmatically built configs.
func (c MonitorConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
