package config

import "time"

// ResourceLimiterConfig holds configuration for resource monitoring of the
// long-running watch process.
type ResourceLimiterConfig struct {
	Enabled            bool    `json:"enabled" yaml:"enabled"`
	MaxMemoryMB        int64   `json:"max_memory_mb,omitempty" yaml:"max_memory_mb,omitempty" validate:"omitempty,min=16"`
	MaxGoroutines      int     `json:"max_goroutines,omitempty" yaml:"max_goroutines,omitempty" validate:"omitempty,min=10"`
	CheckIntervalSecs  int     `json:"check_interval_secs,omitempty" yaml:"check_interval_secs,omitempty" validate:"omitempty,min=1"`
	MemoryThreshold    float64 `json:"memory_threshold,omitempty" yaml:"memory_threshold,omitempty" validate:"omitempty,min=0.1,max=1.0"`
	GoroutineWarning   float64 `json:"goroutine_warning,omitempty" yaml:"goroutine_warning,omitempty" validate:"omitempty,min=0.1,max=1.0"`
	SystemMemThreshold float64 `json:"system_mem_threshold,omitempty" yaml:"system_mem_threshold,omitempty" validate:"omitempty,min=0.1,max=1.0"`
	CPUThreshold       float64 `json:"cpu_threshold,omitempty" yaml:"cpu_threshold,omitempty" validate:"omitempty,min=0.1,max=1.0"`
	EnableAutoShutdown bool    `json:"enable_auto_shutdown" yaml:"enable_auto_shutdown"`
}

// NewDefaultResourceLimiterConfig creates default resource limiter
// configuration. Auto-shutdown stays off by default: a watcher that kills
// itself needs a supervisor to come back, and not every deployment has one.
func NewDefaultResourceLimiterConfig() ResourceLimiterConfig {
	return ResourceLimiterConfig{
		Enabled:            true,
		MaxMemoryMB:        256,
		MaxGoroutines:      500,
		CheckIntervalSecs:  30,
		MemoryThreshold:    0.8,
		GoroutineWarning:   0.7,
		SystemMemThreshold: 0.5,
		CPUThreshold:       0.5,
		EnableAutoShutdown: false,
	}
}

// CheckInterval returns the sampling interval.
func (c ResourceLimiterConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSecs) * time.Second
}
