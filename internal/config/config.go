package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

const (
	// Monitor Defaults
	DefaultCheckIntervalSeconds = 1800 // 30 minutes, matching the schedule refresh cadence of the site
	DefaultFetchTimeoutSeconds  = 20
	DefaultMaxConcurrentChecks  = 4
	DefaultMaxContentSize       = 1048576 // 1MB, schedule fragments are far smaller
	DefaultTimezone             = "Europe/Amsterdam"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Notification Defaults
	DefaultNotificationUsername = "pathewatch"
	DefaultNotificationFooter   = "Generated by *pathewatch*"
)

// GlobalConfig is the root configuration for the watcher. A bare
// `{"requests": [...]}` file is valid; every other section falls back to its
// defaults.
type GlobalConfig struct {
	Requests              []MonitorRequestConfig `json:"requests" yaml:"requests" validate:"required,min=1,dive"`
	HTTPClientConfig      HTTPClientConfig       `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	LogConfig             LogConfig              `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	MonitorConfig         MonitorConfig          `json:"monitor_config,omitempty" yaml:"monitor_config,omitempty"`
	NotificationConfig    NotificationConfig     `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	ResourceLimiterConfig ResourceLimiterConfig  `json:"resource_limiter_config,omitempty" yaml:"resource_limiter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with every section defaulted
// and no requests configured.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Requests:              []MonitorRequestConfig{},
		HTTPClientConfig:      NewDefaultHTTPClientConfig(),
		LogConfig:             NewDefaultLogConfig(),
		MonitorConfig:         NewDefaultMonitorConfig(),
		NotificationConfig:    NewDefaultNotificationConfig(),
		ResourceLimiterConfig: NewDefaultResourceLimiterConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file. The path is resolved
// via GetConfigPath; both JSON and YAML are supported, selected by file
// extension. A missing or unreadable file is a fatal configuration error:
// the watcher refuses to start without at least one configured request.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return nil, errorwrapper.NewConfigError("config_file", providedPath, "no configuration file found")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
