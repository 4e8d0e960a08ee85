package config

import (
	"os"
	"strings"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
)

// Environment variables recognized by the watcher.
const (
	// EnvDiscordWebhookURL is the notification destination. Required.
	EnvDiscordWebhookURL = "DISCORD_WEBHOOK_URL"
	// EnvTimezone overrides monitor_config.timezone.
	EnvTimezone = "TIMEZONE"
	// EnvLogLevel overrides log_config.log_level.
	EnvLogLevel = "LOG_LEVEL"
	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "PATHEWATCH_CONFIG"
)

// ApplyEnvOverrides folds environment variables into the loaded
// configuration. The webhook URL has no file fallback: its absence is a
// fatal startup error before any scheduling or network activity begins.
func ApplyEnvOverrides(cfg *GlobalConfig) error {
	webhookURL := strings.TrimSpace(os.Getenv(EnvDiscordWebhookURL))
	if webhookURL == "" {
		return errorwrapper.NewConfigError(EnvDiscordWebhookURL, "", "environment variable is required")
	}
	cfg.NotificationConfig.WebhookURL = webhookURL

	if tz := strings.TrimSpace(os.Getenv(EnvTimezone)); tz != "" {
		cfg.MonitorConfig.Timezone = tz
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogConfig.LogLevel = strings.ToLower(level)
	}
	return nil
}
