package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathewatch/pathewatch/internal/models"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Requests)
	assert.Equal(t, DefaultCheckIntervalSeconds, cfg.MonitorConfig.CheckIntervalSeconds)
	assert.Equal(t, DefaultTimezone, cfg.MonitorConfig.Timezone)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultNotificationUsername, cfg.NotificationConfig.Username)
	assert.True(t, cfg.ResourceLimiterConfig.Enabled)
	assert.False(t, cfg.ResourceLimiterConfig.EnableAutoShutdown)
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.json")

	configData := `{"requests":[{"cinema":"Spuimarkt","date":"19-08-2021","movie":"The Green Knight"}]}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	require.Len(t, cfg.Requests, 1)
	assert.Equal(t, "Spuimarkt", cfg.Requests[0].Cinema)
	assert.Equal(t, "19-08-2021", cfg.Requests[0].Date)
	assert.Equal(t, "The Green Knight", cfg.Requests[0].Movie)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultCheckIntervalSeconds, cfg.MonitorConfig.CheckIntervalSeconds)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
}

func TestLoadGlobalConfig_JSONFileWithSections(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.json")

	configData := `{
		"requests": [{"cinema": "Delft", "date": "01-09-2021", "movie": "Dune"}],
		"monitor_config": {"check_interval_seconds": 600, "max_concurrent_checks": 2},
		"log_config": {"log_level": "debug", "log_format": "json"}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	assert.Equal(t, 600, cfg.MonitorConfig.CheckIntervalSeconds)
	assert.Equal(t, 2, cfg.MonitorConfig.MaxConcurrentChecks)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	// unset fields within a present section still default
	assert.Equal(t, DefaultFetchTimeoutSeconds, cfg.MonitorConfig.FetchTimeoutSeconds)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configData := `
requests:
  - cinema: Buitenhof
    date: 19-08-2021
    movie: The Green Knight
monitor_config:
  timezone: Europe/Brussels
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile)

	require.NoError(t, err)
	require.Len(t, cfg.Requests, 1)
	assert.Equal(t, "Buitenhof", cfg.Requests[0].Cinema)
	assert.Equal(t, "Europe/Brussels", cfg.MonitorConfig.Timezone)
}

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "no configuration file found")
}

func TestLoadGlobalConfig_MalformedJSON(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"requests": [`), 0644))

	cfg, err := LoadGlobalConfig(configFile)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config content")
}

func TestApplyEnvOverrides_RequiresWebhookURL(t *testing.T) {
	t.Setenv(EnvDiscordWebhookURL, "")

	cfg := NewDefaultGlobalConfig()
	err := ApplyEnvOverrides(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDiscordWebhookURL)
}

func TestApplyEnvOverrides_AppliesValues(t *testing.T) {
	t.Setenv(EnvDiscordWebhookURL, "https://discord.com/api/webhooks/123/token")
	t.Setenv(EnvTimezone, "Europe/Paris")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := NewDefaultGlobalConfig()
	err := ApplyEnvOverrides(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/123/token", cfg.NotificationConfig.WebhookURL)
	assert.Equal(t, "Europe/Paris", cfg.MonitorConfig.Timezone)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func TestApplyEnvOverrides_KeepsConfigValuesWithoutEnv(t *testing.T) {
	t.Setenv(EnvDiscordWebhookURL, "https://discord.com/api/webhooks/123/token")
	t.Setenv(EnvTimezone, "")
	t.Setenv(EnvLogLevel, "")

	cfg := NewDefaultGlobalConfig()
	cfg.MonitorConfig.Timezone = "Europe/Brussels"
	cfg.LogConfig.LogLevel = "warn"

	require.NoError(t, ApplyEnvOverrides(cfg))
	assert.Equal(t, "Europe/Brussels", cfg.MonitorConfig.Timezone)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
}

func TestMonitorRequests_Conversion(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.Requests = []MonitorRequestConfig{
		{Cinema: "spuimarkt", Date: "19-08-2021", Movie: "The Green Knight"},
		{Cinema: "Delft", Date: "20-08-2021", Movie: "Dune"},
	}

	requests, err := cfg.MonitorRequests()

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, models.CinemaSpuimarkt, requests[0].Cinema)
	assert.Equal(t, models.CinemaDelft, requests[1].Cinema)
	assert.Equal(t, "The Green Knight", requests[0].Movie)
}

func TestMonitorRequests_UnknownCinema(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.Requests = []MonitorRequestConfig{
		{Cinema: "Tuschinski", Date: "19-08-2021", Movie: "The Green Knight"},
	}

	_, err := cfg.MonitorRequests()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestGetConfigPath_FlagPriority(t *testing.T) {
	tempDir := t.TempDir()
	flagFile := filepath.Join(tempDir, "custom.json")
	require.NoError(t, os.WriteFile(flagFile, []byte(`{}`), 0644))

	assert.Equal(t, flagFile, GetConfigPath(flagFile))
}

func TestGetConfigPath_MissingExplicitPath(t *testing.T) {
	assert.Equal(t, "", GetConfigPath(filepath.Join(t.TempDir(), "absent.json")))
}

func TestGetConfigPath_EnvFallback(t *testing.T) {
	tempDir := t.TempDir()
	envFile := filepath.Join(tempDir, "from_env.yaml")
	require.NoError(t, os.WriteFile(envFile, []byte(`requests: []`), 0644))
	t.Setenv(EnvConfigPath, envFile)

	assert.Equal(t, envFile, GetConfigPath(""))
}

func TestMonitorConfig_DurationHelpers(t *testing.T) {
	mc := MonitorConfig{CheckIntervalSeconds: 90, FetchTimeoutSeconds: 5, Timezone: "Europe/Amsterdam"}

	assert.Equal(t, "1m30s", mc.CheckInterval().String())
	assert.Equal(t, "5s", mc.FetchTimeout().String())
	assert.Equal(t, "Europe/Amsterdam", mc.Location().String())
}

func TestMonitorConfig_LocationFallback(t *testing.T) {
	assert.Equal(t, "UTC", MonitorConfig{}.Location().String())
	assert.Equal(t, "UTC", MonitorConfig{Timezone: "Not/AZone"}.Location().String())
}
