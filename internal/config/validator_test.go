package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *GlobalConfig {
	cfg := NewDefaultGlobalConfig()
	cfg.Requests = []MonitorRequestConfig{
		{Cinema: "Spuimarkt", Date: "19-08-2021", Movie: "The Green Knight"},
	}
	cfg.NotificationConfig.WebhookURL = "https://discord.com/api/webhooks/123/token"
	return cfg
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfig_EmptyRequests(t *testing.T) {
	cfg := validTestConfig()
	cfg.Requests = nil

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Requests")
}

func TestValidateConfig_UnknownCinema(t *testing.T) {
	cfg := validTestConfig()
	cfg.Requests[0].Cinema = "Tuschinski"

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cinema")
	assert.Contains(t, err.Error(), "Tuschinski")
}

func TestValidateConfig_DateFormat(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"well-formed", "19-08-2021", true},
		{"iso order rejected", "2021-08-19", false},
		{"missing zero padding", "9-8-2021", false},
		{"impossible date", "31-02-2021", false},
		{"slashes rejected", "19/08/2021", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Requests[0].Date = tt.date

			err := ValidateConfig(cfg)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateConfig_MissingMovie(t *testing.T) {
	cfg := validTestConfig()
	cfg.Requests[0].Movie = ""

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_LogSettings(t *testing.T) {
	cfg := validTestConfig()
	cfg.LogConfig.LogLevel = "verbose"
	assert.Error(t, ValidateConfig(cfg))

	cfg = validTestConfig()
	cfg.LogConfig.LogFormat = "xml"
	assert.Error(t, ValidateConfig(cfg))

	cfg = validTestConfig()
	cfg.LogConfig.LogLevel = "debug"
	cfg.LogConfig.LogFormat = "json"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_Timezone(t *testing.T) {
	cfg := validTestConfig()
	cfg.MonitorConfig.Timezone = "Not/AZone"

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestValidateConfig_WebhookURLFormat(t *testing.T) {
	cfg := validTestConfig()
	cfg.NotificationConfig.WebhookURL = "not a url"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_MonitorBounds(t *testing.T) {
	cfg := validTestConfig()
	cfg.MonitorConfig.CheckIntervalSeconds = -1
	assert.Error(t, ValidateConfig(cfg))

	cfg = validTestConfig()
	cfg.MonitorConfig.MaxConcurrentChecks = 0
	// zero means "use default" for omitempty-tagged ints
	assert.NoError(t, ValidateConfig(cfg))
}
