package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/httpclient"
)

// maxLoggedResponseBody caps how much of a webhook error response is logged.
const maxLoggedResponseBody = 200

// DiscordNotifier delivers message payloads to a Discord webhook. The
// webhook URL embeds a secret token, so it is never logged and never part of
// returned errors.
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	webhookURL string
}

// NewDiscordNotifier creates a new DiscordNotifier. The webhook URL is
// checked once here; a malformed URL is a fatal configuration problem.
func NewDiscordNotifier(cfg config.NotificationConfig, client *httpclient.HTTPClient, logger zerolog.Logger) (*DiscordNotifier, error) {
	// The parse error echoes the raw URL, so it must not escape here.
	if _, err := url.ParseRequestURI(cfg.WebhookURL); err != nil {
		return nil, errorwrapper.NewError("invalid Discord webhook URL")
	}

	return &DiscordNotifier{
		logger:     logger.With().Str("component", "DiscordNotifier").Logger(),
		httpClient: client,
		webhookURL: cfg.WebhookURL,
	}, nil
}

// SendNotification posts the payload as JSON to the configured webhook.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, payload DiscordMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal Discord payload")
	}

	resp, err := dn.httpClient.Do(&httpclient.HTTPRequest{
		Context: ctx,
		Method:  http.MethodPost,
		URL:     dn.webhookURL,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    bytes.NewReader(payloadJSON),
	})
	if err != nil {
		return errorwrapper.NewNotifyError(0, "webhook request failed", err)
	}

	if !resp.IsSuccess() {
		dn.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", truncateText(string(resp.Body), maxLoggedResponseBody)).
			Msg("Discord webhook rejected notification")
		return errorwrapper.NewNotifyError(resp.StatusCode, "webhook rejected notification", nil)
	}

	dn.logger.Debug().Int("status_code", resp.StatusCode).Msg("Discord notification delivered")
	return nil
}
