package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/models"
)

// notifyTimeout bounds a single webhook delivery.
const notifyTimeout = 30 * time.Second

// NotificationHelper turns availability events into Discord messages. It is
// the only piece the watch loop talks to for notifications.
type NotificationHelper struct {
	discordNotifier *DiscordNotifier
	cfg             config.NotificationConfig
	location        *time.Location
	logger          zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper. Timestamps in
// notifications render in the given location.
func NewNotificationHelper(dn *DiscordNotifier, cfg config.NotificationConfig, loc *time.Location, logger zerolog.Logger) *NotificationHelper {
	if loc == nil {
		loc = time.UTC
	}
	return &NotificationHelper{
		discordNotifier: dn,
		cfg:             cfg,
		location:        loc,
		logger:          logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// NotifyAvailability sends the notification for one unavailable-to-available
// transition. Delivery failures are returned for the caller to record; they
// never stop the watch loop and are not retried, since the next transition
// will produce a fresh event.
func (nh *NotificationHelper) NotifyAvailability(ctx context.Context, event models.NotificationEvent) error {
	nh.logger.Info().
		Str("event_id", event.EventID).
		Stringer("request", event.Request).
		Msg("Sending availability notification")

	payload := FormatAvailabilityMessage(event, nh.cfg, nh.location)

	notifyCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := nh.discordNotifier.SendNotification(notifyCtx, payload); err != nil {
		return err
	}

	nh.logger.Info().Str("event_id", event.EventID).Msg("Availability notification sent")
	return nil
}
