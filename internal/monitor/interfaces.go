package monitor

import (
	"context"

	"github.com/pathewatch/pathewatch/internal/models"
)

// AvailabilityFetcher checks one monitor request against the live schedule.
type AvailabilityFetcher interface {
	Fetch(ctx context.Context, req models.MonitorRequest) models.FetchResult
}

// AvailabilityNotifier delivers an availability event to the user.
type AvailabilityNotifier interface {
	NotifyAvailability(ctx context.Context, event models.NotificationEvent) error
}
