package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/models"
)

// WatchService runs one availability check end to end: fetch the schedule,
// apply the result to the availability tracker, and notify on an
// unavailable-to-available transition.
type WatchService struct {
	fetcher  AvailabilityFetcher
	tracker  *Tracker
	notifier AvailabilityNotifier
	requests []models.MonitorRequest
	logger   zerolog.Logger
}

// NewWatchService creates a new WatchService over the configured requests.
func NewWatchService(
	fetcher AvailabilityFetcher,
	tracker *Tracker,
	notifier AvailabilityNotifier,
	requests []models.MonitorRequest,
	logger zerolog.Logger,
) *WatchService {
	return &WatchService{
		fetcher:  fetcher,
		tracker:  tracker,
		notifier: notifier,
		requests: requests,
		logger:   logger.With().Str("component", "WatchService").Logger(),
	}
}

// Requests returns the configured monitor requests.
func (ws *WatchService) Requests() []models.MonitorRequest {
	return ws.requests
}

// CheckRequest checks one request and returns the fetch outcome plus whether
// the check produced a notification event. The event fires on the state
// transition itself: a failed delivery is logged but does not rearm the
// request, the next transition will produce a fresh event.
func (ws *WatchService) CheckRequest(ctx context.Context, req models.MonitorRequest) (models.FetchOutcome, bool) {
	result := ws.fetcher.Fetch(ctx, req)

	if result.Outcome == models.OutcomeFetchError {
		ws.logger.Warn().Err(result.Err).Stringer("request", req).Msg("Availability check failed, keeping previous state")
	}

	event := ws.tracker.Apply(result, time.Now())
	if event == nil {
		return result.Outcome, false
	}

	if err := ws.notifier.NotifyAvailability(ctx, *event); err != nil {
		ws.logger.Error().
			Err(err).
			Str("event_id", event.EventID).
			Stringer("request", req).
			Msg("Availability notification failed")
	}
	return result.Outcome, true
}
