package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/models"
)

// Transition applies one fetch result to the last known availability and
// reports the new state plus whether an unavailable-to-available edge
// occurred:
//
//	unavailable + available   -> available, notify
//	available   + available   -> available, no notify (already announced)
//	any         + unavailable -> unavailable, no notify
//	any         + fetch error -> unchanged, no notify (availability unknown)
func Transition(lastKnownAvailable bool, result models.FetchResult) (available bool, notify bool) {
	switch result.Outcome {
	case models.OutcomeAvailable:
		return true, !lastKnownAvailable
	case models.OutcomeUnavailable:
		return false, false
	default:
		return lastKnownAvailable, false
	}
}

// Tracker holds the last known availability per monitor request. State lives
// in memory only: every process start begins at "unavailable", so a movie
// already on sale is announced once during the first cycle.
type Tracker struct {
	logger zerolog.Logger
	mu     sync.Mutex
	states map[string]*models.AvailabilityState
}

// NewTracker creates a Tracker seeded with the configured requests, all
// starting as unavailable.
func NewTracker(requests []models.MonitorRequest, logger zerolog.Logger) *Tracker {
	states := make(map[string]*models.AvailabilityState, len(requests))
	for _, req := range requests {
		states[req.Key()] = &models.AvailabilityState{Request: req}
	}
	return &Tracker{
		logger: logger.With().Str("component", "AvailabilityTracker").Logger(),
		states: states,
	}
}

// Apply records the fetch result and returns a NotificationEvent when the
// request flipped from unavailable to available, nil otherwise. Requests the
// tracker has not seen before start as unavailable.
func (t *Tracker) Apply(result models.FetchResult, now time.Time) *models.NotificationEvent {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := result.Request.Key()
	state, ok := t.states[key]
	if !ok {
		state = &models.AvailabilityState{Request: result.Request}
		t.states[key] = state
	}

	next, notify := Transition(state.LastKnownAvailable, result)
	if next != state.LastKnownAvailable {
		t.logger.Info().
			Stringer("request", result.Request).
			Bool("available", next).
			Msg("Availability changed")
	}
	state.LastKnownAvailable = next

	if !notify {
		return nil
	}
	return &models.NotificationEvent{
		EventID:   uuid.NewString(),
		Request:   result.Request,
		Item:      result.Item,
		Timestamp: now,
	}
}

// LastKnownAvailable reports the stored availability for a request.
func (t *Tracker) LastKnownAvailable(req models.MonitorRequest) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	state, ok := t.states[req.Key()]
	return ok && state.LastKnownAvailable
}
