package models

import "time"

// AvailabilityState is the last known availability for one request. States
// live in memory only; a process restart resets every request to
// unavailable.
type AvailabilityState struct {
	Request            MonitorRequest
	LastKnownAvailable bool
}

// NotificationEvent is produced when a request transitions from unavailable
// to available. It is consumed immediately by the notifier and never
// retained, so at most one notification fires per availability session.
type NotificationEvent struct {
	EventID   string // correlation identifier for logs
	Request   MonitorRequest
	Item      *ScheduleItem // schedule entry that triggered the event
	Timestamp time.Time
}
