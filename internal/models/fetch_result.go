package models

// FetchOutcome classifies the result of one availability check.
type FetchOutcome int

const (
	// OutcomeUnavailable means the schedule was fetched and the movie is not listed.
	OutcomeUnavailable FetchOutcome = iota
	// OutcomeAvailable means the movie appears in the schedule.
	OutcomeAvailable
	// OutcomeFetchError means the check failed and availability is unknown.
	OutcomeFetchError
)

// String returns the outcome name used in logs.
func (o FetchOutcome) String() string {
	switch o {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeAvailable:
		return "available"
	case OutcomeFetchError:
		return "fetch_error"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of checking one MonitorRequest against the
// live schedule.
type FetchResult struct {
	Request MonitorRequest
	Outcome FetchOutcome
	Item    *ScheduleItem // matched schedule entry, set when Outcome is OutcomeAvailable
	Err     error         // set when Outcome is OutcomeFetchError
}

// AvailableResult builds a FetchResult for a matched schedule item.
func AvailableResult(req MonitorRequest, item *ScheduleItem) FetchResult {
	return FetchResult{Request: req, Outcome: OutcomeAvailable, Item: item}
}

// UnavailableResult builds a FetchResult for a schedule without the movie.
func UnavailableResult(req MonitorRequest) FetchResult {
	return FetchResult{Request: req, Outcome: OutcomeUnavailable}
}

// FetchErrorResult builds a FetchResult for a failed check.
func FetchErrorResult(req MonitorRequest, err error) FetchResult {
	return FetchResult{Request: req, Outcome: OutcomeFetchError, Err: err}
}
