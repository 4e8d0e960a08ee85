package models

import "fmt"

// MonitorRequest is one user-configured interest: a movie to watch for at a
// cinema on a date. Instances are immutable once loaded from configuration;
// identity is the tuple itself.
type MonitorRequest struct {
	Cinema Cinema `json:"cinema"`
	Date   string `json:"date"` // DD-MM-YYYY, passed through to the schedules endpoint
	Movie  string `json:"movie"`
}

// Key returns a stable identity for the request tuple, used to index
// availability state.
func (r MonitorRequest) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.Cinema, r.Date, r.Movie)
}

// String renders the request the way it appears in logs and notification
// text, e.g. "'The Green Knight' op 19-08-2021 in Pathé Spuimarkt".
func (r MonitorRequest) String() string {
	return fmt.Sprintf("'%s' op %s in %s", r.Movie, r.Date, r.Cinema)
}
