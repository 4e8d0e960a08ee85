package models

import (
	"fmt"
	"sort"
	"strings"
)

// Cinema identifies a supported Pathé location.
type Cinema string

const (
	CinemaBuitenhof Cinema = "Buitenhof"
	CinemaSpuimarkt Cinema = "Spuimarkt"
	CinemaDelft     Cinema = "Delft"
)

// cinemaScheduleIDs maps each location to the identifier the schedules
// endpoint expects in its cinemaId query parameter.
var cinemaScheduleIDs = map[Cinema]int{
	CinemaBuitenhof: 7,
	CinemaSpuimarkt: 13,
	CinemaDelft:     18,
}

// ParseCinema resolves a configured cinema name case-insensitively.
func ParseCinema(name string) (Cinema, error) {
	trimmed := strings.TrimSpace(name)
	for cinema := range cinemaScheduleIDs {
		if strings.EqualFold(trimmed, string(cinema)) {
			return cinema, nil
		}
	}
	return "", fmt.Errorf("unknown cinema %q (supported: %s)", name, strings.Join(SupportedCinemaNames(), ", "))
}

// SupportedCinemaNames returns the known cinema names in stable order.
func SupportedCinemaNames() []string {
	names := make([]string, 0, len(cinemaScheduleIDs))
	for cinema := range cinemaScheduleIDs {
		names = append(names, string(cinema))
	}
	sort.Strings(names)
	return names
}

// ScheduleID returns the remote schedule identifier for the cinema.
func (c Cinema) ScheduleID() int {
	return cinemaScheduleIDs[c]
}

// IsValid reports whether the cinema is a known location.
func (c Cinema) IsValid() bool {
	_, ok := cinemaScheduleIDs[c]
	return ok
}

// String renders the cinema the way it appears on the site and in
// notifications, e.g. "Pathé Spuimarkt".
func (c Cinema) String() string {
	return "Pathé " + string(c)
}
