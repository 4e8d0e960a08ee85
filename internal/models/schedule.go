package models

// ScheduleItem is one movie entry parsed from a cinema schedule fragment.
type ScheduleItem struct {
	Title      string     // movie title as rendered on the site
	DetailPath string     // href of the title link, relative to pathe.nl
	PosterURL  string     // poster image source, used as notification thumbnail
	Showtimes  []Showtime // bookable screenings for the requested date
}

// Showtime is a single bookable screening within a ScheduleItem.
type Showtime struct {
	Start       string // e.g. "14:30"
	End         string // e.g. "17:05"
	Label       string // screening label shown on the site, e.g. "Original version"
	BookingPath string // data-href of the booking link, relative to pathe.nl
}
