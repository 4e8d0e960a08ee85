package notifier

// Discord formatting constants
const (
	// AvailabilityEmbedColor is the accent color for availability embeds.
	AvailabilityEmbedColor = 0x2ECC71 // green

	// siteBaseURL prefixes the relative hrefs the schedule fragment carries.
	siteBaseURL = "https://pathe.nl"
	// detailAnchor jumps straight to the agenda section of a movie page.
	detailAnchor = "#agenda"

	// showtimeFallbackLabel names a showtime field when the site renders an
	// empty label span.
	showtimeFallbackLabel = "Voorstelling"

	// Filler field appended to keep Discord's three-column field grid
	// aligned when the last row would hold exactly two showtimes.
	fillerFieldName  = ":rooster:"
	fillerFieldValue = ":popcorn:"
)
