package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/models"
)

// FormatAvailabilityMessage builds the webhook payload for one availability
// event: a Dutch one-liner as message content plus a single embed that links
// the movie's agenda page and lists every showtime as an inline field.
func FormatAvailabilityMessage(event models.NotificationEvent, cfg config.NotificationConfig, loc *time.Location) DiscordMessagePayload {
	request := event.Request

	content := buildMentions(cfg.MentionRoleIDs)
	content += fmt.Sprintf(
		"Er zijn tickets beschikbaar voor '**%s**' op **%s** in **%s**.",
		request.Movie, request.Date, request.Cinema,
	)

	builder := NewDiscordMessagePayloadBuilder().
		WithContent(content).
		WithUsername(cfg.Username).
		WithAvatarURL(cfg.AvatarURL).
		AddEmbed(buildAvailabilityEmbed(event, cfg, loc))

	if len(cfg.MentionRoleIDs) > 0 {
		builder.WithAllowedMentions(AllowedMentions{
			Parse: []string{"roles"},
			Roles: cfg.MentionRoleIDs,
		})
	}

	return builder.Build()
}

func buildAvailabilityEmbed(event models.NotificationEvent, cfg config.NotificationConfig, loc *time.Location) DiscordEmbed {
	builder := NewDiscordEmbedBuilder().
		WithTitle(event.Request.Movie).
		WithColor(AvailabilityEmbedColor).
		WithTimestamp(event.Timestamp.In(loc)).
		WithFooter(cfg.FooterText, "")

	if event.Item != nil {
		builder.
			WithURL(agendaURL(event.Item.DetailPath)).
			WithThumbnail(absoluteSiteURL(event.Item.PosterURL))
		addShowtimeFields(builder, event.Item.Showtimes)
	}

	return builder.Build()
}

// addShowtimeFields adds one inline field per showtime. When the last row of
// Discord's three-column field grid would hold exactly two entries, a filler
// field keeps the grid aligned.
func addShowtimeFields(builder *DiscordEmbedBuilder, showtimes []models.Showtime) {
	for _, showtime := range showtimes {
		builder.AddField(showtimeFieldName(showtime), showtimeFieldValue(showtime), true)
	}
	if count := builder.FieldCount(); count > 3 && count%3 == 2 {
		builder.AddField(fillerFieldName, fillerFieldValue, true)
	}
}

func showtimeFieldName(showtime models.Showtime) string {
	if showtime.Label == "" {
		return showtimeFallbackLabel
	}
	return showtime.Label
}

func showtimeFieldValue(showtime models.Showtime) string {
	span := fmt.Sprintf("%s - %s", showtime.Start, showtime.End)
	if showtime.BookingPath == "" {
		return span
	}
	return fmt.Sprintf("[%s](%s)", span, absoluteSiteURL(showtime.BookingPath))
}

// agendaURL links the embed title straight to the agenda section of the
// movie's detail page.
func agendaURL(detailPath string) string {
	if detailPath == "" {
		return ""
	}
	return absoluteSiteURL(detailPath) + detailAnchor
}

// absoluteSiteURL resolves site-relative hrefs; absolute URLs pass through.
func absoluteSiteURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return siteBaseURL + path
}

func buildMentions(roleIDs []string) string {
	if len(roleIDs) == 0 {
		return ""
	}
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}
	return strings.Join(mentions, " ") + "\n"
}
