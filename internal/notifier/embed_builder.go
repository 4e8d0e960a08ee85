package notifier

import (
	"time"
)

// DiscordEmbedBuilder helps in constructing DiscordEmbed objects.
type DiscordEmbedBuilder struct {
	embed     DiscordEmbed
	validator *DiscordEmbedValidator
}

// NewDiscordEmbedBuilder creates a new Discord embed builder
func NewDiscordEmbedBuilder() *DiscordEmbedBuilder {
	return &DiscordEmbedBuilder{
		embed:     DiscordEmbed{},
		validator: NewDiscordEmbedValidator(),
	}
}

// WithTitle sets the embed title
func (deb *DiscordEmbedBuilder) WithTitle(title string) *DiscordEmbedBuilder {
	deb.embed.Title = title
	return deb
}

// WithDescription sets the embed description
func (deb *DiscordEmbedBuilder) WithDescription(description string) *DiscordEmbedBuilder {
	deb.embed.Description = description
	return deb
}

// WithURL sets the URL the embed title links to
func (deb *DiscordEmbedBuilder) WithURL(url string) *DiscordEmbedBuilder {
	deb.embed.URL = url
	return deb
}

// WithTimestamp sets the embed timestamp
func (deb *DiscordEmbedBuilder) WithTimestamp(timestamp time.Time) *DiscordEmbedBuilder {
	deb.embed.Timestamp = timestamp.Format(time.RFC3339)
	return deb
}

// WithColor sets the embed color
func (deb *DiscordEmbedBuilder) WithColor(color int) *DiscordEmbedBuilder {
	deb.embed.Color = color
	return deb
}

// WithFooter sets the embed footer
func (deb *DiscordEmbedBuilder) WithFooter(text, iconURL string) *DiscordEmbedBuilder {
	deb.embed.Footer = NewDiscordEmbedFooter(text, iconURL)
	return deb
}

// WithThumbnail sets the embed thumbnail
func (deb *DiscordEmbedBuilder) WithThumbnail(url string) *DiscordEmbedBuilder {
	if url != "" {
		deb.embed.Thumbnail = NewDiscordEmbedThumbnail(url)
	}
	return deb
}

// AddField adds a field to the embed
func (deb *DiscordEmbedBuilder) AddField(name, value string, inline bool) *DiscordEmbedBuilder {
	field := NewDiscordEmbedField(name, value, inline)
	deb.embed.Fields = append(deb.embed.Fields, field)
	return deb
}

// FieldCount returns the number of fields added so far.
func (deb *DiscordEmbedBuilder) FieldCount() int {
	return len(deb.embed.Fields)
}

// Build returns the embed clamped to Discord's limits.
func (deb *DiscordEmbedBuilder) Build() DiscordEmbed {
	return deb.validator.ValidateEmbed(deb.embed)
}
