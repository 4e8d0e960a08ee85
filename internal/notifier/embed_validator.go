package notifier

import "unicode/utf8"

// Discord embed hard limits. Oversized content is truncated rather than
// rejected: a trimmed notification still reaches the user, a rejected one
// does not.
const (
	maxEmbedTitleLength       = 256
	maxEmbedDescriptionLength = 4096
	maxEmbedFields            = 25
	maxEmbedFieldNameLength   = 256
	maxEmbedFieldValueLength  = 1024
	maxEmbedFooterTextLength  = 2048
	maxEmbedTotalLength       = 6000
)

const truncationMark = "..."

// DiscordEmbedValidator clamps Discord embed objects to the documented
// webhook limits.
type DiscordEmbedValidator struct{}

// NewDiscordEmbedValidator creates a new embed validator
func NewDiscordEmbedValidator() *DiscordEmbedValidator {
	return &DiscordEmbedValidator{}
}

// ValidateEmbed returns a copy of the embed with every part clamped to
// Discord's limits. Oversized text is truncated with "...", surplus fields
// are dropped from the end.
func (dev *DiscordEmbedValidator) ValidateEmbed(embed DiscordEmbed) DiscordEmbed {
	embed.Title = truncateText(embed.Title, maxEmbedTitleLength)
	embed.Description = truncateText(embed.Description, maxEmbedDescriptionLength)

	if len(embed.Fields) > maxEmbedFields {
		embed.Fields = embed.Fields[:maxEmbedFields]
	}
	for i := range embed.Fields {
		embed.Fields[i].Name = truncateText(embed.Fields[i].Name, maxEmbedFieldNameLength)
		embed.Fields[i].Value = truncateText(embed.Fields[i].Value, maxEmbedFieldValueLength)
	}

	if embed.Footer != nil {
		footer := *embed.Footer
		footer.Text = truncateText(footer.Text, maxEmbedFooterTextLength)
		embed.Footer = &footer
	}

	return dev.clampTotalLength(embed)
}

// clampTotalLength enforces the 6000-character budget across title,
// description, field names and values, and footer text. Trailing fields are
// dropped first; the description absorbs whatever excess remains.
func (dev *DiscordEmbedValidator) clampTotalLength(embed DiscordEmbed) DiscordEmbed {
	for len(embed.Fields) > 0 && embedLength(embed) > maxEmbedTotalLength {
		embed.Fields = embed.Fields[:len(embed.Fields)-1]
	}
	if over := embedLength(embed) - maxEmbedTotalLength; over > 0 {
		embed.Description = truncateText(embed.Description, len(embed.Description)-over)
	}
	return embed
}

func embedLength(embed DiscordEmbed) int {
	total := len(embed.Title) + len(embed.Description)
	for _, field := range embed.Fields {
		total += len(field.Name) + len(field.Value)
	}
	if embed.Footer != nil {
		total += len(embed.Footer.Text)
	}
	return total
}

// truncateText shortens s to at most max bytes, appending "..." and never
// splitting a UTF-8 sequence.
func truncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= len(truncationMark) {
		return truncationMark[:max]
	}
	cut := max - len(truncationMark)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMark
}
