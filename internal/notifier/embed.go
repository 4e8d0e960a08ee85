package notifier

// DiscordEmbed represents a Discord embed object.
type DiscordEmbed struct {
	Title       string                 `json:"title,omitempty"`       // Title of embed
	Description string                 `json:"description,omitempty"` // Description of embed
	URL         string                 `json:"url,omitempty"`         // URL the title links to
	Timestamp   string                 `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       int                    `json:"color,omitempty"`       // Color code of the embed
	Footer      *DiscordEmbedFooter    `json:"footer,omitempty"`
	Thumbnail   *DiscordEmbedThumbnail `json:"thumbnail,omitempty"`
	Fields      []DiscordEmbedField    `json:"fields,omitempty"` // Array of embed field objects
}

// DiscordEmbedFooter represents the footer of an embed.
type DiscordEmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s))
}

// NewDiscordEmbedFooter creates a new Discord embed footer
func NewDiscordEmbedFooter(text, iconURL string) *DiscordEmbedFooter {
	return &DiscordEmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// DiscordEmbedThumbnail represents the thumbnail of an embed.
type DiscordEmbedThumbnail struct {
	URL string `json:"url"` // Source URL of thumbnail (only supports http(s))
}

// NewDiscordEmbedThumbnail creates a new Discord embed thumbnail
func NewDiscordEmbedThumbnail(url string) *DiscordEmbedThumbnail {
	return &DiscordEmbedThumbnail{URL: url}
}
