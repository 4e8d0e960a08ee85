package notifier

// maxEmbedsPerMessage is Discord's limit on embeds in a single webhook call.
const maxEmbedsPerMessage = 10

// DiscordMessagePayload represents the JSON payload sent to a Discord webhook.
type DiscordMessagePayload struct {
	Content         string           `json:"content,omitempty"`    // Message content (text)
	Username        string           `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL       string           `json:"avatar_url,omitempty"` // Override the default webhook avatar
	Embeds          []DiscordEmbed   `json:"embeds,omitempty"`     // Array of embed objects
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// AllowedMentions restricts which mentions in the content may actually ping.
type AllowedMentions struct {
	Parse []string `json:"parse,omitempty"` // Mention types to parse, e.g. "roles"
	Roles []string `json:"roles,omitempty"` // Role IDs allowed to be mentioned
}
