package notifier

// DiscordMessagePayloadBuilder helps in constructing DiscordMessagePayload objects.
type DiscordMessagePayloadBuilder struct {
	payload DiscordMessagePayload
}

// NewDiscordMessagePayloadBuilder creates a new instance of DiscordMessagePayloadBuilder.
func NewDiscordMessagePayloadBuilder() *DiscordMessagePayloadBuilder {
	return &DiscordMessagePayloadBuilder{
		payload: DiscordMessagePayload{},
	}
}

// WithContent sets the Content for the DiscordMessagePayload.
func (b *DiscordMessagePayloadBuilder) WithContent(content string) *DiscordMessagePayloadBuilder {
	b.payload.Content = content
	return b
}

// WithUsername sets the Username for the DiscordMessagePayload.
func (b *DiscordMessagePayloadBuilder) WithUsername(username string) *DiscordMessagePayloadBuilder {
	b.payload.Username = username
	return b
}

// WithAvatarURL sets the AvatarURL for the DiscordMessagePayload.
func (b *DiscordMessagePayloadBuilder) WithAvatarURL(avatarURL string) *DiscordMessagePayloadBuilder {
	b.payload.AvatarURL = avatarURL
	return b
}

// WithAllowedMentions sets the AllowedMentions for the DiscordMessagePayload.
func (b *DiscordMessagePayloadBuilder) WithAllowedMentions(allowedMentions AllowedMentions) *DiscordMessagePayloadBuilder {
	b.payload.AllowedMentions = &allowedMentions
	return b
}

// AddEmbed adds a DiscordEmbed to the DiscordMessagePayload.
func (b *DiscordMessagePayloadBuilder) AddEmbed(embed DiscordEmbed) *DiscordMessagePayloadBuilder {
	b.payload.Embeds = append(b.payload.Embeds, embed)
	return b
}

// Build returns the constructed DiscordMessagePayload, keeping at most the
// first ten embeds.
func (b *DiscordMessagePayloadBuilder) Build() DiscordMessagePayload {
	payload := b.payload
	if len(payload.Embeds) > maxEmbedsPerMessage {
		payload.Embeds = payload.Embeds[:maxEmbedsPerMessage]
	}
	return payload
}
