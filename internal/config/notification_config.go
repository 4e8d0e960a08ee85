package config

// NotificationConfig defines configuration for Discord notifications. The
// webhook URL is intentionally not file-configurable: it embeds a secret
// token and comes exclusively from the DISCORD_WEBHOOK_URL environment
// variable.
type NotificationConfig struct {
	WebhookURL     string   `json:"-" yaml:"-" validate:"omitempty,url"`
	Username       string   `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL      string   `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	FooterText     string   `json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	MentionRoleIDs []string `json:"mention_role_ids,omitempty" yaml:"mention_role_ids,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		WebhookURL:     "",
		Username:       DefaultNotificationUsername,
		AvatarURL:      "",
		FooterText:     DefaultNotificationFooter,
		MentionRoleIDs: []string{},
	}
}
