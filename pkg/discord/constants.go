package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// UserAgent is sent with every webhook request.
	UserAgent = "crm-alert-srv/1.0"

	// DefaultTimeout is the HTTP timeout per webhook request.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryCount is how many times a failed request is retried.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the pause between retries.
	DefaultRetryDelay = 2 * time.Second
	// DefaultUsername is the webhook display name.
	DefaultUsername = "CRM Alert Engine"

	// Discord payload limits.
	MaxMessageLength  = 2000
	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096

	// ReportBugTitle heads every error report embed.
	ReportBugTitle = "Alert Engine Error Report"
)

// Embed colors per message type.
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xFFA500
	ColorError   = 0xFF0000
)
