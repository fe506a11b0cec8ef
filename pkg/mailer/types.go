package mailer

import (
	"context"
	"time"
)

// IMailer is the external delivery capability. A send either returns the
// provider message id or an error; the engine never retries here, the next
// cadence tick re-evaluates naturally.
type IMailer interface {
	Send(ctx context.Context, msg Message) (string, error)
	Close() error
}

// Message is one outbound email.
type Message struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	CC       []string `json:"cc,omitempty"`
	BCC      []string `json:"bcc,omitempty"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
	TextBody string   `json:"text_body"`
}

// Config contains the provider endpoint configuration.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// sendResponse is the provider's reply to a send request.
type sendResponse struct {
	MessageID string `json:"message_id"`
}
