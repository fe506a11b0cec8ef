package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crm-alert-srv/pkg/log"

	"github.com/friendsofgo/errors"
)

const (
	// DefaultTimeout bounds one send request.
	DefaultTimeout = 30 * time.Second
	// UserAgent is sent with every provider request.
	UserAgent = "crm-alert-srv/1.0"
)

var (
	ErrEndpointRequired = errors.New("mailer: endpoint is required")
	ErrEmptyRecipient   = errors.New("mailer: to address is required")
)

type mailerImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}

// New builds an HTTP mail provider client.
func New(l log.Logger, cfg Config) (IMailer, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &mailerImpl{
		l:   l,
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}

// Send posts the message to the provider and returns its message id.
func (m *mailerImpl) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrEmptyRecipient
	}

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if m.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed sendResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}
	if parsed.MessageID == "" {
		return "", fmt.Errorf("mail provider returned empty message id")
	}
	return parsed.MessageID, nil
}

func (m *mailerImpl) Close() error {
	if m.client != nil {
		m.client.CloseIdleConnections()
	}
	return nil
}
