// Package email implements outbound email senders.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/memoir-backend/internal/adapter/provider"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// HTTPSender delivers email through a JSON HTTP API.
type HTTPSender struct {
	client *provider.JSONClient
	from   string
	log    *slog.Logger
}

// NewHTTPSender creates an API sender. apiKey is sent as a bearer token.
func NewHTTPSender(endpoint, apiKey, from string, timeout time.Duration, logger *slog.Logger) *HTTPSender {
	return &HTTPSender{
		client: provider.NewJSONClient(endpoint, apiKey, timeout),
		from:   from,
		log:    logger.With("adapter", "email_http"),
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send delivers one email.
func (s *HTTPSender) Send(ctx context.Context, msg domain.Email) error {
	req := sendRequest{From: s.from, To: []string{msg.To}, Subject: msg.Subject, Text: msg.Text}
	if err := s.client.Post(ctx, req, nil); err != nil {
		s.log.ErrorContext(ctx, "email send failed", slog.String("error", err.Error()))
		return fmt.Errorf("email: %w", err)
	}
	return nil
}

// LogSender writes emails to the log instead of sending them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender for development environments.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "email_log")}
}

// Send logs the email and always succeeds.
func (s *LogSender) Send(ctx context.Context, msg domain.Email) error {
	s.log.InfoContext(ctx, "email (not sent)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text))
	return nil
}
