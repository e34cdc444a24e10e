// Package sms implements outbound SMS senders.
package sms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/memoir-backend/internal/adapter/provider"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// HTTPSender delivers SMS through a JSON HTTP gateway.
type HTTPSender struct {
	client *provider.JSONClient
	from   string
	log    *slog.Logger
}

// NewHTTPSender creates a gateway sender. apiKey is sent as a bearer token.
func NewHTTPSender(endpoint, apiKey, from string, timeout time.Duration, logger *slog.Logger) *HTTPSender {
	return &HTTPSender{
		client: provider.NewJSONClient(endpoint, apiKey, timeout),
		from:   from,
		log:    logger.With("adapter", "sms_http"),
	}
}

type sendRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Body string `json:"body"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send delivers one message.
func (s *HTTPSender) Send(ctx context.Context, msg domain.SMS) error {
	var resp sendResponse
	err := s.client.Post(ctx, sendRequest{From: s.from, To: msg.To, Body: msg.Body}, &resp)
	if err != nil {
		s.log.ErrorContext(ctx, "sms send failed", slog.String("error", err.Error()))
		return fmt.Errorf("sms: %w", err)
	}

	s.log.DebugContext(ctx, "sms sent", slog.String("provider_id", resp.ID))
	return nil
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender for development environments.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "sms_log")}
}

// Send logs the message and always succeeds.
func (s *LogSender) Send(ctx context.Context, msg domain.SMS) error {
	s.log.InfoContext(ctx, "sms (not sent)", slog.String("to", msg.To), slog.String("body", msg.Body))
	return nil
}
