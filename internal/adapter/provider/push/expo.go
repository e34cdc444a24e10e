// Package push implements push notification senders.
package push

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/memoir-backend/internal/adapter/provider"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// errDeviceNotRegistered is the Expo ticket error for a token that can no
// longer receive notifications.
const errDeviceNotRegistered = "DeviceNotRegistered"

// ExpoSender delivers notifications through the Expo push API.
type ExpoSender struct {
	client *provider.JSONClient
	log    *slog.Logger
}

// NewExpoSender creates an Expo sender. accessToken may be empty when
// enhanced push security is disabled for the project.
func NewExpoSender(endpoint, accessToken string, timeout time.Duration, logger *slog.Logger) *ExpoSender {
	return &ExpoSender{
		client: provider.NewJSONClient(endpoint, accessToken, timeout),
		log:    logger.With("adapter", "expo_push"),
	}
}

type expoMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title,omitempty"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

type expoTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data expoTicket `json:"data"`
}

// Send delivers one notification. A token the provider reports as
// unregistered yields an error wrapping domain.ErrInvalidDeviceToken.
func (s *ExpoSender) Send(ctx context.Context, msg domain.Push) error {
	var resp expoResponse
	err := s.client.Post(ctx, expoMessage{
		To:    msg.Token,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
		Sound: "default",
	}, &resp)
	if err != nil {
		s.log.ErrorContext(ctx, "expo push failed", slog.String("error", err.Error()))
		return fmt.Errorf("push: %w", err)
	}

	ticket := resp.Data
	if ticket.Status == "ok" {
		return nil
	}
	if ticket.Details.Error == errDeviceNotRegistered {
		return fmt.Errorf("push: %s: %w", ticket.Message, domain.ErrInvalidDeviceToken)
	}

	s.log.WarnContext(ctx, "expo push rejected",
		slog.String("status", ticket.Status),
		slog.String("error", ticket.Details.Error),
		slog.String("message", ticket.Message))
	return fmt.Errorf("push: rejected: %s", ticket.Message)
}

// LogSender writes notifications to the log instead of sending them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender for development environments.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "push_log")}
}

// Send logs the notification and always succeeds.
func (s *LogSender) Send(ctx context.Context, msg domain.Push) error {
	s.log.InfoContext(ctx, "push (not sent)",
		slog.String("token", msg.Token),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body))
	return nil
}
