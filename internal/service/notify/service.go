// Package notify turns assignment transitions into outbound messages and
// in-app notification records.
package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

type smsSender interface {
	Send(ctx context.Context, msg domain.SMS) error
}

type emailSender interface {
	Send(ctx context.Context, msg domain.Email) error
}

type pushSender interface {
	Send(ctx context.Context, msg domain.Push) error
}

type deviceRepo interface {
	ListDeviceTokens(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error)
	DeleteDeviceTokens(ctx context.Context, tokens []string) (int, error)
}

type notificationRepo interface {
	Insert(ctx context.Context, n *domain.Notification) (bool, error)
}

// maxPushFanout bounds concurrent push requests for one owner.
const maxPushFanout = 8

// Dispatcher fans transitions out to the configured senders.
type Dispatcher struct {
	log           *slog.Logger
	sms           smsSender
	email         emailSender
	push          pushSender
	devices       deviceRepo
	notifications notificationRepo
	publicBaseURL string
}

// NewDispatcher creates a dispatcher. publicBaseURL prefixes recording links.
func NewDispatcher(
	logger *slog.Logger,
	sms smsSender,
	email emailSender,
	push pushSender,
	devices deviceRepo,
	notifications notificationRepo,
	publicBaseURL string,
) *Dispatcher {
	return &Dispatcher{
		log:           logger.With("service", "notify"),
		sms:           sms,
		email:         email,
		push:          push,
		devices:       devices,
		notifications: notifications,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// RecordLink returns the public recording URL for a link token.
func (d *Dispatcher) RecordLink(token string) string {
	return d.publicBaseURL + "/record/" + token
}
