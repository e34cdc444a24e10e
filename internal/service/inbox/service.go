// Package inbox implements the owner's in-app notification inbox.
package inbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type notificationRepo interface {
	List(ctx context.Context, recipientID uuid.UUID, f domain.NotificationFilter) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int64, error)
}

// Service provides in-app notification operations.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new inbox service.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "inbox"),
	}
}
