// Package user implements the signed-in user's profile and push device registry.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// deviceRepo defines the device token persistence needed by user service.
type deviceRepo interface {
	UpsertDeviceToken(ctx context.Context, t *domain.DeviceToken) (*domain.DeviceToken, error)
	ListDeviceTokens(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error)
	DeleteDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}

// Service implements user profile and device operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	devices deviceRepo
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	devices deviceRepo,
) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		devices: devices,
	}
}
