package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// RegisterDevice stores a push token for the authenticated user. A token
// already registered to another account moves to this one.
func (s *Service) RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*domain.DeviceToken, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.devices.UpsertDeviceToken(ctx, &domain.DeviceToken{
		Token:     strings.TrimSpace(input.Token),
		UserID:    userID,
		Platform:  input.Platform,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("user.RegisterDevice: %w", err)
	}

	s.log.InfoContext(ctx, "device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", input.Platform.String()),
	)

	return token, nil
}

// ListDevices returns the authenticated user's registered devices.
func (s *Service) ListDevices(ctx context.Context) ([]domain.DeviceToken, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tokens, err := s.devices.ListDeviceTokens(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.ListDevices: %w", err)
	}
	return tokens, nil
}

// DeleteDevice removes one of the authenticated user's push tokens.
// Returns ErrNotFound if the token is not registered to the user.
func (s *Service) DeleteDevice(ctx context.Context, token string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.NewValidationError("token", "required")
	}

	if err := s.devices.DeleteDeviceToken(ctx, userID, token); err != nil {
		return fmt.Errorf("user.DeleteDevice: %w", err)
	}

	s.log.InfoContext(ctx, "device removed", slog.String("user_id", userID.String()))
	return nil
}
