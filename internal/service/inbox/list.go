package inbox

import (
	"context"
	"fmt"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// ListResult is a page of notifications plus the total unread count.
type ListResult struct {
	Items  []domain.Notification
	Unread int
}

// List returns the authenticated user's notifications, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, err := s.notifications.List(ctx, userID, domain.NotificationFilter{
		UnreadOnly: input.UnreadOnly,
		Type:       input.Type,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	return &ListResult{Items: items, Unread: unread}, nil
}
