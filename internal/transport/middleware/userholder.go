package middleware

import (
	"context"

	"github.com/google/uuid"
)

type userHolderKey struct{}

// userHolder lets Auth report the resolved user back to Logger, which sits
// outside it in the chain.
type userHolder struct {
	id string
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

func reportUser(ctx context.Context, id uuid.UUID) {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		h.id = id.String()
	}
}
