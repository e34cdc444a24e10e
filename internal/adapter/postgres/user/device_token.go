package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

const deviceTokenColumns = `token, user_id, platform, created_at`

// A token re-registered by another account moves to that account.
const upsertDeviceTokenSQL = `
INSERT INTO device_tokens (token, user_id, platform)
VALUES ($1, $2, $3)
ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform
RETURNING ` + deviceTokenColumns

const listDeviceTokensSQL = `
SELECT ` + deviceTokenColumns + `
FROM device_tokens
WHERE user_id = $1
ORDER BY created_at`

const deleteDeviceTokenSQL = `DELETE FROM device_tokens WHERE user_id = $1 AND token = $2`

const deleteDeviceTokensSQL = `DELETE FROM device_tokens WHERE token = ANY($1)`

// UpsertDeviceToken registers a push token for the user.
func (r *Repo) UpsertDeviceToken(ctx context.Context, t *domain.DeviceToken) (*domain.DeviceToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertDeviceTokenSQL, t.Token, t.UserID, string(t.Platform))
	saved, err := scanDeviceToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "device_token", t.UserID)
	}
	return saved, nil
}

// ListDeviceTokens returns the user's push tokens, oldest first.
func (r *Repo) ListDeviceTokens(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDeviceTokensSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list device_tokens: %w", err)
	}
	defer rows.Close()

	tokens := []domain.DeviceToken{}
	for rows.Next() {
		t, err := scanDeviceToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device_token: %w", err)
		}
		tokens = append(tokens, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list device_tokens: %w", err)
	}
	return tokens, nil
}

// DeleteDeviceToken removes one of the user's tokens.
// Returns domain.ErrNotFound if the user has no such token.
func (r *Repo) DeleteDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteDeviceTokenSQL, userID, token)
	if err != nil {
		return postgres.MapError(err, "device_token", userID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("device_token for user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// DeleteDeviceTokens removes the given tokens regardless of owner.
// Used to prune tokens a push provider reported as no longer valid.
func (r *Repo) DeleteDeviceTokens(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteDeviceTokensSQL, tokens)
	if err != nil {
		return 0, fmt.Errorf("delete device_tokens: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

func scanDeviceToken(row pgx.Row) (*domain.DeviceToken, error) {
	var (
		t        domain.DeviceToken
		platform string
	)
	if err := row.Scan(&t.Token, &t.UserID, &platform, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Platform = domain.DevicePlatform(platform)
	return &t, nil
}
