// Package notification implements the in-app Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var notificationColumns = []string{
	"id", "recipient_id", "type", "assignment_id", "recording_id",
	"title", "body", "dedupe_key", "read_at", "created_at",
}

const insertSQL = `
INSERT INTO notifications (id, recipient_id, type, assignment_id, recording_id, title, body, dedupe_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (recipient_id, type, dedupe_key) DO NOTHING`

const countUnreadSQL = `SELECT count(*) FROM notifications WHERE recipient_id = $1 AND read_at IS NULL`

const markReadSQL = `
UPDATE notifications
SET read_at = COALESCE(read_at, $3)
WHERE recipient_id = $1 AND id = $2`

const markAllReadSQL = `
UPDATE notifications
SET read_at = $2
WHERE recipient_id = $1 AND read_at IS NULL`

const deleteReadOlderThanSQL = `DELETE FROM notifications WHERE read_at IS NOT NULL AND read_at < $1`

func normalize(f *domain.NotificationFilter) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Insert stores the notification unless one with the same
// (recipient, type, dedupe key) exists. created reports which happened.
func (r *Repo) Insert(ctx context.Context, n *domain.Notification) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, insertSQL,
		n.ID, n.RecipientID, string(n.Type), n.AssignmentID, n.RecordingID,
		n.Title, n.Body, n.DedupeKey, n.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "notification", n.ID)
	}
	return ct.RowsAffected() == 1, nil
}

// List returns the recipient's notifications, newest first.
func (r *Repo) List(ctx context.Context, recipientID uuid.UUID, f domain.NotificationFilter) ([]domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	normalize(&f)

	query := postgres.Builder().
		Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	if f.UnreadOnly {
		query = query.Where(squirrel.Eq{"read_at": nil})
	}
	if f.Type != nil {
		query = query.Where(squirrel.Eq{"type": string(*f.Type)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for the recipient.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countUnreadSQL, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead sets readAt on one notification. Already-read notifications keep
// their original readAt.
func (r *Repo) MarkRead(ctx context.Context, recipientID, id uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markReadSQL, recipientID, id, at)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient as read.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markAllReadSQL, recipientID, at)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return ct.RowsAffected(), nil
}

// DeleteReadOlderThan removes notifications read before cutoff.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteReadOlderThanSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return ct.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n   domain.Notification
		typ string
	)
	if err := row.Scan(
		&n.ID, &n.RecipientID, &typ, &n.AssignmentID, &n.RecordingID,
		&n.Title, &n.Body, &n.DedupeKey, &n.ReadAt, &n.CreatedAt,
	); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(typ)
	return &n, nil
}
