// Package reminderlog implements the reminder log used for the per-owner
// daily reminder cap.
package reminderlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// Repo provides reminder log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO reminder_log (id, assignment_id, owner_id, channel, sent_at)
VALUES ($1, $2, $3, $4, $5)`

const deleteSQL = `DELETE FROM reminder_log WHERE id = $1`

const countSinceSQL = `SELECT count(*) FROM reminder_log WHERE owner_id = $1 AND sent_at >= $2`

const purgeSQL = `DELETE FROM reminder_log WHERE sent_at < $1`

// Insert records a reminder.
func (r *Repo) Insert(ctx context.Context, e *domain.ReminderLogEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL, e.ID, e.AssignmentID, e.OwnerID, string(e.Channel), e.SentAt)
	if err != nil {
		return postgres.MapError(err, "reminder_log", e.ID)
	}
	return nil
}

// Delete removes a reminder entry whose dispatch failed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "reminder_log", id)
	}
	return nil
}

// CountForOwnerSince counts the owner's reminders sent at or after since.
// Run inside the transaction that holds the owner lock to get a stable count.
func (r *Repo) CountForOwnerSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSinceSQL, ownerID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reminders for owner %s: %w", ownerID, err)
	}
	return n, nil
}

// PurgeOlderThan deletes entries sent before cutoff and returns how many.
func (r *Repo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, purgeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge reminder_log: %w", err)
	}
	return ct.RowsAffected(), nil
}
