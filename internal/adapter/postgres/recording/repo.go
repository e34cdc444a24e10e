// Package recording implements the Recording repository using PostgreSQL.
package recording

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// Unique constraints a concurrent intake can lose on.
const (
	AssignmentConstraint  = "recordings_assignment_id_key"
	IdempotencyConstraint = "recordings_idempotency_key_key"
)

// Repo provides recording persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recording repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recordingColumns = `id, assignment_id, person_id, blob_key, content_type, size_bytes,
       duration_seconds, idempotency_key, recorded_at`

const createSQL = `
INSERT INTO recordings (id, assignment_id, person_id, blob_key, content_type, size_bytes,
                        duration_seconds, idempotency_key, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + recordingColumns

const getByAssignmentSQL = `SELECT ` + recordingColumns + ` FROM recordings WHERE assignment_id = $1`

const getByIdempotencyKeySQL = `SELECT ` + recordingColumns + ` FROM recordings WHERE idempotency_key = $1`

const deleteByAssignmentSQL = `DELETE FROM recordings WHERE assignment_id = $1 RETURNING blob_key`

const blobKeysByQuestionSQL = `
SELECT r.blob_key
FROM recordings r
JOIN assignments a ON a.id = r.assignment_id
WHERE a.question_id = $1`

// Create inserts a recording. A second recording for the same assignment
// returns domain.ErrAlreadyAnswered; a reused idempotency key returns
// domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		rec.ID, rec.AssignmentID, rec.PersonID, rec.BlobKey, rec.ContentType, rec.SizeBytes,
		rec.DurationSeconds, rec.IdempotencyKey, rec.RecordedAt,
	)
	created, err := scanRecording(row)
	if err != nil {
		return nil, mapCreateError(err, rec)
	}
	return created, nil
}

// GetByAssignment returns the assignment's recording.
func (r *Repo) GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Recording, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecording(querier.QueryRow(ctx, getByAssignmentSQL, assignmentID))
	if err != nil {
		return nil, postgres.MapError(err, "recording for assignment", assignmentID)
	}
	return rec, nil
}

// GetByIdempotencyKey returns the recording stored under key.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Recording, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecording(querier.QueryRow(ctx, getByIdempotencyKeySQL, key))
	if err != nil {
		return nil, postgres.MapError(err, "recording by idempotency key", uuid.Nil)
	}
	return rec, nil
}

// DeleteByAssignment removes the assignment's recording and returns its blob key.
func (r *Repo) DeleteByAssignment(ctx context.Context, assignmentID uuid.UUID) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var key string
	if err := querier.QueryRow(ctx, deleteByAssignmentSQL, assignmentID).Scan(&key); err != nil {
		return "", postgres.MapError(err, "recording for assignment", assignmentID)
	}
	return key, nil
}

// BlobKeysByQuestion lists the blob keys of every recording under a question.
func (r *Repo) BlobKeysByQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, blobKeysByQuestionSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("list blob keys: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list blob keys: %w", err)
	}
	return keys, nil
}

func mapCreateError(err error, rec *domain.Recording) error {
	switch {
	case postgres.IsUniqueViolation(err, AssignmentConstraint):
		return fmt.Errorf("recording for assignment %s: %w", rec.AssignmentID, domain.ErrAlreadyAnswered)
	case postgres.IsUniqueViolation(err, IdempotencyConstraint):
		return fmt.Errorf("recording idempotency key: %w", domain.ErrConflict)
	default:
		return postgres.MapError(err, "recording", rec.ID)
	}
}

func scanRecording(row pgx.Row) (*domain.Recording, error) {
	var rec domain.Recording
	if err := row.Scan(
		&rec.ID, &rec.AssignmentID, &rec.PersonID, &rec.BlobKey, &rec.ContentType, &rec.SizeBytes,
		&rec.DurationSeconds, &rec.IdempotencyKey, &rec.RecordedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
