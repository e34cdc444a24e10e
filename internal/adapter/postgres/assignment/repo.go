// Package assignment implements the Assignment repository using PostgreSQL.
// Status transitions are single guarded UPDATE statements; callers that need
// read-check-write sequences take the row lock with LockForUpdate first.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// LinkTokenConstraint is the unique constraint on assignments.link_token.
const LinkTokenConstraint = "assignments_link_token_key"

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const assignmentColumns = `id, question_id, person_id, link_token, status, sent_at, viewed_at,
       answered_at, reminder_count, last_reminder_at, created_at`

const contextColumns = `a.id, a.question_id, a.person_id, a.link_token, a.status, a.sent_at, a.viewed_at,
       a.answered_at, a.reminder_count, a.last_reminder_at, a.created_at,
       q.id, q.journal_id, q.text, q.source, q.display_order, q.created_at,
       p.id, p.owner_id, p.name, p.email, p.phone, p.linked_user_id, p.created_at,
       j.owner_id, u.name, u.email`

const contextFrom = `
FROM assignments a
JOIN questions q ON q.id = a.question_id
JOIN journals j  ON j.id = q.journal_id
JOIN people p    ON p.id = a.person_id
JOIN users u     ON u.id = j.owner_id`

// The pair conflict is absorbed so a duplicate create returns no row;
// a link_token collision still raises a unique violation.
const createSQL = `
INSERT INTO assignments (id, question_id, person_id, link_token, status, created_at)
VALUES ($1, $2, $3, $4, 'pending', $5)
ON CONFLICT (question_id, person_id) DO NOTHING
RETURNING ` + assignmentColumns

const getByIDSQL = `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

const getByPairSQL = `SELECT ` + assignmentColumns + ` FROM assignments WHERE question_id = $1 AND person_id = $2`

const getContextSQL = `SELECT ` + contextColumns + contextFrom + ` WHERE a.id = $1`

const getContextByTokenSQL = `SELECT ` + contextColumns + contextFrom + ` WHERE a.link_token = $1`

const lockSQL = `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1 FOR UPDATE`

// viewed is never demoted back to sent by a resend.
const markSentSQL = `
UPDATE assignments
SET status  = CASE WHEN status = 'pending' THEN 'sent' ELSE status END,
    sent_at = $2
WHERE id = $1 AND status <> 'answered'
RETURNING ` + assignmentColumns

const markViewedSQL = `
UPDATE assignments
SET status    = CASE WHEN status = 'answered' THEN status ELSE 'viewed' END,
    viewed_at = $2
WHERE id = $1 AND viewed_at IS NULL
RETURNING ` + assignmentColumns

const applyReminderSQL = `
UPDATE assignments
SET reminder_count   = reminder_count + 1,
    last_reminder_at = $2
WHERE id = $1 AND status <> 'answered'
RETURNING ` + assignmentColumns

// Only undoes the reminder if nothing else touched the counters since.
const rollbackReminderSQL = `
UPDATE assignments
SET reminder_count   = reminder_count - 1,
    last_reminder_at = $4
WHERE id = $1 AND reminder_count = $2 AND last_reminder_at = $3`

const markAnsweredSQL = `
UPDATE assignments
SET status      = 'answered',
    answered_at = $2
WHERE id = $1 AND status <> 'answered'
RETURNING ` + assignmentColumns

const revertToSentSQL = `
UPDATE assignments
SET status      = 'sent',
    answered_at = NULL
WHERE id = $1 AND status = 'answered'
RETURNING ` + assignmentColumns

const deleteSQL = `DELETE FROM assignments WHERE id = $1`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Create inserts a pending assignment stamped with a.CreatedAt (now when
// zero). If one already exists for the
// (question, person) pair it is returned with created=false. A link token
// collision surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC().Truncate(time.Microsecond)

	created, err := scanAssignment(querier.QueryRow(ctx, createSQL, a.ID, a.QuestionID, a.PersonID, a.LinkToken, createdAt))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "assignment", a.ID)
	}

	existing, err := r.GetByQuestionAndPerson(ctx, a.QuestionID, a.PersonID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByID returns an assignment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	return a, nil
}

// GetByQuestionAndPerson returns the assignment for the pair.
func (r *Repo) GetByQuestionAndPerson(ctx context.Context, questionID, personID uuid.UUID) (*domain.Assignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, getByPairSQL, questionID, personID))
	if err != nil {
		return nil, postgres.MapError(err, "assignment for question", questionID)
	}
	return a, nil
}

// GetContext returns the assignment joined with its question, person, and owner.
func (r *Repo) GetContext(ctx context.Context, id uuid.UUID) (*domain.AssignmentContext, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ac, err := scanContext(querier.QueryRow(ctx, getContextSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	return ac, nil
}

// GetContextByToken resolves a public link token.
func (r *Repo) GetContextByToken(ctx context.Context, token string) (*domain.AssignmentContext, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ac, err := scanContext(querier.QueryRow(ctx, getContextByTokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "assignment link", uuid.Nil)
	}
	return ac, nil
}

// LockForUpdate re-reads the assignment holding a row lock until the
// surrounding transaction ends.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("assignment %s: lock requires a transaction", id)
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, lockSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

// MarkSent records a send at sentAt. pending becomes sent; sent and viewed keep
// their status. Returns domain.ErrAlreadyAnswered for answered assignments.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) (*domain.Assignment, error) {
	return r.transition(ctx, id, markSentSQL, sentAt)
}

// MarkViewed sets viewedAt once. changed is false when it was already set.
func (r *Repo) MarkViewed(ctx context.Context, id uuid.UUID, viewedAt time.Time) (*domain.Assignment, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, markViewedSQL, id, viewedAt))
	if err == nil {
		return a, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "assignment", id)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

// ApplyReminder increments reminderCount and stamps lastReminderAt.
func (r *Repo) ApplyReminder(ctx context.Context, id uuid.UUID, remindedAt time.Time) (*domain.Assignment, error) {
	return r.transition(ctx, id, applyReminderSQL, remindedAt)
}

// RollbackReminder undoes an ApplyReminder whose dispatch failed. It is a
// no-op (false) when the counters moved on since applied was returned.
func (r *Repo) RollbackReminder(ctx context.Context, applied *domain.Assignment, previousReminderAt *time.Time) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, rollbackReminderSQL,
		applied.ID, applied.ReminderCount, applied.LastReminderAt, previousReminderAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "assignment", applied.ID)
	}
	return ct.RowsAffected() == 1, nil
}

// MarkAnswered moves the assignment to answered.
// Returns domain.ErrAlreadyAnswered if it already is.
func (r *Repo) MarkAnswered(ctx context.Context, id uuid.UUID, answeredAt time.Time) (*domain.Assignment, error) {
	return r.transition(ctx, id, markAnsweredSQL, answeredAt)
}

// RevertToSent undoes an answer after its recording was deleted.
// Returns domain.ErrValidation if the assignment is not answered.
func (r *Repo) RevertToSent(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, revertToSentSQL, id))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "assignment", id)
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("assignment %s is not answered: %w", id, domain.ErrValidation)
}

// Delete removes the assignment; its recording and reminder log cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "assignment", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// transition runs a guarded UPDATE whose only failing guard is
// status <> 'answered'. No row means not found or already answered.
func (r *Repo) transition(ctx context.Context, id uuid.UUID, sql string, at time.Time) (*domain.Assignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAssignment(querier.QueryRow(ctx, sql, id, at))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "assignment", id)
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("assignment %s: %w", id, domain.ErrAlreadyAnswered)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a      domain.Assignment
		status string
	)
	if err := row.Scan(
		&a.ID, &a.QuestionID, &a.PersonID, &a.LinkToken, &status, &a.SentAt, &a.ViewedAt,
		&a.AnsweredAt, &a.ReminderCount, &a.LastReminderAt, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = domain.AssignmentStatus(status)
	return &a, nil
}

func scanContext(row pgx.Row) (*domain.AssignmentContext, error) {
	var (
		ac             domain.AssignmentContext
		status, source string
	)
	a, q, p := &ac.Assignment, &ac.Question, &ac.Person
	if err := row.Scan(
		&a.ID, &a.QuestionID, &a.PersonID, &a.LinkToken, &status, &a.SentAt, &a.ViewedAt,
		&a.AnsweredAt, &a.ReminderCount, &a.LastReminderAt, &a.CreatedAt,
		&q.ID, &q.JournalID, &q.Text, &source, &q.DisplayOrder, &q.CreatedAt,
		&p.ID, &p.OwnerID, &p.Name, &p.Email, &p.Phone, &p.LinkedUserID, &p.CreatedAt,
		&ac.OwnerID, &ac.OwnerName, &ac.OwnerEmail,
	); err != nil {
		return nil, err
	}
	a.Status = domain.AssignmentStatus(status)
	q.Source = domain.QuestionSource(source)
	ac.JournalID = q.JournalID
	return &ac, nil
}
