// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const questionColumns = `id, journal_id, text, source, display_order, created_at`

// Appends at the end of the journal when display_order is not given.
const createSQL = `
INSERT INTO questions (id, journal_id, text, source, display_order, created_at)
VALUES ($1, $2, $3, $4,
        COALESCE($5, (SELECT COALESCE(MAX(display_order) + 1, 0) FROM questions WHERE journal_id = $2)),
        $6)
RETURNING ` + questionColumns

const getByIDSQL = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

const listByJournalSQL = `
SELECT ` + questionColumns + `
FROM questions
WHERE journal_id = $1
ORDER BY display_order`

// Single statement so the deferrable unique constraint is checked once at
// the end of the update, allowing positions to be swapped.
const reorderSQL = `
UPDATE questions q
SET display_order = v.ord - 1
FROM unnest($2::uuid[]) WITH ORDINALITY AS v(id, ord)
WHERE q.id = v.id AND q.journal_id = $1`

const countByJournalSQL = `SELECT count(*) FROM questions WHERE journal_id = $1`

const deleteSQL = `DELETE FROM questions WHERE journal_id = $1 AND id = $2`

// Create inserts a question. A nil order appends after the last question.
func (r *Repo) Create(ctx context.Context, q *domain.Question, order *int) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL, q.ID, q.JournalID, q.Text, string(q.Source), order, now)

	created, err := scanQuestion(row)
	if err != nil {
		return nil, postgres.MapError(err, "question", q.ID)
	}
	return created, nil
}

// GetByID returns a question by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuestion(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	return q, nil
}

// ListByJournal returns the journal's questions in display order.
func (r *Repo) ListByJournal(ctx context.Context, journalID uuid.UUID) ([]domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByJournalSQL, journalID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// Reorder assigns display orders 0..n-1 following ids. ids must name every
// question of the journal exactly once; otherwise domain.ErrValidation.
func (r *Repo) Reorder(ctx context.Context, journalID uuid.UUID, ids []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByJournalSQL, journalID).Scan(&total); err != nil {
		return postgres.MapError(err, "journal", journalID)
	}
	if total != len(ids) {
		return fmt.Errorf("reorder journal %s: got %d ids for %d questions: %w",
			journalID, len(ids), total, domain.ErrValidation)
	}

	ct, err := querier.Exec(ctx, reorderSQL, journalID, ids)
	if err != nil {
		return postgres.MapError(err, "journal", journalID)
	}
	if int(ct.RowsAffected()) != total {
		return fmt.Errorf("reorder journal %s: ids do not match questions: %w", journalID, domain.ErrValidation)
	}
	return nil
}

// Delete removes a question; its assignments and recordings cascade.
func (r *Repo) Delete(ctx context.Context, journalID, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, journalID, id)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		q      domain.Question
		source string
	)
	if err := row.Scan(&q.ID, &q.JournalID, &q.Text, &source, &q.DisplayOrder, &q.CreatedAt); err != nil {
		return nil, err
	}
	q.Source = domain.QuestionSource(source)
	return &q, nil
}
