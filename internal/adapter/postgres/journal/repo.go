// Package journal implements the Journal repository and its progress
// overview using PostgreSQL.
package journal

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

// Repo provides journal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const journalColumns = `id, owner_id, title, created_at`

const createSQL = `
INSERT INTO journals (id, owner_id, title, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + journalColumns

const getByIDSQL = `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`

const listSQL = `SELECT ` + journalColumns + ` FROM journals WHERE owner_id = $1 ORDER BY created_at DESC`

// Create inserts a new journal.
func (r *Repo) Create(ctx context.Context, j *domain.Journal) (*domain.Journal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := scanJournal(querier.QueryRow(ctx, createSQL, j.ID, j.OwnerID, j.Title, now))
	if err != nil {
		return nil, postgres.MapError(err, "journal", j.ID)
	}
	return created, nil
}

// GetByID returns a journal regardless of owner; callers check OwnerID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJournal(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "journal", id)
	}
	return j, nil
}

// List returns the owner's journals, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Journal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer rows.Close()

	journals := make([]domain.Journal, 0)
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		journals = append(journals, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// QuestionProgress returns every question of the journal in display order
// with per-status assignment counts.
func (r *Repo) QuestionProgress(ctx context.Context, journalID uuid.UUID, f domain.ProgressFilter) ([]domain.QuestionProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	join := "assignments a ON a.question_id = q.id"
	var joinArgs []any
	if f.PersonID != nil {
		join += " AND a.person_id = ?"
		joinArgs = append(joinArgs, *f.PersonID)
	}

	query := postgres.Builder().
		Select(
			"q.id", "q.journal_id", "q.text", "q.source", "q.display_order", "q.created_at",
			"COUNT(a.id) FILTER (WHERE a.status = 'pending')",
			"COUNT(a.id) FILTER (WHERE a.status = 'sent')",
			"COUNT(a.id) FILTER (WHERE a.status = 'viewed')",
			"COUNT(a.id) FILTER (WHERE a.status = 'answered')",
		).
		From("questions q").
		LeftJoin(join, joinArgs...).
		Where(squirrel.Eq{"q.journal_id": journalID}).
		GroupBy("q.id").
		OrderBy("q.display_order ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("question progress: %w", err)
	}
	defer rows.Close()

	out := make([]domain.QuestionProgress, 0)
	for rows.Next() {
		var (
			qp     domain.QuestionProgress
			source string
		)
		if err := rows.Scan(
			&qp.Question.ID, &qp.Question.JournalID, &qp.Question.Text, &source,
			&qp.Question.DisplayOrder, &qp.Question.CreatedAt,
			&qp.Counts.Pending, &qp.Counts.Sent, &qp.Counts.Viewed, &qp.Counts.Answered,
		); err != nil {
			return nil, fmt.Errorf("scan question progress: %w", err)
		}
		qp.Question.Source = domain.QuestionSource(source)
		out = append(out, qp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("question progress: %w", err)
	}
	return out, nil
}

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var j domain.Journal
	if err := row.Scan(&j.ID, &j.OwnerID, &j.Title, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}
