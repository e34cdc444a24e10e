// Package person implements the Person repository using PostgreSQL.
package person

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

// Repo provides person persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new person repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const personColumns = `id, owner_id, name, email, phone, linked_user_id, created_at`

const createSQL = `
INSERT INTO people (id, owner_id, name, email, phone, linked_user_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + personColumns

const getByIDSQL = `SELECT ` + personColumns + ` FROM people WHERE owner_id = $1 AND id = $2`

const listSQL = `SELECT ` + personColumns + ` FROM people WHERE owner_id = $1 ORDER BY name, created_at`

const getSelfSQL = `SELECT ` + personColumns + ` FROM people WHERE owner_id = $1 AND linked_user_id = $1`

// Create inserts a new person.
func (r *Repo) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL,
		p.ID, p.OwnerID, p.Name, p.Email, p.Phone, p.LinkedUserID, now,
	)

	created, err := scanPerson(row)
	if err != nil {
		return nil, postgres.MapError(err, "person", p.ID)
	}
	return created, nil
}

// GetByID returns a person owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Person, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(querier.QueryRow(ctx, getByIDSQL, ownerID, id))
	if err != nil {
		return nil, postgres.MapError(err, "person", id)
	}
	return p, nil
}

// List returns all people owned by ownerID ordered by name.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Person, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := make([]domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

// GetSelf returns the owner's own person record (linked_user_id = owner).
func (r *Repo) GetSelf(ctx context.Context, ownerID uuid.UUID) (*domain.Person, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPerson(querier.QueryRow(ctx, getSelfSQL, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "self person", ownerID)
	}
	return p, nil
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Email, &p.Phone, &p.LinkedUserID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
