package people

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// CreatePerson adds a contact record for the authenticated user.
func (s *Service) CreatePerson(ctx context.Context, input CreatePersonInput) (*domain.Person, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := trimOrNil(input.Email)
	if email != nil {
		lower := strings.ToLower(*email)
		email = &lower
	}
	phone := trimOrNil(input.Phone)
	if phone != nil {
		normalized := normalizePhone(*phone)
		phone = &normalized
	}

	person, err := s.people.Create(ctx, &domain.Person{
		ID:        uuid.New(),
		OwnerID:   userID,
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}

	s.log.InfoContext(ctx, "person created",
		slog.String("user_id", userID.String()),
		slog.String("person_id", person.ID.String()),
	)

	return person, nil
}

// GetPerson returns one of the authenticated user's people.
func (s *Service) GetPerson(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	person, err := s.people.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return person, nil
}

// ListPeople returns the authenticated user's people ordered by name.
func (s *Service) ListPeople(ctx context.Context) ([]domain.Person, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	people, err := s.people.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}
