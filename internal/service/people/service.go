// Package people manages the owner's contact records.
package people

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

type personRepo interface {
	Create(ctx context.Context, p *domain.Person) (*domain.Person, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Person, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Person, error)
}

// Service provides person management operations.
type Service struct {
	people personRepo
	log    *slog.Logger
}

// NewService creates a new people service.
func NewService(log *slog.Logger, people personRepo) *Service {
	return &Service{
		people: people,
		log:    log.With("service", "people"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
