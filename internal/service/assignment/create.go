package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Create assigns a question to a person. It is idempotent per (question,
// person): an existing assignment is returned unchanged with created=false.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Assignment, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	q, err := s.questions.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, false, fmt.Errorf("get question: %w", err)
	}
	j, err := s.journals.GetByID(ctx, q.JournalID)
	if err != nil {
		return nil, false, fmt.Errorf("get journal: %w", err)
	}
	if j.OwnerID != userID {
		return nil, false, domain.ErrForbidden
	}

	if _, err := s.people.GetByID(ctx, userID, input.PersonID); err != nil {
		return nil, false, fmt.Errorf("get person: %w", err)
	}

	a, created, err := s.createWithToken(ctx, input.QuestionID, input.PersonID)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.InfoContext(ctx, "assignment created",
			slog.String("user_id", userID.String()),
			slog.String("assignment_id", a.ID.String()),
			slog.String("question_id", a.QuestionID.String()),
		)
	}
	return a, created, nil
}

// createWithToken inserts a pending assignment with a fresh link token,
// regenerating the token once on collision.
func (s *Service) createWithToken(ctx context.Context, questionID, personID uuid.UUID) (*domain.Assignment, bool, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		token, err := s.tokens.New()
		if err != nil {
			return nil, false, fmt.Errorf("generate link token: %w", err)
		}

		a, created, err := s.assignments.Create(ctx, &domain.Assignment{
			ID:         uuid.New(),
			QuestionID: questionID,
			PersonID:   personID,
			LinkToken:  token,
			Status:     domain.AssignmentStatusPending,
			CreatedAt:  s.now(),
		})
		if err == nil {
			return a, created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, false, fmt.Errorf("create assignment: %w", err)
		}

		lastErr = err
		s.log.WarnContext(ctx, "link token collision", slog.Int("attempt", attempt+1))
	}

	// Reported as an internal failure, not as a client-visible conflict.
	return nil, false, fmt.Errorf("create assignment: link token collision: %v", lastErr)
}

// CreateForSelf returns the owner's own assignment for a question, creating
// it when missing. Used by the self-recording flow.
func (s *Service) CreateForSelf(ctx context.Context, questionID, selfPersonID uuid.UUID) (*domain.Assignment, error) {
	a, _, err := s.createWithToken(ctx, questionID, selfPersonID)
	if err != nil {
		return nil, err
	}
	return a, nil
}
