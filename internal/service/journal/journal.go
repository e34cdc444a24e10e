package journal

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

// CreateJournal creates a journal owned by the authenticated user.
func (s *Service) CreateJournal(ctx context.Context, input CreateJournalInput) (*domain.Journal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	j, err := s.journals.Create(ctx, &domain.Journal{
		ID:        uuid.New(),
		OwnerID:   userID,
		Title:     strings.TrimSpace(input.Title),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}

	s.log.InfoContext(ctx, "journal created",
		slog.String("user_id", userID.String()),
		slog.String("journal_id", j.ID.String()),
	)

	return j, nil
}

// ListJournals returns the authenticated user's journals.
func (s *Service) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	journals, err := s.journals.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}

// GetOverview returns the journal with its questions in display order and
// per-status assignment counts.
func (s *Service) GetOverview(ctx context.Context, input GetOverviewInput) (*domain.JournalOverview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	j, err := s.ownedJournal(ctx, userID, input.JournalID)
	if err != nil {
		return nil, err
	}

	progress, err := s.journals.QuestionProgress(ctx, j.ID, domain.ProgressFilter{PersonID: input.PersonID})
	if err != nil {
		return nil, fmt.Errorf("question progress: %w", err)
	}

	overview := &domain.JournalOverview{Journal: *j, Questions: progress}
	for _, qp := range progress {
		overview.Totals.Pending += qp.Counts.Pending
		overview.Totals.Sent += qp.Counts.Sent
		overview.Totals.Viewed += qp.Counts.Viewed
		overview.Totals.Answered += qp.Counts.Answered
	}
	return overview, nil
}
