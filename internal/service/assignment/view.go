package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/auth"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
)

// PublicView is what an anonymous link holder sees.
type PublicView struct {
	AssignmentID uuid.UUID
	QuestionText string
	SenderName   string
	PersonName   string
	Status       domain.AssignmentStatus
	Answerable   bool
}

// OpenByToken resolves a public link and records the first view. Repeated
// opens do not change viewedAt. The first view of an unanswered assignment
// leaves an in-app notification for the owner.
func (s *Service) OpenByToken(ctx context.Context, token string) (*PublicView, error) {
	if !auth.ValidLinkToken(token) {
		return nil, domain.ErrNotFound
	}

	actx, err := s.assignments.GetContextByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve link: %w", err)
	}

	now := s.now()
	var (
		current = &actx.Assignment
		changed bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, ch, err := s.assignments.MarkViewed(txCtx, actx.Assignment.ID, now)
		if err != nil {
			return fmt.Errorf("mark viewed: %w", err)
		}
		current, changed = updated, ch

		if changed && !updated.IsAnswered() {
			if err := s.dispatcher.RecordViewed(txCtx, notify.ViewedEvent{
				OwnerID:      actx.OwnerID,
				PersonName:   actx.Person.Name,
				QuestionText: actx.Question.Text,
				AssignmentID: updated.ID,
				At:           now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assignment.OpenByToken: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "assignment viewed", slog.String("assignment_id", current.ID.String()))
	}

	return &PublicView{
		AssignmentID: current.ID,
		QuestionText: actx.Question.Text,
		SenderName:   actx.OwnerName,
		PersonName:   actx.Person.Name,
		Status:       current.Status,
		Answerable:   !current.IsAnswered(),
	}, nil
}
