package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Send delivers the recording link over the chosen channel and marks the
// assignment sent. Resending is allowed; a viewed assignment stays viewed.
// Nothing changes when the contact is missing or the provider fails.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Assignment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	actx, err := s.ownedContext(ctx, userID, input.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := notify.CheckContact(&actx.Person, input.Channel); err != nil {
		return nil, err
	}
	if actx.Assignment.IsAnswered() {
		return nil, domain.ErrAlreadyAnswered
	}

	err = s.dispatcher.SendInvitation(ctx, input.Channel, &actx.Person, notify.Invitation{
		Kind:         notify.InvitationSent,
		QuestionText: actx.Question.Text,
		SenderName:   actx.OwnerName,
		LinkToken:    actx.Assignment.LinkToken,
	})
	if err != nil {
		return nil, fmt.Errorf("assignment.Send: %w", err)
	}

	// The message is out; record it even if the client went away.
	a, err := s.assignments.MarkSent(context.WithoutCancel(ctx), input.AssignmentID, s.now())
	if err != nil {
		return nil, fmt.Errorf("assignment.Send mark sent: %w", err)
	}

	s.log.InfoContext(ctx, "assignment sent",
		slog.String("assignment_id", a.ID.String()),
		slog.String("channel", input.Channel.String()),
		slog.String("status", a.Status.String()),
	)
	return a, nil
}
