package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Remind re-sends the recording link as a reminder.
//
// Eligibility and the counter increment happen in one transaction holding the
// owner row lock (for the daily cap) and the assignment row lock (for the
// cooldown and per-assignment cap). The message goes out after commit; if
// delivery fails the increment is undone.
func (s *Service) Remind(ctx context.Context, input RemindInput) (*domain.Assignment, error) {
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

	policy := s.policyFor(input.Strict)
	now := s.now()
	entry := domain.ReminderLogEntry{
		ID:           uuid.New(),
		AssignmentID: input.AssignmentID,
		OwnerID:      actx.OwnerID,
		Channel:      input.Channel,
		SentAt:       now,
	}

	var (
		applied    *domain.Assignment
		previousAt *time.Time
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owners.LockForUpdate(txCtx, actx.OwnerID); err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}

		current, err := s.assignments.LockForUpdate(txCtx, input.AssignmentID)
		if err != nil {
			return fmt.Errorf("lock assignment: %w", err)
		}

		count, err := s.reminders.CountForOwnerSince(txCtx, actx.OwnerID, DayStart(now, s.dayLocation))
		if err != nil {
			return fmt.Errorf("count reminders today: %w", err)
		}

		if err := policy.CanRemind(current, now, count).Err(); err != nil {
			return err
		}

		previousAt = current.LastReminderAt
		applied, err = s.assignments.ApplyReminder(txCtx, input.AssignmentID, now)
		if err != nil {
			return fmt.Errorf("apply reminder: %w", err)
		}

		if err := s.reminders.Insert(txCtx, &entry); err != nil {
			return fmt.Errorf("log reminder: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assignment.Remind: %w", err)
	}

	err = s.dispatcher.SendInvitation(ctx, input.Channel, &actx.Person, notify.Invitation{
		Kind:         notify.InvitationReminder,
		QuestionText: actx.Question.Text,
		SenderName:   actx.OwnerName,
		LinkToken:    actx.Assignment.LinkToken,
	})
	if err != nil {
		s.undoReminder(context.WithoutCancel(ctx), applied, previousAt, entry.ID)
		return nil, fmt.Errorf("assignment.Remind: %w", err)
	}

	s.log.InfoContext(ctx, "reminder sent",
		slog.String("assignment_id", applied.ID.String()),
		slog.String("channel", input.Channel.String()),
		slog.Int("reminder_count", applied.ReminderCount),
	)
	return applied, nil
}

// undoReminder reverts a reminder whose delivery failed. A reminder applied
// concurrently in the meantime is left alone.
func (s *Service) undoReminder(ctx context.Context, applied *domain.Assignment, previousAt *time.Time, entryID uuid.UUID) {
	var reverted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		reverted, err = s.assignments.RollbackReminder(txCtx, applied, previousAt)
		if err != nil {
			return fmt.Errorf("rollback reminder: %w", err)
		}
		if err := s.reminders.Delete(txCtx, entryID); err != nil {
			return fmt.Errorf("delete reminder log: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "undo reminder failed",
			slog.String("assignment_id", applied.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if !reverted {
		s.log.WarnContext(ctx, "reminder changed concurrently, counter kept",
			slog.String("assignment_id", applied.ID.String()),
		)
	}
}
