package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Delete removes the assignment and its recording. The person is not
// notified. The audio blob is removed after commit on a best-effort basis.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedContext(ctx, userID, id); err != nil {
		return err
	}

	var blobKey string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		key, err := s.recordings.DeleteByAssignment(txCtx, id)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("delete recording: %w", err)
		}
		if err := s.assignments.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete assignment: %w", err)
		}
		blobKey = key
		return nil
	})
	if err != nil {
		return fmt.Errorf("assignment.Delete: %w", err)
	}

	if blobKey != "" {
		s.hooks.Go(ctx, postcommit.Hook{
			Name: "assignment.delete_blob",
			Run:  func(ctx context.Context) error { return s.blobs.Delete(ctx, blobKey) },
		})
	}

	s.log.InfoContext(ctx, "assignment deleted",
		slog.String("user_id", userID.String()),
		slog.String("assignment_id", id.String()),
	)
	return nil
}
