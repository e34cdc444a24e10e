package recording

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Audio is an open recording stream. The caller closes Body.
type Audio struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

func (s *Service) ownedContext(ctx context.Context, assignmentID uuid.UUID) (*domain.AssignmentContext, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actx, err := s.assignments.GetContext(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if actx.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return actx, nil
}

// OpenAudio streams the recording of an owned assignment.
func (s *Service) OpenAudio(ctx context.Context, assignmentID uuid.UUID) (*Audio, error) {
	if _, err := s.ownedContext(ctx, assignmentID); err != nil {
		return nil, err
	}

	rec, err := s.recordings.GetByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}

	body, err := s.blobs.Open(ctx, rec.BlobKey)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	return &Audio{Body: body, ContentType: rec.ContentType, Size: rec.SizeBytes}, nil
}

// Delete removes the recording of an owned assignment and reverts the
// assignment to sent without notifying anyone. The blob is removed after
// commit.
func (s *Service) Delete(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error) {
	if _, err := s.ownedContext(ctx, assignmentID); err != nil {
		return nil, err
	}

	var (
		blobKey  string
		reverted *domain.Assignment
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		key, err := s.recordings.DeleteByAssignment(txCtx, assignmentID)
		if err != nil {
			return fmt.Errorf("delete recording: %w", err)
		}
		reverted, err = s.assignments.RevertToSent(txCtx, assignmentID)
		if err != nil {
			return fmt.Errorf("revert assignment: %w", err)
		}
		blobKey = key
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording.Delete: %w", err)
	}

	s.hooks.Go(ctx, postcommit.Hook{
		Name: "recording.delete_blob",
		Run:  func(ctx context.Context) error { return s.blobs.Delete(ctx, blobKey) },
	})

	s.log.InfoContext(ctx, "recording deleted", slog.String("assignment_id", assignmentID.String()))
	return reverted, nil
}
