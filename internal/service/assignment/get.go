package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// View is an assignment as seen by its owner.
type View struct {
	Context      *domain.AssignmentContext
	Recording    *domain.Recording
	RecordingURL string
}

// AudioPath is the owner-authenticated streaming path used when the blob
// store cannot sign URLs.
func AudioPath(assignmentID uuid.UUID) string {
	return "/assignments/" + assignmentID.String() + "/recording/audio"
}

// Get returns the assignment with its recording, if answered.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actx, err := s.ownedContext(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	view := &View{Context: actx}
	if !actx.Assignment.IsAnswered() {
		return view, nil
	}

	rec, err := s.recordings.GetByAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return view, nil
		}
		return nil, fmt.Errorf("get recording: %w", err)
	}
	view.Recording = rec

	url, err := s.blobs.SignedURL(ctx, rec.BlobKey, s.signedURLTTL)
	switch {
	case err == nil:
		view.RecordingURL = url
	case errors.Is(err, domain.ErrSignedURLUnsupported):
		view.RecordingURL = AudioPath(id)
	default:
		return nil, fmt.Errorf("sign recording url: %w", err)
	}

	return view, nil
}

// RemindEligibility evaluates the reminder policy without changing anything.
// The answer is advisory: Remind re-evaluates it under lock.
func (s *Service) RemindEligibility(ctx context.Context, id uuid.UUID, strict bool) (Decision, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Decision{}, domain.ErrUnauthorized
	}

	actx, err := s.ownedContext(ctx, userID, id)
	if err != nil {
		return Decision{}, err
	}

	now := s.now()
	count, err := s.reminders.CountForOwnerSince(ctx, actx.OwnerID, DayStart(now, s.dayLocation))
	if err != nil {
		return Decision{}, fmt.Errorf("count reminders today: %w", err)
	}

	return s.policyFor(strict).CanRemind(&actx.Assignment, now, count), nil
}

func (s *Service) policyFor(strict bool) Policy {
	if strict {
		return s.strictPolicy
	}
	return s.policy
}
