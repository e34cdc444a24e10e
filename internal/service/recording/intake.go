package recording

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/auth"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// Result is the outcome of an intake. Replayed is set when an earlier upload
// with the same idempotency key is returned instead of a new recording.
type Result struct {
	Recording *domain.Recording
	Replayed  bool
}

// IntakeByToken accepts an anonymous upload through a public link.
func (s *Service) IntakeByToken(ctx context.Context, token string, in UploadInput) (*Result, error) {
	if !auth.ValidLinkToken(token) {
		return nil, domain.ErrNotFound
	}

	actx, err := s.assignments.GetContextByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve link: %w", err)
	}
	return s.intake(ctx, actx, in)
}

// IntakeForOwner accepts the owner's own answer to a question in one of
// their journals. The owner's self assignment is created on first use.
func (s *Service) IntakeForOwner(ctx context.Context, in OwnerUploadInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	q, err := s.questions.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q.JournalID != in.JournalID {
		return nil, fmt.Errorf("question %s in journal %s: %w", in.QuestionID, in.JournalID, domain.ErrNotFound)
	}

	j, err := s.journals.GetByID(ctx, in.JournalID)
	if err != nil {
		return nil, fmt.Errorf("get journal: %w", err)
	}
	if j.OwnerID != userID {
		return nil, domain.ErrForbidden
	}

	self, err := s.people.GetSelf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get self person: %w", err)
	}

	a, err := s.assigner.CreateForSelf(ctx, in.QuestionID, self.ID)
	if err != nil {
		return nil, err
	}

	actx, err := s.assignments.GetContext(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return s.intake(ctx, actx, in.UploadInput)
}

func (s *Service) intake(ctx context.Context, actx *domain.AssignmentContext, in UploadInput) (*Result, error) {
	assignmentID := actx.Assignment.ID

	if in.IdempotencyKey != "" {
		if err := validateIdempotencyKey(in.IdempotencyKey); err != nil {
			return nil, err
		}
		res, err := s.replay(ctx, assignmentID, in.IdempotencyKey)
		if err != nil || res != nil {
			return res, err
		}
	}

	if actx.Assignment.IsAnswered() {
		return nil, domain.ErrAlreadyAnswered
	}

	if err := s.validateUpload(in); err != nil {
		return nil, err
	}

	rec := &domain.Recording{
		ID:              uuid.New(),
		AssignmentID:    assignmentID,
		PersonID:        actx.Person.ID,
		ContentType:     baseContentType(in.ContentType),
		SizeBytes:       in.Size,
		DurationSeconds: in.DurationSeconds,
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		rec.IdempotencyKey = &key
	}
	rec.BlobKey = BlobKey(actx, rec.ID, rec.ContentType)

	if err := s.blobs.Put(ctx, rec.BlobKey, in.Audio, in.Size, rec.ContentType); err != nil {
		return nil, fmt.Errorf("recording.Intake store audio: %w", err)
	}

	// The blob is written; finish the commit even if the client is gone.
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.CommitTimeout)
	defer cancel()

	rec.RecordedAt = s.now()
	ev := notify.AnsweredEvent{
		OwnerID:      actx.OwnerID,
		OwnerEmail:   actx.OwnerEmail,
		PersonName:   actx.Person.Name,
		QuestionText: actx.Question.Text,
		AssignmentID: assignmentID,
		RecordingID:  rec.ID,
		At:           rec.RecordedAt,
	}

	var stored *domain.Recording
	err := s.tx.RunInTx(commitCtx, func(txCtx context.Context) error {
		current, err := s.assignments.LockForUpdate(txCtx, assignmentID)
		if err != nil {
			return fmt.Errorf("lock assignment: %w", err)
		}
		if current.IsAnswered() {
			return domain.ErrAlreadyAnswered
		}

		stored, err = s.recordings.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}

		if _, err := s.assignments.MarkAnswered(txCtx, assignmentID, rec.RecordedAt); err != nil {
			return fmt.Errorf("mark answered: %w", err)
		}

		return s.dispatcher.RecordAnswered(txCtx, ev)
	})
	if err != nil {
		if delErr := s.blobs.Delete(commitCtx, rec.BlobKey); delErr != nil {
			s.log.WarnContext(commitCtx, "orphaned recording blob",
				slog.String("blob_key", rec.BlobKey),
				slog.String("error", delErr.Error()),
			)
		}

		// A concurrent retry with the same key may have won the race.
		if in.IdempotencyKey != "" {
			if res, rerr := s.replay(commitCtx, assignmentID, in.IdempotencyKey); rerr == nil && res != nil {
				return res, nil
			}
		}
		return nil, fmt.Errorf("recording.Intake: %w", err)
	}

	s.hooks.Go(ctx, s.dispatcher.AnsweredHooks(ev)...)

	s.log.InfoContext(ctx, "recording stored",
		slog.String("assignment_id", assignmentID.String()),
		slog.String("recording_id", stored.ID.String()),
		slog.Int64("size_bytes", stored.SizeBytes),
	)
	return &Result{Recording: stored}, nil
}

// replay returns the recording stored under key, nil when there is none, and
// ErrConflict when the key was used for a different assignment.
func (s *Service) replay(ctx context.Context, assignmentID uuid.UUID, key string) (*Result, error) {
	existing, err := s.recordings.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup idempotency key: %w", err)
	}
	if existing.AssignmentID != assignmentID {
		return nil, fmt.Errorf("idempotency key reused for another assignment: %w", domain.ErrConflict)
	}
	return &Result{Recording: existing, Replayed: true}, nil
}

var extensions = map[string]string{
	"audio/webm":  ".webm",
	"audio/ogg":   ".ogg",
	"audio/mpeg":  ".mp3",
	"audio/mp4":   ".m4a",
	"audio/x-m4a": ".m4a",
	"audio/aac":   ".aac",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
}

// BlobKey namespaces a recording by owner, journal and assignment.
func BlobKey(actx *domain.AssignmentContext, recordingID uuid.UUID, contentType string) string {
	ext, ok := extensions[contentType]
	if !ok {
		ext = ".bin"
	}
	return strings.Join([]string{
		actx.OwnerID.String(),
		actx.JournalID.String(),
		actx.Assignment.ID.String(),
		recordingID.String() + ext,
	}, "/")
}

func baseContentType(ct string) string {
	base, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
