package recording

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// MaxIdempotencyKeyLen bounds client-supplied idempotency keys.
const MaxIdempotencyKeyLen = 200

// UploadInput is one audio upload.
type UploadInput struct {
	Audio           io.Reader
	Size            int64
	ContentType     string
	DurationSeconds *int
	IdempotencyKey  string
}

// OwnerUploadInput is an upload by the owner for their own journal.
type OwnerUploadInput struct {
	JournalID  uuid.UUID
	QuestionID uuid.UUID
	UploadInput
}

// Validate checks the owner-only fields; the upload itself is checked by
// the intake pipeline.
func (i OwnerUploadInput) Validate() error {
	var errs []domain.FieldError
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateIdempotencyKey(key string) error {
	if len(key) > MaxIdempotencyKeyLen {
		return domain.NewValidationError("idempotency_key", fmt.Sprintf("max %d characters", MaxIdempotencyKeyLen))
	}
	if strings.IndexFunc(key, func(r rune) bool { return r > unicode.MaxASCII || !unicode.IsPrint(r) }) >= 0 {
		return domain.NewValidationError("idempotency_key", "must be printable ASCII")
	}
	return nil
}

// validateUpload runs the format, duration and size checks in that order.
func (s *Service) validateUpload(in UploadInput) error {
	if !s.cfg.IsAllowedContentType(in.ContentType) {
		return domain.NewValidationError("audio", fmt.Sprintf("unsupported content type %q", in.ContentType))
	}
	if in.DurationSeconds != nil {
		d := *in.DurationSeconds
		if d < 0 {
			return domain.NewValidationError("duration_seconds", "must not be negative")
		}
		if d > s.cfg.MaxDurationSeconds {
			return domain.NewValidationError("duration_seconds", fmt.Sprintf("max %d seconds", s.cfg.MaxDurationSeconds))
		}
	}
	if in.Size <= 0 {
		return domain.NewValidationError("audio", "empty upload")
	}
	if in.Size > s.cfg.MaxUploadBytes {
		return domain.NewValidationError("audio", fmt.Sprintf("max %d bytes", s.cfg.MaxUploadBytes))
	}
	return nil
}
