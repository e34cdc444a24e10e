package journal

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// CreateJournalInput holds the parameters for creating a journal.
type CreateJournalInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateJournalInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetOverviewInput holds the parameters for a journal overview.
type GetOverviewInput struct {
	JournalID uuid.UUID
	PersonID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetOverviewInput) Validate() error {
	if i.JournalID == uuid.Nil {
		return domain.NewValidationError("journal_id", "required")
	}
	return nil
}

// AddQuestionInput holds the parameters for adding a question.
// A nil Order appends the question at the end.
type AddQuestionInput struct {
	JournalID uuid.UUID
	Text      string
	Source    domain.QuestionSource
	Order     *int
}

// Validate checks all fields and collects all errors.
func (i AddQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > 1000 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 1000 characters"})
	}

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be template or custom"})
	}

	if i.Order != nil && *i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderQuestionsInput holds the full new ordering of a journal's questions.
type ReorderQuestionsInput struct {
	JournalID   uuid.UUID
	QuestionIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderQuestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journal_id", Message: "required"})
	}
	if len(i.QuestionIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "question_ids", Message: "required"})
	}
	if len(i.QuestionIDs) > MaxQuestionsPerJournal {
		errs = append(errs, domain.FieldError{Field: "question_ids", Message: "too many items"})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.QuestionIDs))
	for _, id := range i.QuestionIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "question_ids", Message: "duplicate id " + id.String()})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteQuestionInput holds the parameters for deleting a question.
type DeleteQuestionInput struct {
	JournalID  uuid.UUID
	QuestionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteQuestionInput) Validate() error {
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
