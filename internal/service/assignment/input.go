package assignment

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// CreateInput holds the parameters for assigning a question to a person.
type CreateInput struct {
	QuestionID uuid.UUID
	PersonID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SendInput holds the parameters for sending an assignment.
type SendInput struct {
	AssignmentID uuid.UUID
	Channel      domain.Channel
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	return validateDelivery(i.AssignmentID, i.Channel)
}

// RemindInput holds the parameters for reminding a person.
// Strict selects the longer reminder cadence.
type RemindInput struct {
	AssignmentID uuid.UUID
	Channel      domain.Channel
	Strict       bool
}

// Validate checks all fields and collects all errors.
func (i RemindInput) Validate() error {
	return validateDelivery(i.AssignmentID, i.Channel)
}

func validateDelivery(id uuid.UUID, ch domain.Channel) error {
	var errs []domain.FieldError
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignment_id", Message: "required"})
	}
	if !ch.IsContactChannel() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be sms or email"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
