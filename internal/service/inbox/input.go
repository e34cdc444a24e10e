package inbox

import (
	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// ListInput holds the parameters for listing notifications.
type ListInput struct {
	UnreadOnly bool
	Type       *domain.NotificationType
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Type != nil && *i.Type != domain.NotificationTypeAnswered && *i.Type != domain.NotificationTypeViewed {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be answered or viewed"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
