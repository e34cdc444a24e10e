package user

import (
	"strings"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

const maxDeviceTokenLength = 512

// RegisterDeviceInput holds the parameters for registering a push token.
type RegisterDeviceInput struct {
	Token    string
	Platform domain.DevicePlatform
}

// Validate checks all fields and collects all errors.
func (i RegisterDeviceInput) Validate() error {
	var errs []domain.FieldError

	token := strings.TrimSpace(i.Token)
	if token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	if len(token) > maxDeviceTokenLength {
		errs = append(errs, domain.FieldError{Field: "token", Message: "max 512 characters"})
	}

	if !i.Platform.IsValid() {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "must be ios or android"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
