package people

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/heartmarshall/memoir-backend/internal/domain"
)

// phonePattern accepts E.164 numbers.
var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// CreatePersonInput holds the parameters for creating a person.
type CreatePersonInput struct {
	Name  string
	Email *string
	Phone *string
}

// Validate checks all fields and collects all errors.
func (i CreatePersonInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if email := trimOrNil(i.Email); email != nil {
		if _, err := mail.ParseAddress(*email); err != nil || len(*email) > 254 {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if phone := trimOrNil(i.Phone); phone != nil {
		if !phonePattern.MatchString(normalizePhone(*phone)) {
			errs = append(errs, domain.FieldError{Field: "phone", Message: "must be in international format, e.g. +15550100"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizePhone strips spaces, dashes, dots and parentheses.
func normalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, s)
}
