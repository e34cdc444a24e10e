package rest

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code                     string       `json:"code"`
	Message                  string       `json:"message"`
	Reason                   string       `json:"reason,omitempty"`
	CooldownRemainingSeconds *int64       `json:"cooldown_remaining_seconds,omitempty"`
	Fields                   []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// handleError maps domain errors to HTTP statuses and stable codes.
// Unexpected errors are logged and reported as INTERNAL without details.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ineligible *domain.ReminderIneligibleError
		validation *domain.ValidationError
		provider   *domain.ProviderError
		tooLarge   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &ineligible):
		resp := ErrorResponse{
			Code:    "REMINDER_INELIGIBLE",
			Message: "reminder not allowed",
			Reason:  ineligible.Reason.String(),
		}
		if ineligible.Reason == domain.ReminderReasonCooldownActive {
			secs := int64(math.Ceil(ineligible.CooldownRemaining.Seconds()))
			resp.CooldownRemainingSeconds = &secs
			w.Header().Set("Retry-After", strconv.FormatInt(secs, 10))
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)

	case errors.Is(err, domain.ErrAlreadyAnswered):
		writeError(w, http.StatusUnprocessableEntity, "ALREADY_ANSWERED", "assignment already answered")

	case errors.As(err, &validation):
		resp := ErrorResponse{Code: "VALIDATION_ERROR", Message: validation.Error()}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large")

	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())

	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")

	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists")

	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "conflict")

	case errors.As(err, &provider):
		log.WarnContext(r.Context(), "delivery provider failure",
			slog.String("channel", provider.Channel.String()),
			slog.String("error", provider.Err.Error()),
		)
		writeError(w, http.StatusBadGateway, "PROVIDER_FAILURE", provider.Channel.String()+" delivery failed")

	case errors.Is(err, domain.ErrExternalProvider):
		writeError(w, http.StatusBadGateway, "PROVIDER_FAILURE", "delivery failed")

	default:
		attrs := append([]slog.Attr{slog.String("error", err.Error())}, ctxutil.LogAttrs(r.Context())...)
		log.LogAttrs(r.Context(), slog.LevelError, "internal error", attrs...)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
