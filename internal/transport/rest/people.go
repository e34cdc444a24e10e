package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/people"
)

type peopleService interface {
	CreatePerson(ctx context.Context, input people.CreatePersonInput) (*domain.Person, error)
	GetPerson(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	ListPeople(ctx context.Context) ([]domain.Person, error)
}

// PeopleHandler serves the owner's contact records.
type PeopleHandler struct {
	svc peopleService
	log *slog.Logger
}

// NewPeopleHandler creates a PeopleHandler.
func NewPeopleHandler(svc peopleService, logger *slog.Logger) *PeopleHandler {
	return &PeopleHandler{svc: svc, log: logger.With("handler", "people")}
}

type createPersonRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Create handles POST /people.
func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreatePerson(r.Context(), people.CreatePersonInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPersonResponse(p))
}

// List handles GET /people.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListPeople(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]personResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toPersonResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /people/{personID}.
func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "personID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.GetPerson(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonResponse(p))
}
