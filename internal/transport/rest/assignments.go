package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/assignment"
)

type assignmentService interface {
	Create(ctx context.Context, input assignment.CreateInput) (*domain.Assignment, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*assignment.View, error)
	Send(ctx context.Context, input assignment.SendInput) (*domain.Assignment, error)
	Remind(ctx context.Context, input assignment.RemindInput) (*domain.Assignment, error)
	RemindEligibility(ctx context.Context, id uuid.UUID, strict bool) (assignment.Decision, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentHandler serves the owner-facing assignment lifecycle.
type AssignmentHandler struct {
	svc assignmentService
	log *slog.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(svc assignmentService, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, log: logger.With("handler", "assignment")}
}

type createAssignmentRequest struct {
	PersonID uuid.UUID `json:"person_id"`
}

type deliveryRequest struct {
	Channel string `json:"channel"`
	Strict  bool   `json:"strict"`
}

type assignmentViewResponse struct {
	assignmentResponse
	Question  questionResponse   `json:"question"`
	Person    personResponse     `json:"person"`
	Recording *recordingResponse `json:"recording,omitempty"`
}

type eligibilityResponse struct {
	Allowed                  bool   `json:"allowed"`
	Reason                   string `json:"reason,omitempty"`
	CooldownRemainingSeconds *int64 `json:"cooldown_remaining_seconds,omitempty"`
}

// Create handles POST /questions/{questionID}/assignments. An existing
// assignment for the same person is returned with 200 instead of 201.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createAssignmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, created, err := h.svc.Create(r.Context(), assignment.CreateInput{
		QuestionID: questionID,
		PersonID:   req.PersonID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toAssignmentResponse(a))
}

// Get handles GET /assignments/{assignmentID}.
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := assignmentViewResponse{
		assignmentResponse: toAssignmentResponse(&view.Context.Assignment),
		Question:           toQuestionResponse(&view.Context.Question),
		Person:             toPersonResponse(&view.Context.Person),
	}
	if view.Recording != nil {
		rec := toRecordingResponse(view.Recording, view.RecordingURL)
		resp.Recording = &rec
	}
	writeJSON(w, http.StatusOK, resp)
}

// Send handles POST /assignments/{assignmentID}/send.
func (h *AssignmentHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.deliveryParams(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Send(r.Context(), assignment.SendInput{
		AssignmentID: id,
		Channel:      domain.Channel(req.Channel),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}

// Remind handles POST /assignments/{assignmentID}/remind.
func (h *AssignmentHandler) Remind(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.deliveryParams(w, r)
	if !ok {
		return
	}

	a, err := h.svc.Remind(r.Context(), assignment.RemindInput{
		AssignmentID: id,
		Channel:      domain.Channel(req.Channel),
		Strict:       req.Strict,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}

// RemindEligibility handles GET /assignments/{assignmentID}/remind-eligibility.
func (h *AssignmentHandler) RemindEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	strict, err := queryBool(r, "strict")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.RemindEligibility(r.Context(), id, strict)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := eligibilityResponse{Allowed: d.Allowed, Reason: d.Reason.String()}
	if d.Reason == domain.ReminderReasonCooldownActive {
		secs := int64(math.Ceil(d.CooldownRemaining.Seconds()))
		resp.CooldownRemainingSeconds = &secs
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /assignments/{assignmentID}.
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AssignmentHandler) deliveryParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, deliveryRequest, bool) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, deliveryRequest{}, false
	}

	var req deliveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, deliveryRequest{}, false
	}
	return id, req, true
}
