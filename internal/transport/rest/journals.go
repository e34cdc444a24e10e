package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/journal"
)

type journalService interface {
	CreateJournal(ctx context.Context, input journal.CreateJournalInput) (*domain.Journal, error)
	ListJournals(ctx context.Context) ([]domain.Journal, error)
	GetOverview(ctx context.Context, input journal.GetOverviewInput) (*domain.JournalOverview, error)
	AddQuestion(ctx context.Context, input journal.AddQuestionInput) (*domain.Question, error)
	ReorderQuestions(ctx context.Context, input journal.ReorderQuestionsInput) ([]domain.Question, error)
	DeleteQuestion(ctx context.Context, input journal.DeleteQuestionInput) error
}

// JournalHandler serves journals and their questions.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createJournalRequest struct {
	Title string `json:"title"`
}

type addQuestionRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Order  *int   `json:"order"`
}

type reorderQuestionsRequest struct {
	QuestionIDs []uuid.UUID `json:"question_ids"`
}

// Create handles POST /journals.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	j, err := h.svc.CreateJournal(r.Context(), journal.CreateJournalInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toJournalResponse(j))
}

// List handles GET /journals.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListJournals(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]journalResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toJournalResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Overview handles GET /journals/{journalID}. The optional person_id query
// parameter narrows the counts to one person.
func (h *JournalHandler) Overview(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "journalID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := journal.GetOverviewInput{JournalID: journalID}
	if raw := r.URL.Query().Get("person_id"); raw != "" {
		personID, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("person_id", "must be a uuid"))
			return
		}
		input.PersonID = &personID
	}

	overview, err := h.svc.GetOverview(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toOverviewResponse(overview))
}

// AddQuestion handles POST /journals/{journalID}/questions.
func (h *JournalHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "journalID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.Source == "" {
		req.Source = domain.QuestionSourceCustom.String()
	}

	q, err := h.svc.AddQuestion(r.Context(), journal.AddQuestionInput{
		JournalID: journalID,
		Text:      req.Text,
		Source:    domain.QuestionSource(req.Source),
		Order:     req.Order,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// ReorderQuestions handles PUT /journals/{journalID}/questions/order.
func (h *JournalHandler) ReorderQuestions(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "journalID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reorderQuestionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	questions, err := h.svc.ReorderQuestions(r.Context(), journal.ReorderQuestionsInput{
		JournalID:   journalID,
		QuestionIDs: req.QuestionIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]questionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteQuestion handles DELETE /journals/{journalID}/questions/{questionID}.
func (h *JournalHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	journalID, err := pathUUID(r, "journalID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	questionID, err := pathUUID(r, "questionID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.DeleteQuestion(r.Context(), journal.DeleteQuestionInput{
		JournalID:  journalID,
		QuestionID: questionID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
