package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/memoir-backend/internal/service/assignment"
	"github.com/heartmarshall/memoir-backend/internal/service/recording"
)

type linkOpener interface {
	OpenByToken(ctx context.Context, token string) (*assignment.PublicView, error)
}

type tokenIntake interface {
	IntakeByToken(ctx context.Context, token string, in recording.UploadInput) (*recording.Result, error)
}

// PublicHandler serves the anonymous recording page behind a link token.
type PublicHandler struct {
	links          linkOpener
	intake         tokenIntake
	maxUploadBytes int64
	log            *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(links linkOpener, intake tokenIntake, maxUploadBytes int64, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{
		links:          links,
		intake:         intake,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "public"),
	}
}

type publicViewResponse struct {
	Question   string `json:"question"`
	SenderName string `json:"sender_name"`
	PersonName string `json:"person_name"`
	Status     string `json:"status"`
	Answerable bool   `json:"answerable"`
}

// View handles GET /record/{token}.
func (h *PublicHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.links.OpenByToken(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, publicViewResponse{
		Question:   view.QuestionText,
		SenderName: view.SenderName,
		PersonName: view.PersonName,
		Status:     view.Status.String(),
		Answerable: view.Answerable,
	})
}

// Upload handles POST /record/{token}/upload.
func (h *PublicHandler) Upload(w http.ResponseWriter, r *http.Request) {
	form, err := parseUpload(w, r, h.maxUploadBytes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer form.Close()

	res, err := h.intake.IntakeByToken(r.Context(), mux.Vars(r)["token"], form.input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUploadResponse(res))
}
