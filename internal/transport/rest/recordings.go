package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/recording"
)

type recordingService interface {
	IntakeForOwner(ctx context.Context, in recording.OwnerUploadInput) (*recording.Result, error)
	OpenAudio(ctx context.Context, assignmentID uuid.UUID) (*recording.Audio, error)
	Delete(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error)
}

// RecordingHandler serves owner access to recordings.
type RecordingHandler struct {
	svc            recordingService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewRecordingHandler creates a RecordingHandler.
func NewRecordingHandler(svc recordingService, maxUploadBytes int64, logger *slog.Logger) *RecordingHandler {
	return &RecordingHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "recording"),
	}
}

// Upload handles POST /journals/{journalID}/questions/{questionID}/recordings,
// the owner answering their own question.
func (h *RecordingHandler) Upload(w http.ResponseWriter, r *http.Request) {
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

	form, err := parseUpload(w, r, h.maxUploadBytes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer form.Close()

	res, err := h.svc.IntakeForOwner(r.Context(), recording.OwnerUploadInput{
		JournalID:   journalID,
		QuestionID:  questionID,
		UploadInput: form.input,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUploadResponse(res))
}

// Audio handles GET /assignments/{assignmentID}/recording/audio.
func (h *RecordingHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	audio, err := h.svc.OpenAudio(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer audio.Body.Close()

	w.Header().Set("Content-Type", audio.ContentType)
	if audio.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(audio.Size, 10))
	}
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, audio.Body); err != nil {
		h.log.WarnContext(r.Context(), "stream recording",
			slog.String("assignment_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Delete handles DELETE /assignments/{assignmentID}/recording. The assignment
// returns to sent and can be answered again.
func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assignmentID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}
