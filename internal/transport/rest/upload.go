package rest

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/recording"
	"github.com/heartmarshall/memoir-backend/internal/transport/middleware"
)

const (
	// IdempotencyKeyHeader lets clients retry an upload without creating a
	// second recording.
	IdempotencyKeyHeader = middleware.IdempotencyKeyHeader

	audioField    = "audio"
	durationField = "duration_seconds"

	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

type uploadResponse struct {
	Message         string `json:"message"`
	RecordingID     string `json:"recording_id"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
}

// uploadForm is a parsed multipart upload. Close releases temporary files.
type uploadForm struct {
	input recording.UploadInput
	file  multipart.File
	form  *multipart.Form
}

func (f *uploadForm) Close() {
	if f.file != nil {
		f.file.Close() //nolint:errcheck
	}
	if f.form != nil {
		f.form.RemoveAll() //nolint:errcheck
	}
}

// parseUpload reads the multipart body: an "audio" file part and an optional
// "duration_seconds" field. The body is capped slightly above maxBytes so the
// service reports oversized audio as a field error while runaway bodies are cut.
func parseUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*uploadForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, domain.NewValidationError("body", "must be multipart/form-data")
	}
	f := &uploadForm{form: r.MultipartForm}

	file, header, err := r.FormFile(audioField)
	if err != nil {
		f.Close()
		return nil, domain.NewValidationError(audioField, "required")
	}
	f.file = file

	in := recording.UploadInput{
		Audio:          file,
		Size:           header.Size,
		ContentType:    header.Header.Get("Content-Type"),
		IdempotencyKey: strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)),
	}

	if raw := strings.TrimSpace(r.FormValue(durationField)); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			f.Close()
			return nil, domain.NewValidationError(durationField, "must be an integer")
		}
		in.DurationSeconds = &d
	}

	f.input = in
	return f, nil
}

func toUploadResponse(res *recording.Result) uploadResponse {
	msg := "recording received"
	if res.Replayed {
		msg = "recording already received"
	}
	return uploadResponse{
		Message:         msg,
		RecordingID:     res.Recording.ID.String(),
		DurationSeconds: res.Recording.DurationSeconds,
	}
}
