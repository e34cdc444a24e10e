package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/inbox"
)

type inboxService interface {
	List(ctx context.Context, input inbox.ListInput) (*inbox.ListResult, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
}

// NotificationHandler serves the owner's in-app notifications.
type NotificationHandler struct {
	svc inboxService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc inboxService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationListResponse struct {
	Items  []notificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

// List handles GET /notifications?unread=&type=&limit=&offset=.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := notificationListResponse{
		Items:  make([]notificationResponse, 0, len(res.Items)),
		Unread: res.Unread,
	}
	for i := range res.Items {
		resp.Items = append(resp.Items, toNotificationResponse(&res.Items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// MarkRead handles POST /notifications/{notificationID}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "notificationID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

func listInputFromQuery(r *http.Request) (inbox.ListInput, error) {
	var (
		in  inbox.ListInput
		err error
	)
	if in.UnreadOnly, err = queryBool(r, "unread"); err != nil {
		return in, err
	}
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		return in, err
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := domain.NotificationType(raw)
		in.Type = &t
	}
	return in, nil
}
