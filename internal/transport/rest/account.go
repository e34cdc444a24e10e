package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	RegisterDevice(ctx context.Context, input user.RegisterDeviceInput) (*domain.DeviceToken, error)
	ListDevices(ctx context.Context) ([]domain.DeviceToken, error)
	DeleteDevice(ctx context.Context, token string) error
}

// AccountHandler serves the caller's profile and push devices.
type AccountHandler struct {
	svc userService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc userService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// RegisterDevice handles POST /devices. Registering a known token moves it to
// the caller.
func (h *AccountHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req registerDeviceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.RegisterDevice(r.Context(), user.RegisterDeviceInput{
		Token:    req.Token,
		Platform: domain.DevicePlatform(req.Platform),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeviceResponse(d))
}

// ListDevices handles GET /devices.
func (h *AccountHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListDevices(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]deviceResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toDeviceResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteDevice handles DELETE /devices/{token}.
func (h *AccountHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDevice(r.Context(), mux.Vars(r)["token"]); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
