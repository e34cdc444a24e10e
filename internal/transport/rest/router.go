package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/memoir-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Account       *AccountHandler
	People        *PeopleHandler
	Journals      *JournalHandler
	Assignments   *AssignmentHandler
	Recordings    *RecordingHandler
	Notifications *NotificationHandler
	Public        *PublicHandler
}

// NewRouter mounts all routes. Owner routes require an authenticated user
// placed in the context by middleware.Auth, which the caller wraps around the
// router together with the other global middleware. publicLimit guards the
// anonymous auth and recording routes and may be nil.
func NewRouter(h Handlers, publicLimit middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Probes
	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	// Anonymous endpoints
	authR := r.PathPrefix("/auth").Subrouter()
	authR.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	authR.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	recordR := r.PathPrefix("/record/{token}").Subrouter()
	recordR.HandleFunc("", h.Public.View).Methods(http.MethodGet)
	recordR.HandleFunc("/upload", h.Public.Upload).Methods(http.MethodPost)

	if publicLimit != nil {
		authR.Use(mux.MiddlewareFunc(publicLimit))
		recordR.Use(mux.MiddlewareFunc(publicLimit))
	}

	// Owner endpoints
	owner := r.NewRoute().Subrouter()
	owner.Use(middleware.RequireUser)

	owner.HandleFunc("/me", h.Account.Me).Methods(http.MethodGet)
	owner.HandleFunc("/devices", h.Account.ListDevices).Methods(http.MethodGet)
	owner.HandleFunc("/devices", h.Account.RegisterDevice).Methods(http.MethodPost)
	owner.HandleFunc("/devices/{token}", h.Account.DeleteDevice).Methods(http.MethodDelete)

	owner.HandleFunc("/people", h.People.Create).Methods(http.MethodPost)
	owner.HandleFunc("/people", h.People.List).Methods(http.MethodGet)
	owner.HandleFunc("/people/{personID}", h.People.Get).Methods(http.MethodGet)

	owner.HandleFunc("/journals", h.Journals.Create).Methods(http.MethodPost)
	owner.HandleFunc("/journals", h.Journals.List).Methods(http.MethodGet)
	owner.HandleFunc("/journals/{journalID}", h.Journals.Overview).Methods(http.MethodGet)
	owner.HandleFunc("/journals/{journalID}/questions", h.Journals.AddQuestion).Methods(http.MethodPost)
	owner.HandleFunc("/journals/{journalID}/questions/order", h.Journals.ReorderQuestions).Methods(http.MethodPut)
	owner.HandleFunc("/journals/{journalID}/questions/{questionID}", h.Journals.DeleteQuestion).Methods(http.MethodDelete)
	owner.HandleFunc("/journals/{journalID}/questions/{questionID}/recordings", h.Recordings.Upload).Methods(http.MethodPost)

	owner.HandleFunc("/questions/{questionID}/assignments", h.Assignments.Create).Methods(http.MethodPost)
	owner.HandleFunc("/assignments/{assignmentID}", h.Assignments.Get).Methods(http.MethodGet)
	owner.HandleFunc("/assignments/{assignmentID}", h.Assignments.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/assignments/{assignmentID}/send", h.Assignments.Send).Methods(http.MethodPost)
	owner.HandleFunc("/assignments/{assignmentID}/remind", h.Assignments.Remind).Methods(http.MethodPost)
	owner.HandleFunc("/assignments/{assignmentID}/remind-eligibility", h.Assignments.RemindEligibility).Methods(http.MethodGet)
	owner.HandleFunc("/assignments/{assignmentID}/recording", h.Recordings.Delete).Methods(http.MethodDelete)
	owner.HandleFunc("/assignments/{assignmentID}/recording/audio", h.Recordings.Audio).Methods(http.MethodGet)

	owner.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	owner.HandleFunc("/notifications/read-all", h.Notifications.MarkAllRead).Methods(http.MethodPost)
	owner.HandleFunc("/notifications/{notificationID}/read", h.Notifications.MarkRead).Methods(http.MethodPost)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
