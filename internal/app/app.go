package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/memoir-backend/internal/adapter/postgres"
	assignmentrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/assignment"
	journalrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/journal"
	notificationrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/notification"
	personrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/person"
	questionrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/question"
	recordingrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/recording"
	"github.com/heartmarshall/memoir-backend/internal/adapter/postgres/reminderlog"
	userrepo "github.com/heartmarshall/memoir-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/memoir-backend/internal/adapter/storage"
	"github.com/heartmarshall/memoir-backend/internal/auth"
	"github.com/heartmarshall/memoir-backend/internal/config"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"github.com/heartmarshall/memoir-backend/internal/service/assignment"
	authsvc "github.com/heartmarshall/memoir-backend/internal/service/auth"
	"github.com/heartmarshall/memoir-backend/internal/service/inbox"
	"github.com/heartmarshall/memoir-backend/internal/service/journal"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
	"github.com/heartmarshall/memoir-backend/internal/service/people"
	"github.com/heartmarshall/memoir-backend/internal/service/recording"
	"github.com/heartmarshall/memoir-backend/internal/service/user"
	"github.com/heartmarshall/memoir-backend/internal/transport/middleware"
	"github.com/heartmarshall/memoir-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database and blob store, wires services, and serves HTTP until ctx is
// cancelled. Shutdown drains in-flight requests first and then waits for
// post-commit hooks (blob cleanup, answered notifications) to finish.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Type),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	blobs, err := storage.NewFromConfig(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open blob storage: %w", err)
	}

	hooks := postcommit.NewRunner(logger, cfg.Delivery.DispatchTimeout)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, blobs, hooks, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	if err := hooks.Wait(shutdownCtx); err != nil {
		logger.Warn("post-commit hooks still running", slog.String("error", err.Error()))
	}

	logger.Info("stopped")
	return nil
}

// newHandler wires repositories, services and handlers into the HTTP handler.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	blobs storage.Store,
	hooks *postcommit.Runner,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	persons := personrepo.New(pool)
	journals := journalrepo.New(pool)
	questions := questionrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	recordings := recordingrepo.New(pool)
	reminders := reminderlog.New(pool)
	notifications := notificationrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	out := newSenders(cfg.Delivery, logger)
	dispatcher := notify.NewDispatcher(logger, out.sms, out.email, out.push, users, notifications, cfg.Delivery.PublicBaseURL)

	authService := authsvc.NewService(logger, users, persons, txm, jwt, cfg.Auth)
	userService := user.NewService(logger, users, users)
	peopleService := people.NewService(logger, persons)
	journalService := journal.NewService(logger, journals, questions, recordings, blobs, hooks, txm)
	inboxService := inbox.NewService(logger, notifications)

	assignmentService := assignment.NewService(logger, assignment.Deps{
		Assignments: assignments,
		Questions:   questions,
		Journals:    journals,
		People:      persons,
		Recordings:  recordings,
		Reminders:   reminders,
		Owners:      users,
		Tokens:      auth.NewLinkTokens(),
		Dispatcher:  dispatcher,
		Blobs:       blobs,
		Hooks:       hooks,
		Tx:          txm,
	}, cfg.Reminder, cfg.Storage.SignedURLTTL)

	recordingService := recording.NewService(logger, recording.Deps{
		Assignments: assignments,
		Assigner:    assignmentService,
		Questions:   questions,
		Journals:    journals,
		People:      persons,
		Recordings:  recordings,
		Blobs:       blobs,
		Dispatcher:  dispatcher,
		Hooks:       hooks,
		Tx:          txm,
	}, cfg.Recording)

	var publicLimit middleware.Middleware
	if cfg.RateLimit.PublicPerMinute > 0 {
		publicLimit = limiter.Limit(cfg.RateLimit.PublicPerMinute)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, blobs, BuildVersion()),
		Auth:          rest.NewAuthHandler(authService, logger),
		Account:       rest.NewAccountHandler(userService, logger),
		People:        rest.NewPeopleHandler(peopleService, logger),
		Journals:      rest.NewJournalHandler(journalService, logger),
		Assignments:   rest.NewAssignmentHandler(assignmentService, logger),
		Recordings:    rest.NewRecordingHandler(recordingService, cfg.Recording.MaxUploadBytes, logger),
		Notifications: rest.NewNotificationHandler(inboxService, logger),
		Public:        rest.NewPublicHandler(assignmentService, recordingService, cfg.Recording.MaxUploadBytes, logger),
	}, publicLimit)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)
}
