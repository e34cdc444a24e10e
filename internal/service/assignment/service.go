// Package assignment implements the assignment lifecycle: creation, delivery,
// viewing through the public link, reminders and deletion.
package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/config"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type assignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, bool, error)
	GetContext(ctx context.Context, id uuid.UUID) (*domain.AssignmentContext, error)
	GetContextByToken(ctx context.Context, token string) (*domain.AssignmentContext, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) (*domain.Assignment, error)
	MarkViewed(ctx context.Context, id uuid.UUID, viewedAt time.Time) (*domain.Assignment, bool, error)
	ApplyReminder(ctx context.Context, id uuid.UUID, remindedAt time.Time) (*domain.Assignment, error)
	RollbackReminder(ctx context.Context, applied *domain.Assignment, previousReminderAt *time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
}

type journalRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
}

type personRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Person, error)
}

type recordingRepo interface {
	GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Recording, error)
	DeleteByAssignment(ctx context.Context, assignmentID uuid.UUID) (string, error)
}

type reminderLogRepo interface {
	Insert(ctx context.Context, e *domain.ReminderLogEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForOwnerSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error)
}

// ownerLocker serializes reminder decisions per owner.
type ownerLocker interface {
	LockForUpdate(ctx context.Context, id uuid.UUID) error
}

type tokenGenerator interface {
	New() (string, error)
}

type dispatcher interface {
	SendInvitation(ctx context.Context, ch domain.Channel, p *domain.Person, inv notify.Invitation) error
	RecordViewed(ctx context.Context, ev notify.ViewedEvent) error
}

type blobStore interface {
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type hookRunner interface {
	Go(ctx context.Context, hooks ...postcommit.Hook)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Deps groups the collaborators of the assignment service.
type Deps struct {
	Assignments assignmentRepo
	Questions   questionRepo
	Journals    journalRepo
	People      personRepo
	Recordings  recordingRepo
	Reminders   reminderLogRepo
	Owners      ownerLocker
	Tokens      tokenGenerator
	Dispatcher  dispatcher
	Blobs       blobStore
	Hooks       hookRunner
	Tx          txManager
}

// Service implements the assignment lifecycle.
type Service struct {
	log          *slog.Logger
	assignments  assignmentRepo
	questions    questionRepo
	journals     journalRepo
	people       personRepo
	recordings   recordingRepo
	reminders    reminderLogRepo
	owners       ownerLocker
	tokens       tokenGenerator
	dispatcher   dispatcher
	blobs        blobStore
	hooks        hookRunner
	tx           txManager
	policy       Policy
	strictPolicy Policy
	dayLocation  *time.Location
	signedURLTTL time.Duration
	now          func() time.Time
}

// NewService creates a new assignment service.
func NewService(logger *slog.Logger, deps Deps, reminderCfg config.ReminderConfig, signedURLTTL time.Duration) *Service {
	basic, strict := PolicyFromConfig(reminderCfg)
	loc := reminderCfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:          logger.With("service", "assignment"),
		assignments:  deps.Assignments,
		questions:    deps.Questions,
		journals:     deps.Journals,
		people:       deps.People,
		recordings:   deps.Recordings,
		reminders:    deps.Reminders,
		owners:       deps.Owners,
		tokens:       deps.Tokens,
		dispatcher:   deps.Dispatcher,
		blobs:        deps.Blobs,
		hooks:        deps.Hooks,
		tx:           deps.Tx,
		policy:       basic,
		strictPolicy: strict,
		dayLocation:  loc,
		signedURLTTL: signedURLTTL,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ownedContext loads the assignment with its surroundings and checks that
// userID owns the parent journal.
func (s *Service) ownedContext(ctx context.Context, userID, id uuid.UUID) (*domain.AssignmentContext, error) {
	actx, err := s.assignments.GetContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if actx.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return actx, nil
}
