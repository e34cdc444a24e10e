// Package recording implements the recording intake pipeline and the owner
// operations on stored answers.
package recording

import (
	"context"
	"io"
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
	GetContext(ctx context.Context, id uuid.UUID) (*domain.AssignmentContext, error)
	GetContextByToken(ctx context.Context, token string) (*domain.AssignmentContext, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	MarkAnswered(ctx context.Context, id uuid.UUID, answeredAt time.Time) (*domain.Assignment, error)
	RevertToSent(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
}

// selfAssigner returns the owner's own assignment for a question.
type selfAssigner interface {
	CreateForSelf(ctx context.Context, questionID, selfPersonID uuid.UUID) (*domain.Assignment, error)
}

type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
}

type journalRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
}

type personRepo interface {
	GetSelf(ctx context.Context, ownerID uuid.UUID) (*domain.Person, error)
}

type recordingRepo interface {
	Create(ctx context.Context, rec *domain.Recording) (*domain.Recording, error)
	GetByAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Recording, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Recording, error)
	DeleteByAssignment(ctx context.Context, assignmentID uuid.UUID) (string, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type dispatcher interface {
	RecordAnswered(ctx context.Context, ev notify.AnsweredEvent) error
	AnsweredHooks(ev notify.AnsweredEvent) []postcommit.Hook
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

// Deps groups the collaborators of the recording service.
type Deps struct {
	Assignments assignmentRepo
	Assigner    selfAssigner
	Questions   questionRepo
	Journals    journalRepo
	People      personRepo
	Recordings  recordingRepo
	Blobs       blobStore
	Dispatcher  dispatcher
	Hooks       hookRunner
	Tx          txManager
}

// Service implements recording intake.
type Service struct {
	log         *slog.Logger
	assignments assignmentRepo
	assigner    selfAssigner
	questions   questionRepo
	journals    journalRepo
	people      personRepo
	recordings  recordingRepo
	blobs       blobStore
	dispatcher  dispatcher
	hooks       hookRunner
	tx          txManager
	cfg         config.RecordingConfig
	now         func() time.Time
}

// NewService creates a new recording service.
func NewService(logger *slog.Logger, deps Deps, cfg config.RecordingConfig) *Service {
	return &Service{
		log:         logger.With("service", "recording"),
		assignments: deps.Assignments,
		assigner:    deps.Assigner,
		questions:   deps.Questions,
		journals:    deps.Journals,
		people:      deps.People,
		recordings:  deps.Recordings,
		blobs:       deps.Blobs,
		dispatcher:  deps.Dispatcher,
		hooks:       deps.Hooks,
		tx:          deps.Tx,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
