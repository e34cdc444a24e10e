// Package journal implements journals, their questions and the progress overview.
package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
)

type journalRepo interface {
	Create(ctx context.Context, j *domain.Journal) (*domain.Journal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Journal, error)
	QuestionProgress(ctx context.Context, journalID uuid.UUID, f domain.ProgressFilter) ([]domain.QuestionProgress, error)
}

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question, order *int) (*domain.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListByJournal(ctx context.Context, journalID uuid.UUID) ([]domain.Question, error)
	Reorder(ctx context.Context, journalID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, journalID, id uuid.UUID) error
}

type recordingRepo interface {
	BlobKeysByQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error)
}

type blobStore interface {
	Delete(ctx context.Context, key string) error
}

type hookRunner interface {
	Go(ctx context.Context, hooks ...postcommit.Hook)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxQuestionsPerJournal = 500
)

// Service provides journal and question operations.
type Service struct {
	journals   journalRepo
	questions  questionRepo
	recordings recordingRepo
	blobs      blobStore
	hooks      hookRunner
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new journal service.
func NewService(
	log *slog.Logger,
	journals journalRepo,
	questions questionRepo,
	recordings recordingRepo,
	blobs blobStore,
	hooks hookRunner,
	tx txManager,
) *Service {
	return &Service{
		journals:   journals,
		questions:  questions,
		recordings: recordings,
		blobs:      blobs,
		hooks:      hooks,
		tx:         tx,
		log:        log.With("service", "journal"),
	}
}

// ownedJournal loads the journal and checks that userID owns it.
func (s *Service) ownedJournal(ctx context.Context, userID, journalID uuid.UUID) (*domain.Journal, error) {
	j, err := s.journals.GetByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("get journal: %w", err)
	}
	if j.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return j, nil
}
