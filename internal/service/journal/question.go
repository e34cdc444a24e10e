package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// AddQuestion adds a question to one of the authenticated user's journals.
// Returns ErrAlreadyExists if an explicit order is already taken.
func (s *Service) AddQuestion(ctx context.Context, input AddQuestionInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedJournal(ctx, userID, input.JournalID); err != nil {
		return nil, err
	}

	q, err := s.questions.Create(ctx, &domain.Question{
		ID:        uuid.New(),
		JournalID: input.JournalID,
		Text:      strings.TrimSpace(input.Text),
		Source:    input.Source,
		CreatedAt: time.Now().UTC(),
	}, input.Order)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.log.InfoContext(ctx, "question added",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("question_id", q.ID.String()),
		slog.Int("order", q.DisplayOrder),
	)

	return q, nil
}

// ReorderQuestions applies a complete new ordering to the journal's questions.
// The ids must be exactly the journal's questions.
func (s *Service) ReorderQuestions(ctx context.Context, input ReorderQuestionsInput) ([]domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedJournal(ctx, userID, input.JournalID); err != nil {
		return nil, err
	}

	var questions []domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.questions.Reorder(txCtx, input.JournalID, input.QuestionIDs); err != nil {
			return fmt.Errorf("reorder questions: %w", err)
		}
		var err error
		questions, err = s.questions.ListByJournal(txCtx, input.JournalID)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return questions, nil
}

// DeleteQuestion removes a question together with its assignments and
// recordings. Audio blobs are removed after the commit on a best-effort basis.
func (s *Service) DeleteQuestion(ctx context.Context, input DeleteQuestionInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.ownedJournal(ctx, userID, input.JournalID); err != nil {
		return err
	}

	var blobKeys []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		keys, err := s.recordings.BlobKeysByQuestion(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("list recording blobs: %w", err)
		}
		if err := s.questions.Delete(txCtx, input.JournalID, input.QuestionID); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		blobKeys = keys
		return nil
	})
	if err != nil {
		return err
	}

	if len(blobKeys) > 0 {
		s.hooks.Go(ctx, s.deleteBlobsHook(blobKeys))
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.Int("recordings", len(blobKeys)),
	)

	return nil
}

func (s *Service) deleteBlobsHook(keys []string) postcommit.Hook {
	return postcommit.Hook{
		Name: "question.delete_blobs",
		Run: func(ctx context.Context) error {
			var errs []error
			for _, key := range keys {
				if err := s.blobs.Delete(ctx, key); err != nil {
					errs = append(errs, fmt.Errorf("delete blob %s: %w", key, err))
				}
			}
			return errors.Join(errs...)
		},
	}
}
