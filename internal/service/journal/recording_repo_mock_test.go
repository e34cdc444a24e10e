package journal

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ recordingRepo = &recordingRepoMock{}

type recordingRepoMock struct {
	BlobKeysByQuestionFunc func(ctx context.Context, questionID uuid.UUID) ([]string, error)

	calls struct {
		BlobKeysByQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockBlobKeysByQuestion sync.RWMutex
}

func (mock *recordingRepoMock) BlobKeysByQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error) {
	if mock.BlobKeysByQuestionFunc == nil {
		panic("recordingRepoMock.BlobKeysByQuestionFunc: method is nil but recordingRepo.BlobKeysByQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
	}
	mock.lockBlobKeysByQuestion.Lock()
	mock.calls.BlobKeysByQuestion = append(mock.calls.BlobKeysByQuestion, callInfo)
	mock.lockBlobKeysByQuestion.Unlock()
	return mock.BlobKeysByQuestionFunc(ctx, questionID)
}

func (mock *recordingRepoMock) BlobKeysByQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	mock.lockBlobKeysByQuestion.RLock()
	calls := mock.calls.BlobKeysByQuestion
	mock.lockBlobKeysByQuestion.RUnlock()
	return calls
}
