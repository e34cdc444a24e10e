package recording

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
	"time"
)

var _ assignmentRepo = &assignmentRepoMock{}

type assignmentRepoMock struct {
	GetContextFunc        func(ctx context.Context, id uuid.UUID) (*domain.AssignmentContext, error)
	GetContextByTokenFunc func(ctx context.Context, token string) (*domain.AssignmentContext, error)
	LockForUpdateFunc     func(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	MarkAnsweredFunc      func(ctx context.Context, id uuid.UUID, answeredAt time.Time) (*domain.Assignment, error)
	RevertToSentFunc      func(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)

	calls struct {
		GetContext []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetContextByToken []struct {
			Ctx   context.Context
			Token string
		}
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkAnswered []struct {
			Ctx        context.Context
			ID         uuid.UUID
			AnsweredAt time.Time
		}
		RevertToSent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetContext        sync.RWMutex
	lockGetContextByToken sync.RWMutex
	lockLockForUpdate     sync.RWMutex
	lockMarkAnswered      sync.RWMutex
	lockRevertToSent      sync.RWMutex
}

func (mock *assignmentRepoMock) GetContext(ctx context.Context, id uuid.UUID) (*domain.AssignmentContext, error) {
	if mock.GetContextFunc == nil {
		panic("assignmentRepoMock.GetContextFunc: method is nil but assignmentRepo.GetContext was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetContext.Lock()
	mock.calls.GetContext = append(mock.calls.GetContext, callInfo)
	mock.lockGetContext.Unlock()
	return mock.GetContextFunc(ctx, id)
}

func (mock *assignmentRepoMock) GetContextCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetContext.RLock()
	calls := mock.calls.GetContext
	mock.lockGetContext.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) GetContextByToken(ctx context.Context, token string) (*domain.AssignmentContext, error) {
	if mock.GetContextByTokenFunc == nil {
		panic("assignmentRepoMock.GetContextByTokenFunc: method is nil but assignmentRepo.GetContextByToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockGetContextByToken.Lock()
	mock.calls.GetContextByToken = append(mock.calls.GetContextByToken, callInfo)
	mock.lockGetContextByToken.Unlock()
	return mock.GetContextByTokenFunc(ctx, token)
}

func (mock *assignmentRepoMock) GetContextByTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetContextByToken.RLock()
	calls := mock.calls.GetContextByToken
	mock.lockGetContextByToken.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if mock.LockForUpdateFunc == nil {
		panic("assignmentRepoMock.LockForUpdateFunc: method is nil but assignmentRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *assignmentRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) MarkAnswered(ctx context.Context, id uuid.UUID, answeredAt time.Time) (*domain.Assignment, error) {
	if mock.MarkAnsweredFunc == nil {
		panic("assignmentRepoMock.MarkAnsweredFunc: method is nil but assignmentRepo.MarkAnswered was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		AnsweredAt time.Time
	}{
		Ctx:        ctx,
		ID:         id,
		AnsweredAt: answeredAt,
	}
	mock.lockMarkAnswered.Lock()
	mock.calls.MarkAnswered = append(mock.calls.MarkAnswered, callInfo)
	mock.lockMarkAnswered.Unlock()
	return mock.MarkAnsweredFunc(ctx, id, answeredAt)
}

func (mock *assignmentRepoMock) MarkAnsweredCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	AnsweredAt time.Time
} {
	mock.lockMarkAnswered.RLock()
	calls := mock.calls.MarkAnswered
	mock.lockMarkAnswered.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) RevertToSent(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if mock.RevertToSentFunc == nil {
		panic("assignmentRepoMock.RevertToSentFunc: method is nil but assignmentRepo.RevertToSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockRevertToSent.Lock()
	mock.calls.RevertToSent = append(mock.calls.RevertToSent, callInfo)
	mock.lockRevertToSent.Unlock()
	return mock.RevertToSentFunc(ctx, id)
}

func (mock *assignmentRepoMock) RevertToSentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevertToSent.RLock()
	calls := mock.calls.RevertToSent
	mock.lockRevertToSent.RUnlock()
	return calls
}
