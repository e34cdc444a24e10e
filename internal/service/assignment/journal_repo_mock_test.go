package assignment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
)

var _ journalRepo = &journalRepoMock{}

type journalRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Journal, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *journalRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	if mock.GetByIDFunc == nil {
		panic("journalRepoMock.GetByIDFunc: method is nil but journalRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *journalRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
