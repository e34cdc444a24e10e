package people

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
)

var _ personRepo = &personRepoMock{}

type personRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.Person) (*domain.Person, error)
	GetByIDFunc func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Person, error)
	ListFunc    func(ctx context.Context, ownerID uuid.UUID) ([]domain.Person, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Person
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *personRepoMock) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	if mock.CreateFunc == nil {
		panic("personRepoMock.CreateFunc: method is nil but personRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Person
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *personRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Person
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *personRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Person, error) {
	if mock.GetByIDFunc == nil {
		panic("personRepoMock.GetByIDFunc: method is nil but personRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		ID:      id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *personRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *personRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Person, error) {
	if mock.ListFunc == nil {
		panic("personRepoMock.ListFunc: method is nil but personRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *personRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
