package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/people"
	"sync"
)

var _ peopleService = &peopleServiceMock{}

type peopleServiceMock struct {
	CreatePersonFunc func(ctx context.Context, input people.CreatePersonInput) (*domain.Person, error)
	GetPersonFunc    func(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	ListPeopleFunc   func(ctx context.Context) ([]domain.Person, error)

	calls struct {
		CreatePerson []struct {
			Ctx   context.Context
			Input people.CreatePersonInput
		}
		GetPerson []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPeople []struct {
			Ctx context.Context
		}
	}
	lockCreatePerson sync.RWMutex
	lockGetPerson    sync.RWMutex
	lockListPeople   sync.RWMutex
}

func (mock *peopleServiceMock) CreatePerson(ctx context.Context, input people.CreatePersonInput) (*domain.Person, error) {
	if mock.CreatePersonFunc == nil {
		panic("peopleServiceMock.CreatePersonFunc: method is nil but peopleService.CreatePerson was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input people.CreatePersonInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreatePerson.Lock()
	mock.calls.CreatePerson = append(mock.calls.CreatePerson, callInfo)
	mock.lockCreatePerson.Unlock()
	return mock.CreatePersonFunc(ctx, input)
}

func (mock *peopleServiceMock) CreatePersonCalls() []struct {
	Ctx   context.Context
	Input people.CreatePersonInput
} {
	mock.lockCreatePerson.RLock()
	calls := mock.calls.CreatePerson
	mock.lockCreatePerson.RUnlock()
	return calls
}

func (mock *peopleServiceMock) GetPerson(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	if mock.GetPersonFunc == nil {
		panic("peopleServiceMock.GetPersonFunc: method is nil but peopleService.GetPerson was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetPerson.Lock()
	mock.calls.GetPerson = append(mock.calls.GetPerson, callInfo)
	mock.lockGetPerson.Unlock()
	return mock.GetPersonFunc(ctx, id)
}

func (mock *peopleServiceMock) GetPersonCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPerson.RLock()
	calls := mock.calls.GetPerson
	mock.lockGetPerson.RUnlock()
	return calls
}

func (mock *peopleServiceMock) ListPeople(ctx context.Context) ([]domain.Person, error) {
	if mock.ListPeopleFunc == nil {
		panic("peopleServiceMock.ListPeopleFunc: method is nil but peopleService.ListPeople was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPeople.Lock()
	mock.calls.ListPeople = append(mock.calls.ListPeople, callInfo)
	mock.lockListPeople.Unlock()
	return mock.ListPeopleFunc(ctx)
}

func (mock *peopleServiceMock) ListPeopleCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPeople.RLock()
	calls := mock.calls.ListPeople
	mock.lockListPeople.RUnlock()
	return calls
}
