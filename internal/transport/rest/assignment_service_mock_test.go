package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/assignment"
	"sync"
)

var _ assignmentService = &assignmentServiceMock{}

type assignmentServiceMock struct {
	CreateFunc            func(ctx context.Context, input assignment.CreateInput) (*domain.Assignment, bool, error)
	GetFunc               func(ctx context.Context, id uuid.UUID) (*assignment.View, error)
	SendFunc              func(ctx context.Context, input assignment.SendInput) (*domain.Assignment, error)
	RemindFunc            func(ctx context.Context, input assignment.RemindInput) (*domain.Assignment, error)
	RemindEligibilityFunc func(ctx context.Context, id uuid.UUID, strict bool) (assignment.Decision, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input assignment.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Send []struct {
			Ctx   context.Context
			Input assignment.SendInput
		}
		Remind []struct {
			Ctx   context.Context
			Input assignment.RemindInput
		}
		RemindEligibility []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Strict bool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGet               sync.RWMutex
	lockSend              sync.RWMutex
	lockRemind            sync.RWMutex
	lockRemindEligibility sync.RWMutex
	lockDelete            sync.RWMutex
}

func (mock *assignmentServiceMock) Create(ctx context.Context, input assignment.CreateInput) (*domain.Assignment, bool, error) {
	if mock.CreateFunc == nil {
		panic("assignmentServiceMock.CreateFunc: method is nil but assignmentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assignment.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *assignmentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input assignment.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Get(ctx context.Context, id uuid.UUID) (*assignment.View, error) {
	if mock.GetFunc == nil {
		panic("assignmentServiceMock.GetFunc: method is nil but assignmentService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *assignmentServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Send(ctx context.Context, input assignment.SendInput) (*domain.Assignment, error) {
	if mock.SendFunc == nil {
		panic("assignmentServiceMock.SendFunc: method is nil but assignmentService.Send was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assignment.SendInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, input)
}

func (mock *assignmentServiceMock) SendCalls() []struct {
	Ctx   context.Context
	Input assignment.SendInput
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Remind(ctx context.Context, input assignment.RemindInput) (*domain.Assignment, error) {
	if mock.RemindFunc == nil {
		panic("assignmentServiceMock.RemindFunc: method is nil but assignmentService.Remind was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assignment.RemindInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRemind.Lock()
	mock.calls.Remind = append(mock.calls.Remind, callInfo)
	mock.lockRemind.Unlock()
	return mock.RemindFunc(ctx, input)
}

func (mock *assignmentServiceMock) RemindCalls() []struct {
	Ctx   context.Context
	Input assignment.RemindInput
} {
	mock.lockRemind.RLock()
	calls := mock.calls.Remind
	mock.lockRemind.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) RemindEligibility(ctx context.Context, id uuid.UUID, strict bool) (assignment.Decision, error) {
	if mock.RemindEligibilityFunc == nil {
		panic("assignmentServiceMock.RemindEligibilityFunc: method is nil but assignmentService.RemindEligibility was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Strict bool
	}{
		Ctx:    ctx,
		ID:     id,
		Strict: strict,
	}
	mock.lockRemindEligibility.Lock()
	mock.calls.RemindEligibility = append(mock.calls.RemindEligibility, callInfo)
	mock.lockRemindEligibility.Unlock()
	return mock.RemindEligibilityFunc(ctx, id, strict)
}

func (mock *assignmentServiceMock) RemindEligibilityCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Strict bool
} {
	mock.lockRemindEligibility.RLock()
	calls := mock.calls.RemindEligibility
	mock.lockRemindEligibility.RUnlock()
	return calls
}

func (mock *assignmentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("assignmentServiceMock.DeleteFunc: method is nil but assignmentService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *assignmentServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
