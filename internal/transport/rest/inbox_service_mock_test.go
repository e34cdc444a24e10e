package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/service/inbox"
	"sync"
)

var _ inboxService = &inboxServiceMock{}

type inboxServiceMock struct {
	ListFunc        func(ctx context.Context, input inbox.ListInput) (*inbox.ListResult, error)
	MarkReadFunc    func(ctx context.Context, id uuid.UUID) error
	MarkAllReadFunc func(ctx context.Context) (int64, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input inbox.ListInput
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
	}
	lockList        sync.RWMutex
	lockMarkRead    sync.RWMutex
	lockMarkAllRead sync.RWMutex
}

func (mock *inboxServiceMock) List(ctx context.Context, input inbox.ListInput) (*inbox.ListResult, error) {
	if mock.ListFunc == nil {
		panic("inboxServiceMock.ListFunc: method is nil but inboxService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inbox.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *inboxServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input inbox.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inboxServiceMock) MarkRead(ctx context.Context, id uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("inboxServiceMock.MarkReadFunc: method is nil but inboxService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *inboxServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *inboxServiceMock) MarkAllRead(ctx context.Context) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("inboxServiceMock.MarkAllReadFunc: method is nil but inboxService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *inboxServiceMock) MarkAllReadCalls() []struct {
	Ctx context.Context
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}
