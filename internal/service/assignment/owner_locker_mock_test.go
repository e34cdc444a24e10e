package assignment

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ ownerLocker = &ownerLockerMock{}

type ownerLockerMock struct {
	LockForUpdateFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		LockForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockLockForUpdate sync.RWMutex
}

func (mock *ownerLockerMock) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if mock.LockForUpdateFunc == nil {
		panic("ownerLockerMock.LockForUpdateFunc: method is nil but ownerLocker.LockForUpdate was just called")
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

func (mock *ownerLockerMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}
