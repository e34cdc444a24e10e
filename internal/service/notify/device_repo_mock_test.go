package notify

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
)

var _ deviceRepo = &deviceRepoMock{}

type deviceRepoMock struct {
	ListDeviceTokensFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error)
	DeleteDeviceTokensFunc func(ctx context.Context, tokens []string) (int, error)

	calls struct {
		ListDeviceTokens []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteDeviceTokens []struct {
			Ctx    context.Context
			Tokens []string
		}
	}
	lockListDeviceTokens   sync.RWMutex
	lockDeleteDeviceTokens sync.RWMutex
}

func (mock *deviceRepoMock) ListDeviceTokens(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error) {
	if mock.ListDeviceTokensFunc == nil {
		panic("deviceRepoMock.ListDeviceTokensFunc: method is nil but deviceRepo.ListDeviceTokens was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListDeviceTokens.Lock()
	mock.calls.ListDeviceTokens = append(mock.calls.ListDeviceTokens, callInfo)
	mock.lockListDeviceTokens.Unlock()
	return mock.ListDeviceTokensFunc(ctx, userID)
}

func (mock *deviceRepoMock) ListDeviceTokensCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListDeviceTokens.RLock()
	calls := mock.calls.ListDeviceTokens
	mock.lockListDeviceTokens.RUnlock()
	return calls
}

func (mock *deviceRepoMock) DeleteDeviceTokens(ctx context.Context, tokens []string) (int, error) {
	if mock.DeleteDeviceTokensFunc == nil {
		panic("deviceRepoMock.DeleteDeviceTokensFunc: method is nil but deviceRepo.DeleteDeviceTokens was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tokens []string
	}{
		Ctx:    ctx,
		Tokens: tokens,
	}
	mock.lockDeleteDeviceTokens.Lock()
	mock.calls.DeleteDeviceTokens = append(mock.calls.DeleteDeviceTokens, callInfo)
	mock.lockDeleteDeviceTokens.Unlock()
	return mock.DeleteDeviceTokensFunc(ctx, tokens)
}

func (mock *deviceRepoMock) DeleteDeviceTokensCalls() []struct {
	Ctx    context.Context
	Tokens []string
} {
	mock.lockDeleteDeviceTokens.RLock()
	calls := mock.calls.DeleteDeviceTokens
	mock.lockDeleteDeviceTokens.RUnlock()
	return calls
}
