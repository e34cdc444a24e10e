package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
)

var _ deviceRepo = &deviceRepoMock{}

type deviceRepoMock struct {
	UpsertDeviceTokenFunc func(ctx context.Context, t *domain.DeviceToken) (*domain.DeviceToken, error)
	ListDeviceTokensFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.DeviceToken, error)
	DeleteDeviceTokenFunc func(ctx context.Context, userID uuid.UUID, token string) error

	calls struct {
		UpsertDeviceToken []struct {
			Ctx context.Context
			T   *domain.DeviceToken
		}
		ListDeviceTokens []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteDeviceToken []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Token  string
		}
	}
	lockUpsertDeviceToken sync.RWMutex
	lockListDeviceTokens  sync.RWMutex
	lockDeleteDeviceToken sync.RWMutex
}

func (mock *deviceRepoMock) UpsertDeviceToken(ctx context.Context, t *domain.DeviceToken) (*domain.DeviceToken, error) {
	if mock.UpsertDeviceTokenFunc == nil {
		panic("deviceRepoMock.UpsertDeviceTokenFunc: method is nil but deviceRepo.UpsertDeviceToken was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.DeviceToken
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpsertDeviceToken.Lock()
	mock.calls.UpsertDeviceToken = append(mock.calls.UpsertDeviceToken, callInfo)
	mock.lockUpsertDeviceToken.Unlock()
	return mock.UpsertDeviceTokenFunc(ctx, t)
}

func (mock *deviceRepoMock) UpsertDeviceTokenCalls() []struct {
	Ctx context.Context
	T   *domain.DeviceToken
} {
	mock.lockUpsertDeviceToken.RLock()
	calls := mock.calls.UpsertDeviceToken
	mock.lockUpsertDeviceToken.RUnlock()
	return calls
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

func (mock *deviceRepoMock) DeleteDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	if mock.DeleteDeviceTokenFunc == nil {
		panic("deviceRepoMock.DeleteDeviceTokenFunc: method is nil but deviceRepo.DeleteDeviceToken was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Token  string
	}{
		Ctx:    ctx,
		UserID: userID,
		Token:  token,
	}
	mock.lockDeleteDeviceToken.Lock()
	mock.calls.DeleteDeviceToken = append(mock.calls.DeleteDeviceToken, callInfo)
	mock.lockDeleteDeviceToken.Unlock()
	return mock.DeleteDeviceTokenFunc(ctx, userID, token)
}

func (mock *deviceRepoMock) DeleteDeviceTokenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Token  string
} {
	mock.lockDeleteDeviceToken.RLock()
	calls := mock.calls.DeleteDeviceToken
	mock.lockDeleteDeviceToken.RUnlock()
	return calls
}
