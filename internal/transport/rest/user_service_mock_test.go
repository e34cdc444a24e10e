package rest

import (
	"context"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc     func(ctx context.Context) (*domain.User, error)
	RegisterDeviceFunc func(ctx context.Context, input user.RegisterDeviceInput) (*domain.DeviceToken, error)
	ListDevicesFunc    func(ctx context.Context) ([]domain.DeviceToken, error)
	DeleteDeviceFunc   func(ctx context.Context, token string) error

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		RegisterDevice []struct {
			Ctx   context.Context
			Input user.RegisterDeviceInput
		}
		ListDevices []struct {
			Ctx context.Context
		}
		DeleteDevice []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockGetProfile     sync.RWMutex
	lockRegisterDevice sync.RWMutex
	lockListDevices    sync.RWMutex
	lockDeleteDevice   sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) RegisterDevice(ctx context.Context, input user.RegisterDeviceInput) (*domain.DeviceToken, error) {
	if mock.RegisterDeviceFunc == nil {
		panic("userServiceMock.RegisterDeviceFunc: method is nil but userService.RegisterDevice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.RegisterDeviceInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegisterDevice.Lock()
	mock.calls.RegisterDevice = append(mock.calls.RegisterDevice, callInfo)
	mock.lockRegisterDevice.Unlock()
	return mock.RegisterDeviceFunc(ctx, input)
}

func (mock *userServiceMock) RegisterDeviceCalls() []struct {
	Ctx   context.Context
	Input user.RegisterDeviceInput
} {
	mock.lockRegisterDevice.RLock()
	calls := mock.calls.RegisterDevice
	mock.lockRegisterDevice.RUnlock()
	return calls
}

func (mock *userServiceMock) ListDevices(ctx context.Context) ([]domain.DeviceToken, error) {
	if mock.ListDevicesFunc == nil {
		panic("userServiceMock.ListDevicesFunc: method is nil but userService.ListDevices was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListDevices.Lock()
	mock.calls.ListDevices = append(mock.calls.ListDevices, callInfo)
	mock.lockListDevices.Unlock()
	return mock.ListDevicesFunc(ctx)
}

func (mock *userServiceMock) ListDevicesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListDevices.RLock()
	calls := mock.calls.ListDevices
	mock.lockListDevices.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteDevice(ctx context.Context, token string) error {
	if mock.DeleteDeviceFunc == nil {
		panic("userServiceMock.DeleteDeviceFunc: method is nil but userService.DeleteDevice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockDeleteDevice.Lock()
	mock.calls.DeleteDevice = append(mock.calls.DeleteDevice, callInfo)
	mock.lockDeleteDevice.Unlock()
	return mock.DeleteDeviceFunc(ctx, token)
}

func (mock *userServiceMock) DeleteDeviceCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockDeleteDevice.RLock()
	calls := mock.calls.DeleteDevice
	mock.lockDeleteDevice.RUnlock()
	return calls
}
