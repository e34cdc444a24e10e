package assignment

import (
	"sync"
)

var _ tokenGenerator = &tokenGeneratorMock{}

type tokenGeneratorMock struct {
	NewFunc func() (string, error)

	calls struct {
		New []struct{}
	}
	lockNew sync.RWMutex
}

func (mock *tokenGeneratorMock) New() (string, error) {
	if mock.NewFunc == nil {
		panic("tokenGeneratorMock.NewFunc: method is nil but tokenGenerator.New was just called")
	}
	mock.lockNew.Lock()
	mock.calls.New = append(mock.calls.New, struct{}{})
	mock.lockNew.Unlock()
	return mock.NewFunc()
}

func (mock *tokenGeneratorMock) NewCalls() []struct{} {
	mock.lockNew.RLock()
	calls := mock.calls.New
	mock.lockNew.RUnlock()
	return calls
}
