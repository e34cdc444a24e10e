package assignment

import (
	"context"
	"github.com/heartmarshall/memoir-backend/internal/postcommit"
	"sync"
)

var _ hookRunner = &hookRunnerMock{}

type hookRunnerMock struct {
	GoFunc func(ctx context.Context, hooks ...postcommit.Hook)

	calls struct {
		Go []struct {
			Ctx   context.Context
			Hooks []postcommit.Hook
		}
	}
	lockGo sync.RWMutex
}

func (mock *hookRunnerMock) Go(ctx context.Context, hooks ...postcommit.Hook) {
	if mock.GoFunc == nil {
		panic("hookRunnerMock.GoFunc: method is nil but hookRunner.Go was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Hooks []postcommit.Hook
	}{
		Ctx:   ctx,
		Hooks: hooks,
	}
	mock.lockGo.Lock()
	mock.calls.Go = append(mock.calls.Go, callInfo)
	mock.lockGo.Unlock()
	mock.GoFunc(ctx, hooks...)
}

func (mock *hookRunnerMock) GoCalls() []struct {
	Ctx   context.Context
	Hooks []postcommit.Hook
} {
	mock.lockGo.RLock()
	calls := mock.calls.Go
	mock.lockGo.RUnlock()
	return calls
}
