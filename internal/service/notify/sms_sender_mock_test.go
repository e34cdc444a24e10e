package notify

import (
	"context"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"sync"
)

var _ smsSender = &smsSenderMock{}

type smsSenderMock struct {
	SendFunc func(ctx context.Context, msg domain.SMS) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg domain.SMS
		}
	}
	lockSend sync.RWMutex
}

func (mock *smsSenderMock) Send(ctx context.Context, msg domain.SMS) error {
	if mock.SendFunc == nil {
		panic("smsSenderMock.SendFunc: method is nil but smsSender.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.SMS
	}{
		Ctx: ctx,
		Msg: msg,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *smsSenderMock) SendCalls() []struct {
	Ctx context.Context
	Msg domain.SMS
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
