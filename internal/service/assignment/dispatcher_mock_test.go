package assignment

import (
	"context"
	"github.com/heartmarshall/memoir-backend/internal/domain"
	"github.com/heartmarshall/memoir-backend/internal/service/notify"
	"sync"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	SendInvitationFunc func(ctx context.Context, ch domain.Channel, p *domain.Person, inv notify.Invitation) error
	RecordViewedFunc   func(ctx context.Context, ev notify.ViewedEvent) error

	calls struct {
		SendInvitation []struct {
			Ctx context.Context
			Ch  domain.Channel
			P   *domain.Person
			Inv notify.Invitation
		}
		RecordViewed []struct {
			Ctx context.Context
			Ev  notify.ViewedEvent
		}
	}
	lockSendInvitation sync.RWMutex
	lockRecordViewed   sync.RWMutex
}

func (mock *dispatcherMock) SendInvitation(ctx context.Context, ch domain.Channel, p *domain.Person, inv notify.Invitation) error {
	if mock.SendInvitationFunc == nil {
		panic("dispatcherMock.SendInvitationFunc: method is nil but dispatcher.SendInvitation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ch  domain.Channel
		P   *domain.Person
		Inv notify.Invitation
	}{
		Ctx: ctx,
		Ch:  ch,
		P:   p,
		Inv: inv,
	}
	mock.lockSendInvitation.Lock()
	mock.calls.SendInvitation = append(mock.calls.SendInvitation, callInfo)
	mock.lockSendInvitation.Unlock()
	return mock.SendInvitationFunc(ctx, ch, p, inv)
}

func (mock *dispatcherMock) SendInvitationCalls() []struct {
	Ctx context.Context
	Ch  domain.Channel
	P   *domain.Person
	Inv notify.Invitation
} {
	mock.lockSendInvitation.RLock()
	calls := mock.calls.SendInvitation
	mock.lockSendInvitation.RUnlock()
	return calls
}

func (mock *dispatcherMock) RecordViewed(ctx context.Context, ev notify.ViewedEvent) error {
	if mock.RecordViewedFunc == nil {
		panic("dispatcherMock.RecordViewedFunc: method is nil but dispatcher.RecordViewed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  notify.ViewedEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockRecordViewed.Lock()
	mock.calls.RecordViewed = append(mock.calls.RecordViewed, callInfo)
	mock.lockRecordViewed.Unlock()
	return mock.RecordViewedFunc(ctx, ev)
}

func (mock *dispatcherMock) RecordViewedCalls() []struct {
	Ctx context.Context
	Ev  notify.ViewedEvent
} {
	mock.lockRecordViewed.RLock()
	calls := mock.calls.RecordViewed
	mock.lockRecordViewed.RUnlock()
	return calls
}
