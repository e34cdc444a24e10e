package assignment

import (
	"context"
	"sync"
	"time"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	SignedURLFunc func(ctx context.Context, key string, ttl time.Duration) (string, error)
	DeleteFunc    func(ctx context.Context, key string) error

	calls struct {
		SignedURL []struct {
			Ctx context.Context
			Key string
			Ttl time.Duration
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockSignedURL sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *blobStoreMock) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if mock.SignedURLFunc == nil {
		panic("blobStoreMock.SignedURLFunc: method is nil but blobStore.SignedURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Ttl time.Duration
	}{
		Ctx: ctx,
		Key: key,
		Ttl: ttl,
	}
	mock.lockSignedURL.Lock()
	mock.calls.SignedURL = append(mock.calls.SignedURL, callInfo)
	mock.lockSignedURL.Unlock()
	return mock.SignedURLFunc(ctx, key, ttl)
}

func (mock *blobStoreMock) SignedURLCalls() []struct {
	Ctx context.Context
	Key string
	Ttl time.Duration
} {
	mock.lockSignedURL.RLock()
	calls := mock.calls.SignedURL
	mock.lockSignedURL.RUnlock()
	return calls
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
