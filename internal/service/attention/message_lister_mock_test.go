package attention

import (
	"context"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
)

var _ messageLister = &messageListerMock{}

type messageListerMock struct {
	ListRecentFunc func(ctx context.Context, source string, limit int) ([]domain.Message, error)

	calls struct {
		ListRecent []struct {
			Ctx    context.Context
			Source string
			Limit  int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *messageListerMock) ListRecent(ctx context.Context, source string, limit int) ([]domain.Message, error) {
	if mock.ListRecentFunc == nil {
		panic("messageListerMock.ListRecentFunc: method is nil but messageLister.ListRecent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source string
		Limit  int
	}{Ctx: ctx, Source: source, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, source, limit)
}

func (mock *messageListerMock) ListRecentCalls() []struct {
	Ctx    context.Context
	Source string
	Limit  int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
