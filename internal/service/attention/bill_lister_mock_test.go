package attention

import (
	"context"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
)

var _ billLister = &billListerMock{}

type billListerMock struct {
	ListUnsettledFunc func(ctx context.Context) ([]domain.Bill, error)

	calls struct {
		ListUnsettled []struct {
			Ctx context.Context
		}
	}
	lockListUnsettled sync.RWMutex
}

func (mock *billListerMock) ListUnsettled(ctx context.Context) ([]domain.Bill, error) {
	if mock.ListUnsettledFunc == nil {
		panic("billListerMock.ListUnsettledFunc: method is nil but billLister.ListUnsettled was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListUnsettled.Lock()
	mock.calls.ListUnsettled = append(mock.calls.ListUnsettled, callInfo)
	mock.lockListUnsettled.Unlock()
	return mock.ListUnsettledFunc(ctx)
}

func (mock *billListerMock) ListUnsettledCalls() []struct{ Ctx context.Context } {
	mock.lockListUnsettled.RLock()
	calls := mock.calls.ListUnsettled
	mock.lockListUnsettled.RUnlock()
	return calls
}
