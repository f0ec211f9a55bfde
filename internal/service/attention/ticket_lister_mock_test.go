package attention

import (
	"context"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
)

var _ ticketLister = &ticketListerMock{}

type ticketListerMock struct {
	ListOpenFunc func(ctx context.Context) ([]domain.Ticket, error)

	calls struct {
		ListOpen []struct {
			Ctx context.Context
		}
	}
	lockListOpen sync.RWMutex
}

func (mock *ticketListerMock) ListOpen(ctx context.Context) ([]domain.Ticket, error) {
	if mock.ListOpenFunc == nil {
		panic("ticketListerMock.ListOpenFunc: method is nil but ticketLister.ListOpen was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListOpen.Lock()
	mock.calls.ListOpen = append(mock.calls.ListOpen, callInfo)
	mock.lockListOpen.Unlock()
	return mock.ListOpenFunc(ctx)
}

func (mock *ticketListerMock) ListOpenCalls() []struct{ Ctx context.Context } {
	mock.lockListOpen.RLock()
	calls := mock.calls.ListOpen
	mock.lockListOpen.RUnlock()
	return calls
}
