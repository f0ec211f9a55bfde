package pin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
)

var _ ticketReader = &ticketReaderMock{}

type ticketReaderMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Ticket, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *ticketReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	if mock.GetByIDFunc == nil {
		panic("ticketReaderMock.GetByIDFunc: method is nil but ticketReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ticketReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *ticketReaderMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Ticket, error) {
	if mock.GetByIDsFunc == nil {
		panic("ticketReaderMock.GetByIDsFunc: method is nil but ticketReader.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *ticketReaderMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
