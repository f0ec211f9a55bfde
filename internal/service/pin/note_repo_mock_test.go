package pin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
	"time"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	DeleteFunc         func(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error
	ListByEntitiesFunc func(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) ([]domain.PinNote, error)
	UpsertFunc         func(ctx context.Context, note domain.PinNote, now time.Time) (*domain.PinNote, error)

	calls struct {
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			EntityType domain.EntityType
			EntityID   uuid.UUID
		}
		ListByEntities []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			EntityIDs []uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Note domain.PinNote
			Now  time.Time
		}
	}
	lockDelete         sync.RWMutex
	lockListByEntities sync.RWMutex
	lockUpsert         sync.RWMutex
}

func (mock *noteRepoMock) Delete(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		EntityType domain.EntityType
		EntityID   uuid.UUID
	}{Ctx: ctx, UserID: userID, EntityType: entityType, EntityID: entityID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entityType, entityID)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	EntityType domain.EntityType
	EntityID   uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteRepoMock) ListByEntities(ctx context.Context, userID uuid.UUID, entityIDs []uuid.UUID) ([]domain.PinNote, error) {
	if mock.ListByEntitiesFunc == nil {
		panic("noteRepoMock.ListByEntitiesFunc: method is nil but noteRepo.ListByEntities was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		EntityIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, EntityIDs: entityIDs}
	mock.lockListByEntities.Lock()
	mock.calls.ListByEntities = append(mock.calls.ListByEntities, callInfo)
	mock.lockListByEntities.Unlock()
	return mock.ListByEntitiesFunc(ctx, userID, entityIDs)
}

func (mock *noteRepoMock) ListByEntitiesCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	EntityIDs []uuid.UUID
} {
	mock.lockListByEntities.RLock()
	calls := mock.calls.ListByEntities
	mock.lockListByEntities.RUnlock()
	return calls
}

func (mock *noteRepoMock) Upsert(ctx context.Context, note domain.PinNote, now time.Time) (*domain.PinNote, error) {
	if mock.UpsertFunc == nil {
		panic("noteRepoMock.UpsertFunc: method is nil but noteRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Note domain.PinNote
		Now  time.Time
	}{Ctx: ctx, Note: note, Now: now}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, note, now)
}

func (mock *noteRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Note domain.PinNote
	Now  time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
