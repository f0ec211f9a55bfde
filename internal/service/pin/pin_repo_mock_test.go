package pin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
	"time"
)

var _ pinRepo = &pinRepoMock{}

type pinRepoMock struct {
	CreateUserPinFunc  func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, metadata map[string]any, now time.Time) (*domain.Pin, error)
	DeleteUserPinFunc  func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) error
	DismissFunc        func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) error
	GetForUpdateFunc   func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error)
	ListPinnedIDsFunc  func(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	ListPinsFunc       func(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error)
	ReclaimForUserFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) (*domain.Pin, error)
	UndoDismissFunc    func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, now time.Time) (bool, error)

	calls struct {
		CreateUserPin []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Actor      domain.Actor
			Metadata   map[string]any
			Now        time.Time
		}
		DeleteUserPin []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
		}
		Dismiss []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Actor      domain.Actor
			Now        time.Time
		}
		GetForUpdate []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
		}
		ListPinnedIDs []struct {
			Ctx        context.Context
			EntityType domain.EntityType
		}
		ListPins []struct {
			Ctx context.Context
			F   domain.PinFilter
		}
		ReclaimForUser []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Actor      domain.Actor
			Now        time.Time
		}
		UndoDismiss []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Now        time.Time
		}
	}
	lockCreateUserPin  sync.RWMutex
	lockDeleteUserPin  sync.RWMutex
	lockDismiss        sync.RWMutex
	lockGetForUpdate   sync.RWMutex
	lockListPinnedIDs  sync.RWMutex
	lockListPins       sync.RWMutex
	lockReclaimForUser sync.RWMutex
	lockUndoDismiss    sync.RWMutex
}

func (mock *pinRepoMock) CreateUserPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, metadata map[string]any, now time.Time) (*domain.Pin, error) {
	if mock.CreateUserPinFunc == nil {
		panic("pinRepoMock.CreateUserPinFunc: method is nil but pinRepo.CreateUserPin was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Actor      domain.Actor
		Metadata   map[string]any
		Now        time.Time
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Actor: actor, Metadata: metadata, Now: now}
	mock.lockCreateUserPin.Lock()
	mock.calls.CreateUserPin = append(mock.calls.CreateUserPin, callInfo)
	mock.lockCreateUserPin.Unlock()
	return mock.CreateUserPinFunc(ctx, entityType, entityID, actor, metadata, now)
}

func (mock *pinRepoMock) CreateUserPinCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Actor      domain.Actor
	Metadata   map[string]any
	Now        time.Time
} {
	mock.lockCreateUserPin.RLock()
	calls := mock.calls.CreateUserPin
	mock.lockCreateUserPin.RUnlock()
	return calls
}

func (mock *pinRepoMock) DeleteUserPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) error {
	if mock.DeleteUserPinFunc == nil {
		panic("pinRepoMock.DeleteUserPinFunc: method is nil but pinRepo.DeleteUserPin was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID}
	mock.lockDeleteUserPin.Lock()
	mock.calls.DeleteUserPin = append(mock.calls.DeleteUserPin, callInfo)
	mock.lockDeleteUserPin.Unlock()
	return mock.DeleteUserPinFunc(ctx, entityType, entityID)
}

func (mock *pinRepoMock) DeleteUserPinCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
} {
	mock.lockDeleteUserPin.RLock()
	calls := mock.calls.DeleteUserPin
	mock.lockDeleteUserPin.RUnlock()
	return calls
}

func (mock *pinRepoMock) Dismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) error {
	if mock.DismissFunc == nil {
		panic("pinRepoMock.DismissFunc: method is nil but pinRepo.Dismiss was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Actor      domain.Actor
		Now        time.Time
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Actor: actor, Now: now}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, entityType, entityID, actor, now)
}

func (mock *pinRepoMock) DismissCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Actor      domain.Actor
	Now        time.Time
} {
	mock.lockDismiss.RLock()
	calls := mock.calls.Dismiss
	mock.lockDismiss.RUnlock()
	return calls
}

func (mock *pinRepoMock) GetForUpdate(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error) {
	if mock.GetForUpdateFunc == nil {
		panic("pinRepoMock.GetForUpdateFunc: method is nil but pinRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, entityType, entityID)
}

func (mock *pinRepoMock) GetForUpdateCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *pinRepoMock) ListPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	if mock.ListPinnedIDsFunc == nil {
		panic("pinRepoMock.ListPinnedIDsFunc: method is nil but pinRepo.ListPinnedIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
	}{Ctx: ctx, EntityType: entityType}
	mock.lockListPinnedIDs.Lock()
	mock.calls.ListPinnedIDs = append(mock.calls.ListPinnedIDs, callInfo)
	mock.lockListPinnedIDs.Unlock()
	return mock.ListPinnedIDsFunc(ctx, entityType)
}

func (mock *pinRepoMock) ListPinnedIDsCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
} {
	mock.lockListPinnedIDs.RLock()
	calls := mock.calls.ListPinnedIDs
	mock.lockListPinnedIDs.RUnlock()
	return calls
}

func (mock *pinRepoMock) ListPins(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error) {
	if mock.ListPinsFunc == nil {
		panic("pinRepoMock.ListPinsFunc: method is nil but pinRepo.ListPins was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PinFilter
	}{Ctx: ctx, F: f}
	mock.lockListPins.Lock()
	mock.calls.ListPins = append(mock.calls.ListPins, callInfo)
	mock.lockListPins.Unlock()
	return mock.ListPinsFunc(ctx, f)
}

func (mock *pinRepoMock) ListPinsCalls() []struct {
	Ctx context.Context
	F   domain.PinFilter
} {
	mock.lockListPins.RLock()
	calls := mock.calls.ListPins
	mock.lockListPins.RUnlock()
	return calls
}

func (mock *pinRepoMock) ReclaimForUser(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) (*domain.Pin, error) {
	if mock.ReclaimForUserFunc == nil {
		panic("pinRepoMock.ReclaimForUserFunc: method is nil but pinRepo.ReclaimForUser was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Actor      domain.Actor
		Now        time.Time
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Actor: actor, Now: now}
	mock.lockReclaimForUser.Lock()
	mock.calls.ReclaimForUser = append(mock.calls.ReclaimForUser, callInfo)
	mock.lockReclaimForUser.Unlock()
	return mock.ReclaimForUserFunc(ctx, entityType, entityID, actor, now)
}

func (mock *pinRepoMock) ReclaimForUserCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Actor      domain.Actor
	Now        time.Time
} {
	mock.lockReclaimForUser.RLock()
	calls := mock.calls.ReclaimForUser
	mock.lockReclaimForUser.RUnlock()
	return calls
}

func (mock *pinRepoMock) UndoDismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, now time.Time) (bool, error) {
	if mock.UndoDismissFunc == nil {
		panic("pinRepoMock.UndoDismissFunc: method is nil but pinRepo.UndoDismiss was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Now        time.Time
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Now: now}
	mock.lockUndoDismiss.Lock()
	mock.calls.UndoDismiss = append(mock.calls.UndoDismiss, callInfo)
	mock.lockUndoDismiss.Unlock()
	return mock.UndoDismissFunc(ctx, entityType, entityID, now)
}

func (mock *pinRepoMock) UndoDismissCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Now        time.Time
} {
	mock.lockUndoDismiss.RLock()
	calls := mock.calls.UndoDismiss
	mock.lockUndoDismiss.RUnlock()
	return calls
}
