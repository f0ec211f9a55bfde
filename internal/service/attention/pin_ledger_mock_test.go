package attention

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"sync"
	"time"
)

var _ pinLedger = &pinLedgerMock{}

type pinLedgerMock struct {
	ListPinsFunc         func(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error)
	ListSystemPinIDsFunc func(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	RemoveSmartPinFunc   func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (bool, error)
	UpsertSmartPinFunc   func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, metadata map[string]any, now time.Time) (domain.UpsertOutcome, error)

	calls struct {
		ListPins []struct {
			Ctx context.Context
			F   domain.PinFilter
		}
		ListSystemPinIDs []struct {
			Ctx        context.Context
			EntityType domain.EntityType
		}
		RemoveSmartPin []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
		}
		UpsertSmartPin []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Metadata   map[string]any
			Now        time.Time
		}
	}
	lockListPins         sync.RWMutex
	lockListSystemPinIDs sync.RWMutex
	lockRemoveSmartPin   sync.RWMutex
	lockUpsertSmartPin   sync.RWMutex
}

func (mock *pinLedgerMock) ListPins(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error) {
	if mock.ListPinsFunc == nil {
		panic("pinLedgerMock.ListPinsFunc: method is nil but pinLedger.ListPins was just called")
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

func (mock *pinLedgerMock) ListPinsCalls() []struct {
	Ctx context.Context
	F   domain.PinFilter
} {
	mock.lockListPins.RLock()
	calls := mock.calls.ListPins
	mock.lockListPins.RUnlock()
	return calls
}

func (mock *pinLedgerMock) ListSystemPinIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	if mock.ListSystemPinIDsFunc == nil {
		panic("pinLedgerMock.ListSystemPinIDsFunc: method is nil but pinLedger.ListSystemPinIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
	}{Ctx: ctx, EntityType: entityType}
	mock.lockListSystemPinIDs.Lock()
	mock.calls.ListSystemPinIDs = append(mock.calls.ListSystemPinIDs, callInfo)
	mock.lockListSystemPinIDs.Unlock()
	return mock.ListSystemPinIDsFunc(ctx, entityType)
}

func (mock *pinLedgerMock) ListSystemPinIDsCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
} {
	mock.lockListSystemPinIDs.RLock()
	calls := mock.calls.ListSystemPinIDs
	mock.lockListSystemPinIDs.RUnlock()
	return calls
}

func (mock *pinLedgerMock) RemoveSmartPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (bool, error) {
	if mock.RemoveSmartPinFunc == nil {
		panic("pinLedgerMock.RemoveSmartPinFunc: method is nil but pinLedger.RemoveSmartPin was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID}
	mock.lockRemoveSmartPin.Lock()
	mock.calls.RemoveSmartPin = append(mock.calls.RemoveSmartPin, callInfo)
	mock.lockRemoveSmartPin.Unlock()
	return mock.RemoveSmartPinFunc(ctx, entityType, entityID)
}

func (mock *pinLedgerMock) RemoveSmartPinCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
} {
	mock.lockRemoveSmartPin.RLock()
	calls := mock.calls.RemoveSmartPin
	mock.lockRemoveSmartPin.RUnlock()
	return calls
}

func (mock *pinLedgerMock) UpsertSmartPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, metadata map[string]any, now time.Time) (domain.UpsertOutcome, error) {
	if mock.UpsertSmartPinFunc == nil {
		panic("pinLedgerMock.UpsertSmartPinFunc: method is nil but pinLedger.UpsertSmartPin was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Metadata   map[string]any
		Now        time.Time
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Metadata: metadata, Now: now}
	mock.lockUpsertSmartPin.Lock()
	mock.calls.UpsertSmartPin = append(mock.calls.UpsertSmartPin, callInfo)
	mock.lockUpsertSmartPin.Unlock()
	return mock.UpsertSmartPinFunc(ctx, entityType, entityID, metadata, now)
}

func (mock *pinLedgerMock) UpsertSmartPinCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Metadata   map[string]any
	Now        time.Time
} {
	mock.lockUpsertSmartPin.RLock()
	calls := mock.calls.UpsertSmartPin
	mock.lockUpsertSmartPin.RUnlock()
	return calls
}
