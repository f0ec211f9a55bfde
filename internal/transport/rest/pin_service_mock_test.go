package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/internal/service/pin"
	"sync"
)

var _ pinService = &pinServiceMock{}

type pinServiceMock struct {
	DeleteNoteFunc              func(ctx context.Context, input pin.DeleteNoteInput) error
	GetDashboardPinnedItemsFunc func(ctx context.Context) (*domain.PinnedDashboard, error)
	GetPinnedIDsFunc            func(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error)
	GetSmartAndUserPinsFunc     func(ctx context.Context, entityType domain.EntityType) (*pin.PinsByOwner, error)
	TogglePinFunc               func(ctx context.Context, input pin.TogglePinInput) (*pin.ToggleResult, error)
	UndoDismissFunc             func(ctx context.Context, input pin.UndoDismissInput) (bool, error)
	UpsertNoteFunc              func(ctx context.Context, input pin.UpsertNoteInput) (*domain.PinNote, error)

	calls struct {
		DeleteNote []struct {
			Ctx   context.Context
			Input pin.DeleteNoteInput
		}
		GetDashboardPinnedItems []struct {
			Ctx context.Context
		}
		GetPinnedIDs []struct {
			Ctx        context.Context
			EntityType domain.EntityType
		}
		GetSmartAndUserPins []struct {
			Ctx        context.Context
			EntityType domain.EntityType
		}
		TogglePin []struct {
			Ctx   context.Context
			Input pin.TogglePinInput
		}
		UndoDismiss []struct {
			Ctx   context.Context
			Input pin.UndoDismissInput
		}
		UpsertNote []struct {
			Ctx   context.Context
			Input pin.UpsertNoteInput
		}
	}
	lockDeleteNote              sync.RWMutex
	lockGetDashboardPinnedItems sync.RWMutex
	lockGetPinnedIDs            sync.RWMutex
	lockGetSmartAndUserPins     sync.RWMutex
	lockTogglePin               sync.RWMutex
	lockUndoDismiss             sync.RWMutex
	lockUpsertNote              sync.RWMutex
}

func (mock *pinServiceMock) DeleteNote(ctx context.Context, input pin.DeleteNoteInput) error {
	if mock.DeleteNoteFunc == nil {
		panic("pinServiceMock.DeleteNoteFunc: method is nil but pinService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pin.DeleteNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, input)
}

func (mock *pinServiceMock) DeleteNoteCalls() []struct {
	Ctx   context.Context
	Input pin.DeleteNoteInput
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}

func (mock *pinServiceMock) GetDashboardPinnedItems(ctx context.Context) (*domain.PinnedDashboard, error) {
	if mock.GetDashboardPinnedItemsFunc == nil {
		panic("pinServiceMock.GetDashboardPinnedItemsFunc: method is nil but pinService.GetDashboardPinnedItems was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetDashboardPinnedItems.Lock()
	mock.calls.GetDashboardPinnedItems = append(mock.calls.GetDashboardPinnedItems, callInfo)
	mock.lockGetDashboardPinnedItems.Unlock()
	return mock.GetDashboardPinnedItemsFunc(ctx)
}

func (mock *pinServiceMock) GetDashboardPinnedItemsCalls() []struct{ Ctx context.Context } {
	mock.lockGetDashboardPinnedItems.RLock()
	calls := mock.calls.GetDashboardPinnedItems
	mock.lockGetDashboardPinnedItems.RUnlock()
	return calls
}

func (mock *pinServiceMock) GetPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	if mock.GetPinnedIDsFunc == nil {
		panic("pinServiceMock.GetPinnedIDsFunc: method is nil but pinService.GetPinnedIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
	}{Ctx: ctx, EntityType: entityType}
	mock.lockGetPinnedIDs.Lock()
	mock.calls.GetPinnedIDs = append(mock.calls.GetPinnedIDs, callInfo)
	mock.lockGetPinnedIDs.Unlock()
	return mock.GetPinnedIDsFunc(ctx, entityType)
}

func (mock *pinServiceMock) GetPinnedIDsCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
} {
	mock.lockGetPinnedIDs.RLock()
	calls := mock.calls.GetPinnedIDs
	mock.lockGetPinnedIDs.RUnlock()
	return calls
}

func (mock *pinServiceMock) GetSmartAndUserPins(ctx context.Context, entityType domain.EntityType) (*pin.PinsByOwner, error) {
	if mock.GetSmartAndUserPinsFunc == nil {
		panic("pinServiceMock.GetSmartAndUserPinsFunc: method is nil but pinService.GetSmartAndUserPins was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
	}{Ctx: ctx, EntityType: entityType}
	mock.lockGetSmartAndUserPins.Lock()
	mock.calls.GetSmartAndUserPins = append(mock.calls.GetSmartAndUserPins, callInfo)
	mock.lockGetSmartAndUserPins.Unlock()
	return mock.GetSmartAndUserPinsFunc(ctx, entityType)
}

func (mock *pinServiceMock) GetSmartAndUserPinsCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
} {
	mock.lockGetSmartAndUserPins.RLock()
	calls := mock.calls.GetSmartAndUserPins
	mock.lockGetSmartAndUserPins.RUnlock()
	return calls
}

func (mock *pinServiceMock) TogglePin(ctx context.Context, input pin.TogglePinInput) (*pin.ToggleResult, error) {
	if mock.TogglePinFunc == nil {
		panic("pinServiceMock.TogglePinFunc: method is nil but pinService.TogglePin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pin.TogglePinInput
	}{Ctx: ctx, Input: input}
	mock.lockTogglePin.Lock()
	mock.calls.TogglePin = append(mock.calls.TogglePin, callInfo)
	mock.lockTogglePin.Unlock()
	return mock.TogglePinFunc(ctx, input)
}

func (mock *pinServiceMock) TogglePinCalls() []struct {
	Ctx   context.Context
	Input pin.TogglePinInput
} {
	mock.lockTogglePin.RLock()
	calls := mock.calls.TogglePin
	mock.lockTogglePin.RUnlock()
	return calls
}

func (mock *pinServiceMock) UndoDismiss(ctx context.Context, input pin.UndoDismissInput) (bool, error) {
	if mock.UndoDismissFunc == nil {
		panic("pinServiceMock.UndoDismissFunc: method is nil but pinService.UndoDismiss was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pin.UndoDismissInput
	}{Ctx: ctx, Input: input}
	mock.lockUndoDismiss.Lock()
	mock.calls.UndoDismiss = append(mock.calls.UndoDismiss, callInfo)
	mock.lockUndoDismiss.Unlock()
	return mock.UndoDismissFunc(ctx, input)
}

func (mock *pinServiceMock) UndoDismissCalls() []struct {
	Ctx   context.Context
	Input pin.UndoDismissInput
} {
	mock.lockUndoDismiss.RLock()
	calls := mock.calls.UndoDismiss
	mock.lockUndoDismiss.RUnlock()
	return calls
}

func (mock *pinServiceMock) UpsertNote(ctx context.Context, input pin.UpsertNoteInput) (*domain.PinNote, error) {
	if mock.UpsertNoteFunc == nil {
		panic("pinServiceMock.UpsertNoteFunc: method is nil but pinService.UpsertNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pin.UpsertNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsertNote.Lock()
	mock.calls.UpsertNote = append(mock.calls.UpsertNote, callInfo)
	mock.lockUpsertNote.Unlock()
	return mock.UpsertNoteFunc(ctx, input)
}

func (mock *pinServiceMock) UpsertNoteCalls() []struct {
	Ctx   context.Context
	Input pin.UpsertNoteInput
} {
	mock.lockUpsertNote.RLock()
	calls := mock.calls.UpsertNote
	mock.lockUpsertNote.RUnlock()
	return calls
}
