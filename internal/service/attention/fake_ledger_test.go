package attention

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

type slot struct {
	entityType domain.EntityType
	entityID   uuid.UUID
}

// fakeLedger is an in-memory pin ledger with the same write semantics as the
// postgres store: sticky dismissal, write-on-change upserts and system-only
// removal.
type fakeLedger struct {
	mu         sync.Mutex
	pins       map[slot]*domain.Pin
	writes     int
	failUpsert map[uuid.UUID]error
	failRemove map[uuid.UUID]error
	onUpsert   func(id uuid.UUID)
}

var _ pinLedger = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		pins:       make(map[slot]*domain.Pin),
		failUpsert: make(map[uuid.UUID]error),
		failRemove: make(map[uuid.UUID]error),
	}
}

func (f *fakeLedger) ListSystemPinIDs(_ context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]uuid.UUID, 0)
	for k, p := range f.pins {
		if k.entityType == entityType && p.IsSystemPin && p.IsActive() {
			ids = append(ids, k.entityID)
		}
	}
	return ids, nil
}

func (f *fakeLedger) ListPins(_ context.Context, flt domain.PinFilter) ([]domain.Pin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Pin, 0)
	for k, p := range f.pins {
		if flt.EntityType != nil && k.entityType != *flt.EntityType {
			continue
		}
		if !flt.IncludeDismissed && p.IsDismissed() {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeLedger) UpsertSmartPin(_ context.Context, entityType domain.EntityType, entityID uuid.UUID, metadata map[string]any, now time.Time) (domain.UpsertOutcome, error) {
	if f.onUpsert != nil {
		f.onUpsert(entityID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failUpsert[entityID]; err != nil {
		return "", err
	}

	k := slot{entityType, entityID}
	p, ok := f.pins[k]
	switch {
	case !ok:
		f.pins[k] = &domain.Pin{
			ID:           uuid.New(),
			EntityType:   entityType,
			EntityID:     entityID,
			IsSystemPin:  true,
			PinnedByName: domain.SystemActorName,
			Metadata:     metadata,
			PinnedAt:     now,
			UpdatedAt:    now,
		}
		f.writes++
		return domain.UpsertCreated, nil
	case p.IsDismissed():
		return domain.UpsertDismissed, nil
	case reflect.DeepEqual(p.Metadata, metadata):
		return domain.UpsertUnchanged, nil
	}
	p.Metadata = metadata
	p.UpdatedAt = now
	f.writes++
	return domain.UpsertUpdated, nil
}

func (f *fakeLedger) RemoveSmartPin(_ context.Context, entityType domain.EntityType, entityID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failRemove[entityID]; err != nil {
		return false, err
	}

	k := slot{entityType, entityID}
	p, ok := f.pins[k]
	if !ok || !p.IsSystemPin {
		return false, nil
	}
	delete(f.pins, k)
	f.writes++
	return true, nil
}

// dismiss simulates a user toggling an active system pin off.
func (f *fakeLedger) dismiss(entityType domain.EntityType, entityID uuid.UUID, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.pins[slot{entityType, entityID}]
	p.DismissedAt = &at
	f.writes++
}

// undoDismiss simulates a user restoring a dismissed pin.
func (f *fakeLedger) undoDismiss(entityType domain.EntityType, entityID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pins[slot{entityType, entityID}].DismissedAt = nil
	f.writes++
}

// pinUser puts an active user pin in the slot.
func (f *fakeLedger) pinUser(entityType domain.EntityType, entityID uuid.UUID, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	by := uuid.New()
	f.pins[slot{entityType, entityID}] = &domain.Pin{
		ID: uuid.New(), EntityType: entityType, EntityID: entityID,
		PinnedBy: &by, PinnedByName: "Dana", Metadata: map[string]any{}, PinnedAt: at,
	}
}

func (f *fakeLedger) get(entityType domain.EntityType, entityID uuid.UUID) (domain.Pin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.pins[slot{entityType, entityID}]
	if !ok {
		return domain.Pin{}, false
	}
	return *p, true
}

func (f *fakeLedger) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
