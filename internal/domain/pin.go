package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemActorName is recorded as pinned_by_name on rule-driven pins.
const SystemActorName = "system"

// Pin is a ledger record marking an entity as needing attention.
// At most one record exists per (EntityType, EntityID).
type Pin struct {
	ID              uuid.UUID
	EntityType      EntityType
	EntityID        uuid.UUID
	IsSystemPin     bool
	PinnedBy        *uuid.UUID
	PinnedByName    string
	Metadata        map[string]any
	PinnedAt        time.Time
	UpdatedAt       time.Time
	DismissedAt     *time.Time
	DismissedBy     *uuid.UUID
	DismissedByName *string
}

// IsDismissed reports whether the pin was rejected by a user.
func (p *Pin) IsDismissed() bool {
	return p.DismissedAt != nil
}

// IsActive reports whether the pin is live (shown to users).
func (p *Pin) IsActive() bool {
	return p.DismissedAt == nil
}

// Lifecycle returns the tagged state of the pin. A nil pin is PinLifecycleNone.
func (p *Pin) Lifecycle() PinLifecycle {
	switch {
	case p == nil:
		return PinLifecycleNone
	case p.DismissedAt != nil:
		return PinLifecycleDismissedSystem
	case p.IsSystemPin:
		return PinLifecycleActiveSystem
	default:
		return PinLifecycleActiveUser
	}
}

// Actor identifies the user performing a ledger operation.
type Actor struct {
	UserID uuid.UUID
	Name   string
}

// PinLifecycle is the tagged state of a (type, id) slot in the ledger.
//
//	None             -> ActiveUser        (toggle)
//	None             -> ActiveSystem      (smart upsert)
//	ActiveSystem     -> DismissedSystem   (toggle)
//	ActiveSystem     -> None              (smart remove)
//	ActiveUser       -> None              (toggle)
//	DismissedSystem  -> ActiveSystem      (undo dismiss)
//	DismissedSystem  -> ActiveUser        (toggle)
//
// Dismissed records are always system pins; user pins are never dismissed.
type PinLifecycle string

const (
	PinLifecycleNone            PinLifecycle = "none"
	PinLifecycleActiveSystem    PinLifecycle = "active_system"
	PinLifecycleActiveUser      PinLifecycle = "active_user"
	PinLifecycleDismissedSystem PinLifecycle = "dismissed_system"
)

func (l PinLifecycle) String() string { return string(l) }

// ToggleAction is the ledger mutation a user toggle resolves to.
type ToggleAction string

const (
	ToggleCreateUserPin  ToggleAction = "create_user_pin"
	ToggleDismiss        ToggleAction = "dismiss"
	ToggleDelete         ToggleAction = "delete"
	ToggleReclaimForUser ToggleAction = "reclaim_for_user"
)

// NextToggleAction resolves a user toggle against the current state.
// Only ActiveUser is ever hard-deleted by a toggle.
func NextToggleAction(l PinLifecycle) ToggleAction {
	switch l {
	case PinLifecycleActiveSystem:
		return ToggleDismiss
	case PinLifecycleActiveUser:
		return ToggleDelete
	case PinLifecycleDismissedSystem:
		return ToggleReclaimForUser
	default:
		return ToggleCreateUserPin
	}
}

// PinnedAfter reports whether the slot holds an active pin after the action.
func (a ToggleAction) PinnedAfter() bool {
	return a == ToggleCreateUserPin || a == ToggleReclaimForUser
}

// AllowsUndoDismiss reports whether the slot can be restored by undo.
func (l PinLifecycle) AllowsUndoDismiss() bool {
	return l == PinLifecycleDismissedSystem
}

// UpsertOutcome reports what a smart upsert did to the ledger.
type UpsertOutcome string

const (
	UpsertCreated   UpsertOutcome = "created"
	UpsertUpdated   UpsertOutcome = "updated"
	UpsertUnchanged UpsertOutcome = "unchanged"
	// UpsertDismissed means the slot holds a dismissed pin and was left as is.
	UpsertDismissed UpsertOutcome = "dismissed"
)

// Mutated reports whether the upsert wrote a row.
func (o UpsertOutcome) Mutated() bool {
	return o == UpsertCreated || o == UpsertUpdated
}

// PinNote is a per-user note attached to an entity. Its lifecycle is
// independent of the pin: it survives dismissal and unpinning.
type PinNote struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	UserID     uuid.UUID
	Text       string
	DueDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
