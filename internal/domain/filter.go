package domain

import "github.com/google/uuid"

// PinFilter narrows pin listings. The zero value selects every active pin.
type PinFilter struct {
	EntityType       *EntityType
	SystemOnly       bool
	UserOnly         bool
	IncludeDismissed bool
	// EntityIDs restricts the listing when non-nil. An empty slice matches nothing.
	EntityIDs []uuid.UUID
}
