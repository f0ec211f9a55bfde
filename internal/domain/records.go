package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bill is a payable obligation tracked by the bills store.
type Bill struct {
	ID          uuid.UUID
	Title       string
	Payee       string
	Amount      float64
	DueDate     *time.Time
	Status      BillStatus
	SentAt      *time.Time
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAwaitingConfirmation reports whether a sent payment has not been confirmed.
func (b *Bill) IsAwaitingConfirmation() bool {
	return b.Status == BillStatusSent && b.ConfirmedAt == nil
}

// Ticket is a work item tracked by the tickets store.
type Ticket struct {
	ID        uuid.UUID
	Title     string
	Priority  TicketPriority
	Status    TicketStatus
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a raw inbound notification.
type Message struct {
	ID          uuid.UUID
	Source      string
	Subject     string
	BodySnippet string
	ReceivedAt  time.Time
}

// ClassifiedMessage is a Message with its derived triage fields.
// It is computed on every read and never persisted.
type ClassifiedMessage struct {
	Message
	Category      MessageCategory
	Subcategory   MessageSubcategory
	Unit          Unit
	PackageNumber *string
}

// Is reports whether the message carries the given subcategory.
func (m *ClassifiedMessage) Is(sub MessageSubcategory) bool {
	return m.Subcategory == sub
}

// AttentionCandidate is an entity that currently satisfies its domain's
// urgency predicate, together with the metadata to snapshot on its pin.
type AttentionCandidate struct {
	EntityID uuid.UUID
	Metadata PinMetadata
}

// DaysUntil returns the number of whole calendar days (UTC) from now to t.
// Negative values mean t is in the past.
func DaysUntil(t, now time.Time) int {
	a := truncateDay(t.UTC())
	b := truncateDay(now.UTC())
	return int(a.Sub(b).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
