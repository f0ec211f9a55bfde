package attention

import (
	"time"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// BillRules are the thresholds of the bill urgency predicate.
type BillRules struct {
	DueSoonDays   int
	SentGraceDays int
}

// BillNeedsAttention reports whether an unsettled bill warrants a smart pin:
// it is overdue, or its payment was sent and has stayed unconfirmed past the
// grace period, or it is unsent and due within DueSoonDays.
func BillNeedsAttention(b domain.Bill, now time.Time, r BillRules) bool {
	switch {
	case b.Status.IsSettled():
		return false
	case b.Status == domain.BillStatusOverdue:
		return true
	case b.IsAwaitingConfirmation():
		return b.SentAt != nil && now.Sub(*b.SentAt) >= days(r.SentGraceDays)
	case b.Status == domain.BillStatusSent:
		return false
	}
	return b.DueDate != nil && domain.DaysUntil(*b.DueDate, now) <= r.DueSoonDays
}

// TicketRules are the thresholds of the ticket urgency predicate.
type TicketRules struct {
	DueSoonDays int
}

// TicketNeedsAttention reports whether an open ticket warrants a smart pin:
// its priority is high or urgent, or it is due (or past due) within DueSoonDays.
func TicketNeedsAttention(t domain.Ticket, now time.Time, r TicketRules) bool {
	if t.Status.IsClosed() {
		return false
	}
	if t.Priority.IsElevated() {
		return true
	}
	return t.DueDate != nil && domain.DaysUntil(*t.DueDate, now) <= r.DueSoonDays
}

// MessageRules are the thresholds of the message urgency predicate.
type MessageRules struct {
	Window time.Duration
}

// MessageNeedsAttention reports whether a classified message is critical or
// important and no older than the window. Package arrivals are handled by
// the correlator.
func MessageNeedsAttention(m domain.ClassifiedMessage, now time.Time, r MessageRules) bool {
	if m.Category != domain.CategoryCritical && m.Category != domain.CategoryImportant {
		return false
	}
	return !m.ReceivedAt.Before(now.Add(-r.Window))
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
