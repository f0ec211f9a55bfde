package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Day returns midnight UTC of the day offset by days from today.
func Day(days int) time.Time {
	n := time.Now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day()+days, 0, 0, 0, 0, time.UTC)
}

// BillOption customises a seeded bill.
type BillOption func(*domain.Bill)

// WithBillStatus sets the bill status.
func WithBillStatus(s domain.BillStatus) BillOption {
	return func(b *domain.Bill) { b.Status = s }
}

// WithBillDueIn sets the due date to today + days.
func WithBillDueIn(days int) BillOption {
	return func(b *domain.Bill) {
		d := Day(days)
		b.DueDate = &d
	}
}

// WithBillSentAt sets the sent timestamp.
func WithBillSentAt(t time.Time) BillOption {
	return func(b *domain.Bill) { b.SentAt = &t }
}

// SeedBill inserts a pending bill. Returns the filled domain.Bill.
func SeedBill(t *testing.T, pool *pgxpool.Pool, opts ...BillOption) domain.Bill {
	t.Helper()
	ctx := context.Background()

	now := Now()
	bill := domain.Bill{
		ID:        uuid.New(),
		Title:     "Bill " + uniqueSuffix(),
		Payee:     "Con Edison",
		Amount:    123.45,
		Status:    domain.BillStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(&bill)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO bills (id, title, payee, amount, due_date, status, sent_at, confirmed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		bill.ID, bill.Title, bill.Payee, bill.Amount, bill.DueDate, string(bill.Status),
		bill.SentAt, bill.ConfirmedAt, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBill: %v", err)
	}

	return bill
}

// TicketOption customises a seeded ticket.
type TicketOption func(*domain.Ticket)

// WithTicketPriority sets the ticket priority.
func WithTicketPriority(p domain.TicketPriority) TicketOption {
	return func(tk *domain.Ticket) { tk.Priority = p }
}

// WithTicketStatus sets the ticket status.
func WithTicketStatus(s domain.TicketStatus) TicketOption {
	return func(tk *domain.Ticket) { tk.Status = s }
}

// WithTicketDueIn sets the due date to today + days.
func WithTicketDueIn(days int) TicketOption {
	return func(tk *domain.Ticket) {
		d := Day(days)
		tk.DueDate = &d
	}
}

// SeedTicket inserts an open, medium-priority ticket.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, opts ...TicketOption) domain.Ticket {
	t.Helper()
	ctx := context.Background()

	now := Now()
	ticket := domain.Ticket{
		ID:        uuid.New(),
		Title:     "Ticket " + uniqueSuffix(),
		Priority:  domain.TicketPriorityMedium,
		Status:    domain.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(&ticket)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tickets (id, title, priority, status, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ticket.ID, ticket.Title, string(ticket.Priority), string(ticket.Status),
		ticket.DueDate, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTicket: %v", err)
	}

	return ticket
}

// SeedMessage inserts a raw message for source. The subject is made unique
// only when empty.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, source, subject, body string, receivedAt time.Time) domain.Message {
	t.Helper()
	ctx := context.Background()

	if subject == "" {
		subject = "Message " + uniqueSuffix()
	}
	msg := domain.Message{
		ID:          uuid.New(),
		Source:      source,
		Subject:     subject,
		BodySnippet: body,
		ReceivedAt:  receivedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, source, subject, body_snippet, received_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.Source, msg.Subject, msg.BodySnippet, msg.ReceivedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return msg
}

// UniqueSource returns a message source name no other test uses.
func UniqueSource() string {
	return "src-" + uniqueSuffix()
}

// SeedDismissedSystemPin inserts a dismissed system pin for (entityType, entityID).
func SeedDismissedSystemPin(t *testing.T, pool *pgxpool.Pool, entityType domain.EntityType, entityID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	by := uuid.New()
	now := Now()
	_, err := pool.Exec(ctx,
		`INSERT INTO pins (id, entity_type, entity_id, is_system_pin, pinned_by_name, metadata,
		                   pinned_at, updated_at, dismissed_at, dismissed_by, dismissed_by_name)
		 VALUES ($1, $2, $3, true, $4, '{}'::jsonb, $5, $5, $5, $6, 'Test User')`,
		id, string(entityType), entityID, domain.SystemActorName, now, by,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDismissedSystemPin: %v", err)
	}

	return id
}
