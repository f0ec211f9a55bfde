package domain

import (
	"time"
)

// dateLayout is the wire format for calendar dates in pin metadata.
const dateLayout = "2006-01-02"

// PinMetadata is the display snapshot stored on a pin. Each entity type has
// its own typed variant; the ledger sees only the opaque map form.
type PinMetadata interface {
	EntityType() EntityType
	ToMap() map[string]any
}

// BillPinMetadata is the snapshot stored on bill pins.
type BillPinMetadata struct {
	Title   string
	Amount  float64
	DueDate *time.Time
	Status  BillStatus
}

func (BillPinMetadata) EntityType() EntityType { return EntityTypeBill }

func (m BillPinMetadata) ToMap() map[string]any {
	return map[string]any{
		"title":   m.Title,
		"amount":  m.Amount,
		"dueDate": formatDate(m.DueDate),
		"status":  string(m.Status),
	}
}

// NewBillPinMetadata snapshots a bill.
func NewBillPinMetadata(b Bill) BillPinMetadata {
	return BillPinMetadata{
		Title:   b.Title,
		Amount:  b.Amount,
		DueDate: b.DueDate,
		Status:  b.Status,
	}
}

// DecodeBillPinMetadata reads a stored snapshot. Missing or mistyped keys
// decode to zero values.
func DecodeBillPinMetadata(m map[string]any) BillPinMetadata {
	return BillPinMetadata{
		Title:   stringAt(m, "title"),
		Amount:  floatAt(m, "amount"),
		DueDate: dateAt(m, "dueDate"),
		Status:  BillStatus(stringAt(m, "status")),
	}
}

// TicketPinMetadata is the snapshot stored on ticket pins.
type TicketPinMetadata struct {
	Title    string
	Priority TicketPriority
	Status   TicketStatus
	DueDate  *time.Time
}

func (TicketPinMetadata) EntityType() EntityType { return EntityTypeTicket }

func (m TicketPinMetadata) ToMap() map[string]any {
	return map[string]any{
		"title":    m.Title,
		"priority": string(m.Priority),
		"status":   string(m.Status),
		"dueDate":  formatDate(m.DueDate),
	}
}

// NewTicketPinMetadata snapshots a ticket.
func NewTicketPinMetadata(t Ticket) TicketPinMetadata {
	return TicketPinMetadata{
		Title:    t.Title,
		Priority: t.Priority,
		Status:   t.Status,
		DueDate:  t.DueDate,
	}
}

// DecodeTicketPinMetadata reads a stored snapshot.
func DecodeTicketPinMetadata(m map[string]any) TicketPinMetadata {
	return TicketPinMetadata{
		Title:    stringAt(m, "title"),
		Priority: TicketPriority(stringAt(m, "priority")),
		Status:   TicketStatus(stringAt(m, "status")),
		DueDate:  dateAt(m, "dueDate"),
	}
}

// MessagePinMetadata is the snapshot stored on message pins.
type MessagePinMetadata struct {
	Subject       string
	Category      MessageCategory
	Subcategory   MessageSubcategory
	Unit          Unit
	ReceivedAt    time.Time
	PackageNumber *string
}

func (MessagePinMetadata) EntityType() EntityType { return EntityTypeMessage }

func (m MessagePinMetadata) ToMap() map[string]any {
	out := map[string]any{
		"subject":     m.Subject,
		"category":    string(m.Category),
		"subcategory": string(m.Subcategory),
		"unit":        string(m.Unit),
		"receivedAt":  m.ReceivedAt.UTC().Format(time.RFC3339),
	}
	if m.PackageNumber != nil {
		out["packageNumber"] = *m.PackageNumber
	}
	return out
}

// NewMessagePinMetadata snapshots a classified message.
func NewMessagePinMetadata(msg ClassifiedMessage) MessagePinMetadata {
	return MessagePinMetadata{
		Subject:       msg.Subject,
		Category:      msg.Category,
		Subcategory:   msg.Subcategory,
		Unit:          msg.Unit,
		ReceivedAt:    msg.ReceivedAt,
		PackageNumber: msg.PackageNumber,
	}
}

// DecodeMessagePinMetadata reads a stored snapshot.
func DecodeMessagePinMetadata(m map[string]any) MessagePinMetadata {
	out := MessagePinMetadata{
		Subject:     stringAt(m, "subject"),
		Category:    MessageCategory(stringAt(m, "category")),
		Subcategory: MessageSubcategory(stringAt(m, "subcategory")),
		Unit:        Unit(stringAt(m, "unit")),
	}
	if ts, err := time.Parse(time.RFC3339, stringAt(m, "receivedAt")); err == nil {
		out.ReceivedAt = ts
	}
	if pkg := stringAt(m, "packageNumber"); pkg != "" {
		out.PackageNumber = &pkg
	}
	return out
}

// ---------------------------------------------------------------------------
// map helpers
// ---------------------------------------------------------------------------

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(dateLayout)
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func floatAt(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func dateAt(m map[string]any, key string) *time.Time {
	s := stringAt(m, key)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
