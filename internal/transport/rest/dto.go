package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/internal/service/attention"
	"github.com/heartmarshall/attention-backend/internal/service/pin"
)

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type entityRefRequest struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
}

// toRef parses the identifiers. An empty id maps to uuid.Nil so that service
// validation reports it as required.
func (r entityRefRequest) toRef() (pin.EntityRef, error) {
	ref := pin.EntityRef{EntityType: domain.EntityType(r.EntityType)}
	if r.EntityID == "" {
		return ref, nil
	}
	id, err := uuid.Parse(r.EntityID)
	if err != nil {
		return ref, domain.NewValidationError("entity_id", "invalid uuid")
	}
	ref.EntityID = id
	return ref, nil
}

type noteRequest struct {
	entityRefRequest
	Text    string  `json:"text"`
	DueDate *string `json:"dueDate"`
}

func (r noteRequest) toInput() (pin.UpsertNoteInput, error) {
	ref, err := r.toRef()
	if err != nil {
		return pin.UpsertNoteInput{}, err
	}
	in := pin.UpsertNoteInput{EntityRef: ref, Text: r.Text}
	if r.DueDate != nil && *r.DueDate != "" {
		d, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return pin.UpsertNoteInput{}, domain.NewValidationError("due_date", "expected YYYY-MM-DD")
		}
		in.DueDate = &d
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type pinDTO struct {
	ID              string         `json:"id"`
	EntityType      string         `json:"entityType"`
	EntityID        string         `json:"entityId"`
	IsSystemPin     bool           `json:"isSystemPin"`
	PinnedBy        *string        `json:"pinnedBy,omitempty"`
	PinnedByName    string         `json:"pinnedByName"`
	Metadata        map[string]any `json:"metadata"`
	PinnedAt        time.Time      `json:"pinnedAt"`
	DismissedAt     *time.Time     `json:"dismissedAt,omitempty"`
	DismissedByName *string        `json:"dismissedByName,omitempty"`
}

func toPinDTO(p domain.Pin) pinDTO {
	out := pinDTO{
		ID:              p.ID.String(),
		EntityType:      p.EntityType.String(),
		EntityID:        p.EntityID.String(),
		IsSystemPin:     p.IsSystemPin,
		PinnedByName:    p.PinnedByName,
		Metadata:        p.Metadata,
		PinnedAt:        p.PinnedAt,
		DismissedAt:     p.DismissedAt,
		DismissedByName: p.DismissedByName,
	}
	if p.PinnedBy != nil {
		s := p.PinnedBy.String()
		out.PinnedBy = &s
	}
	if out.Metadata == nil {
		out.Metadata = map[string]any{}
	}
	return out
}

func toPinDTOs(pins []domain.Pin) []pinDTO {
	out := make([]pinDTO, len(pins))
	for i, p := range pins {
		out[i] = toPinDTO(p)
	}
	return out
}

type toggleResponse struct {
	Pinned bool    `json:"pinned"`
	Action string  `json:"action"`
	Pin    *pinDTO `json:"pin,omitempty"`
}

type pinsResponse struct {
	Smart []pinDTO `json:"smart"`
	User  []pinDTO `json:"user"`
}

type pinnedIDsResponse struct {
	IDs []string `json:"ids"`
}

type noteDTO struct {
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Text       string    `json:"text"`
	DueDate    *string   `json:"dueDate,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toNoteDTO(n *domain.PinNote) *noteDTO {
	if n == nil {
		return nil
	}
	return &noteDTO{
		EntityType: n.EntityType.String(),
		EntityID:   n.EntityID.String(),
		Text:       n.Text,
		DueDate:    formatDate(n.DueDate),
		UpdatedAt:  n.UpdatedAt,
	}
}

type billDTO struct {
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type ticketDTO struct {
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

type messageDTO struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	BodySnippet   string    `json:"bodySnippet"`
	ReceivedAt    time.Time `json:"receivedAt"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory"`
	Unit          string    `json:"unit"`
	PackageNumber *string   `json:"packageNumber,omitempty"`
}

func toMessageDTO(m domain.ClassifiedMessage) messageDTO {
	return messageDTO{
		ID:            m.ID.String(),
		Subject:       m.Subject,
		BodySnippet:   m.BodySnippet,
		ReceivedAt:    m.ReceivedAt,
		Category:      m.Category.String(),
		Subcategory:   string(m.Subcategory),
		Unit:          string(m.Unit),
		PackageNumber: m.PackageNumber,
	}
}

type dashboardItemDTO struct {
	Pin       pinDTO      `json:"pin"`
	Title     string      `json:"title"`
	DueDate   *string     `json:"dueDate,omitempty"`
	DaysUntil *int        `json:"daysUntil,omitempty"`
	Urgency   string      `json:"urgency"`
	Note      *noteDTO    `json:"note,omitempty"`
	Bill      *billDTO    `json:"bill,omitempty"`
	Ticket    *ticketDTO  `json:"ticket,omitempty"`
	Message   *messageDTO `json:"message,omitempty"`
}

type dashboardStatsDTO struct {
	Total     int `json:"total"`
	Overdue   int `json:"overdue"`
	Urgent    int `json:"urgent"`
	Upcoming  int `json:"upcoming"`
	Normal    int `json:"normal"`
	Smart     int `json:"smart"`
	User      int `json:"user"`
	WithNotes int `json:"withNotes"`
}

type dashboardResponse struct {
	Items []dashboardItemDTO `json:"items"`
	Stats dashboardStatsDTO  `json:"stats"`
}

func toDashboardResponse(d *domain.PinnedDashboard) dashboardResponse {
	items := make([]dashboardItemDTO, len(d.Items))
	for i, it := range d.Items {
		dto := dashboardItemDTO{
			Pin:       toPinDTO(it.Pin),
			Title:     it.Title,
			DueDate:   formatDate(it.DueDate),
			DaysUntil: it.DaysUntil,
			Urgency:   it.Urgency.String(),
			Note:      toNoteDTO(it.Note),
		}
		switch {
		case it.Bill != nil:
			dto.Bill = &billDTO{Payee: it.Bill.Payee, Amount: it.Bill.Amount, Status: it.Bill.Status.String()}
		case it.Ticket != nil:
			dto.Ticket = &ticketDTO{Priority: it.Ticket.Priority.String(), Status: it.Ticket.Status.String()}
		case it.Message != nil:
			m := toMessageDTO(*it.Message)
			dto.Message = &m
		}
		items[i] = dto
	}

	s := d.Stats
	return dashboardResponse{
		Items: items,
		Stats: dashboardStatsDTO{
			Total: s.Total, Overdue: s.Overdue, Urgent: s.Urgent, Upcoming: s.Upcoming,
			Normal: s.Normal, Smart: s.Smart, User: s.User, WithNotes: s.WithNotes,
		},
	}
}

type attentionMessageDTO struct {
	messageDTO
	Pinned  bool `json:"pinned"`
	Flagged bool `json:"flagged"`
}

type outageDTO struct {
	attentionMessageDTO
	ServiceKey string `json:"serviceKey"`
}

type needsAttentionResponse struct {
	ActiveOutages       []outageDTO           `json:"activeOutages"`
	UncollectedPackages []attentionMessageDTO `json:"uncollectedPackages"`
	FlaggedMessages     []attentionMessageDTO `json:"flaggedMessages"`
}

func toAttentionMessageDTO(m domain.AttentionMessage) attentionMessageDTO {
	return attentionMessageDTO{messageDTO: toMessageDTO(m.ClassifiedMessage), Pinned: m.Pinned, Flagged: m.Flagged}
}

func toNeedsAttentionResponse(v *domain.BuildingLinkAttention) needsAttentionResponse {
	out := needsAttentionResponse{
		ActiveOutages:       make([]outageDTO, len(v.ActiveOutages)),
		UncollectedPackages: make([]attentionMessageDTO, len(v.UncollectedPackages)),
		FlaggedMessages:     make([]attentionMessageDTO, len(v.FlaggedMessages)),
	}
	for i, o := range v.ActiveOutages {
		out.ActiveOutages[i] = outageDTO{attentionMessageDTO: toAttentionMessageDTO(o.AttentionMessage), ServiceKey: o.ServiceKey}
	}
	for i, m := range v.UncollectedPackages {
		out.UncollectedPackages[i] = toAttentionMessageDTO(m)
	}
	for i, m := range v.FlaggedMessages {
		out.FlaggedMessages[i] = toAttentionMessageDTO(m)
	}
	return out
}

type syncResultDTO struct {
	Domain           string `json:"domain"`
	Target           int    `json:"target"`
	Current          int    `json:"current"`
	Created          int    `json:"created"`
	Updated          int    `json:"updated"`
	Unchanged        int    `json:"unchanged"`
	SkippedDismissed int    `json:"skippedDismissed"`
	Removed          int    `json:"removed"`
	Failed           int    `json:"failed"`
	DurationMs       int64  `json:"durationMs"`
	Complete         bool   `json:"complete"`
}

func toSyncResultDTO(r attention.SyncResult) syncResultDTO {
	return syncResultDTO{
		Domain:           r.Domain.String(),
		Target:           r.Target,
		Current:          r.Current,
		Created:          r.Created,
		Updated:          r.Updated,
		Unchanged:        r.Unchanged,
		SkippedDismissed: r.SkippedDismissed,
		Removed:          r.Removed,
		Failed:           r.Failed,
		DurationMs:       r.Duration.Milliseconds(),
		Complete:         r.Failed == 0,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}
