package pin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

type noteKey struct {
	entityType domain.EntityType
	entityID   uuid.UUID
}

// entitySet holds the freshly fetched records behind a set of pins.
type entitySet struct {
	bills    map[uuid.UUID]domain.Bill
	tickets  map[uuid.UUID]domain.Ticket
	messages map[uuid.UUID]domain.ClassifiedMessage
	notes    map[noteKey]domain.PinNote
}

// GetDashboardPinnedItems returns every active pin joined with its current
// record and the caller's note, annotated with urgency and sorted for display.
// Pins whose record no longer exists fall back to the stored snapshot.
func (s *Service) GetDashboardPinnedItems(ctx context.Context) (*domain.PinnedDashboard, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	pins, err := s.pins.ListPins(ctx, domain.PinFilter{})
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	set, err := s.loadEntities(ctx, actor.UserID, pins)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]domain.DashboardItem, 0, len(pins))
	for _, p := range pins {
		item := buildItem(p, set, now)
		item.Urgency = urgencyOf(item, s.dashboardCfg)
		items = append(items, item)
	}
	sortDashboard(items)

	return &domain.PinnedDashboard{
		Items: items,
		Stats: dashboardStats(items),
	}, nil
}

// loadEntities fetches the records and notes behind pins concurrently.
func (s *Service) loadEntities(ctx context.Context, userID uuid.UUID, pins []domain.Pin) (*entitySet, error) {
	var billIDs, ticketIDs, messageIDs, allIDs []uuid.UUID
	for _, p := range pins {
		allIDs = append(allIDs, p.EntityID)
		switch p.EntityType {
		case domain.EntityTypeBill:
			billIDs = append(billIDs, p.EntityID)
		case domain.EntityTypeTicket:
			ticketIDs = append(ticketIDs, p.EntityID)
		case domain.EntityTypeMessage:
			messageIDs = append(messageIDs, p.EntityID)
		}
	}

	set := &entitySet{
		bills:    make(map[uuid.UUID]domain.Bill, len(billIDs)),
		tickets:  make(map[uuid.UUID]domain.Ticket, len(ticketIDs)),
		messages: make(map[uuid.UUID]domain.ClassifiedMessage, len(messageIDs)),
		notes:    make(map[noteKey]domain.PinNote),
	}

	g, gctx := errgroup.WithContext(ctx)

	if len(billIDs) > 0 {
		g.Go(func() error {
			bills, err := s.bills.GetByIDs(gctx, billIDs)
			if err != nil {
				return fmt.Errorf("get bills: %w", err)
			}
			for _, b := range bills {
				set.bills[b.ID] = b
			}
			return nil
		})
	}

	if len(ticketIDs) > 0 {
		g.Go(func() error {
			tickets, err := s.tickets.GetByIDs(gctx, ticketIDs)
			if err != nil {
				return fmt.Errorf("get tickets: %w", err)
			}
			for _, t := range tickets {
				set.tickets[t.ID] = t
			}
			return nil
		})
	}

	if len(messageIDs) > 0 {
		g.Go(func() error {
			msgs, err := s.messages.GetByIDs(gctx, messageIDs)
			if err != nil {
				return fmt.Errorf("get messages: %w", err)
			}
			for _, m := range msgs {
				set.messages[m.ID] = s.classifier.ClassifyMessage(m)
			}
			return nil
		})
	}

	if len(allIDs) > 0 {
		g.Go(func() error {
			notes, err := s.notes.ListByEntities(gctx, userID, allIDs)
			if err != nil {
				return fmt.Errorf("list pin notes: %w", err)
			}
			for _, n := range notes {
				set.notes[noteKey{n.EntityType, n.EntityID}] = n
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// buildItem joins a pin with its record, or its snapshot when the record is gone.
func buildItem(p domain.Pin, set *entitySet, now time.Time) domain.DashboardItem {
	item := domain.DashboardItem{Pin: p}

	switch p.EntityType {
	case domain.EntityTypeBill:
		if b, ok := set.bills[p.EntityID]; ok {
			item.Bill = &b
			item.Title = b.Title
			item.DueDate = b.DueDate
		} else {
			md := domain.DecodeBillPinMetadata(p.Metadata)
			item.Title = md.Title
			item.DueDate = md.DueDate
		}

	case domain.EntityTypeTicket:
		if t, ok := set.tickets[p.EntityID]; ok {
			item.Ticket = &t
			item.Title = t.Title
			item.DueDate = t.DueDate
		} else {
			md := domain.DecodeTicketPinMetadata(p.Metadata)
			item.Title = md.Title
			item.DueDate = md.DueDate
		}

	case domain.EntityTypeMessage:
		if m, ok := set.messages[p.EntityID]; ok {
			item.Message = &m
			item.Title = m.Subject
		} else {
			item.Title = domain.DecodeMessagePinMetadata(p.Metadata).Subject
		}
	}

	if n, ok := set.notes[noteKey{p.EntityType, p.EntityID}]; ok {
		item.Note = &n
		if item.DueDate == nil {
			item.DueDate = n.DueDate
		}
	}

	if item.DueDate != nil {
		d := domain.DaysUntil(*item.DueDate, now)
		item.DaysUntil = &d
	}
	return item
}
