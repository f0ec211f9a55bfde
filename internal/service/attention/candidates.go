package attention

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// Candidates returns the entities of one domain that currently satisfy its
// urgency predicate, each with the metadata to snapshot on its pin.
func (s *Service) Candidates(ctx context.Context, entityType domain.EntityType, now time.Time) ([]domain.AttentionCandidate, error) {
	switch entityType {
	case domain.EntityTypeBill:
		return s.billCandidates(ctx, now)
	case domain.EntityTypeTicket:
		return s.ticketCandidates(ctx, now)
	case domain.EntityTypeMessage:
		return s.messageCandidates(ctx, now)
	}
	return nil, domain.NewValidationError("domain", fmt.Sprintf("no sync for %q", entityType))
}

func (s *Service) billCandidates(ctx context.Context, now time.Time) ([]domain.AttentionCandidate, error) {
	bills, err := s.bills.ListUnsettled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unsettled bills: %w", err)
	}

	rules := BillRules{DueSoonDays: s.cfg.BillDueSoonDays, SentGraceDays: s.cfg.BillSentGraceDays}
	out := make([]domain.AttentionCandidate, 0)
	for _, b := range bills {
		if BillNeedsAttention(b, now, rules) {
			out = append(out, domain.AttentionCandidate{EntityID: b.ID, Metadata: domain.NewBillPinMetadata(b)})
		}
	}
	return out, nil
}

func (s *Service) ticketCandidates(ctx context.Context, now time.Time) ([]domain.AttentionCandidate, error) {
	tickets, err := s.tickets.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tickets: %w", err)
	}

	rules := TicketRules{DueSoonDays: s.cfg.TicketDueSoonDays}
	out := make([]domain.AttentionCandidate, 0)
	for _, t := range tickets {
		if TicketNeedsAttention(t, now, rules) {
			out = append(out, domain.AttentionCandidate{EntityID: t.ID, Metadata: domain.NewTicketPinMetadata(t)})
		}
	}
	return out, nil
}

func (s *Service) messageCandidates(ctx context.Context, now time.Time) ([]domain.AttentionCandidate, error) {
	classified, err := s.recentMessages(ctx)
	if err != nil {
		return nil, err
	}

	uncollected := make(map[uuid.UUID]struct{})
	for _, m := range s.correlator.UncollectedPackages(classified, nil, now) {
		uncollected[m.ID] = struct{}{}
	}

	rules := MessageRules{Window: s.cfg.MessageWindow()}
	out := make([]domain.AttentionCandidate, 0)
	for _, m := range classified {
		_, waiting := uncollected[m.ID]
		if waiting || MessageNeedsAttention(m, now, rules) {
			out = append(out, domain.AttentionCandidate{EntityID: m.ID, Metadata: domain.NewMessagePinMetadata(m)})
		}
	}
	return out, nil
}

// recentMessages fetches and classifies the newest messages of the
// configured source.
func (s *Service) recentMessages(ctx context.Context) ([]domain.ClassifiedMessage, error) {
	msgs, err := s.messages.ListRecent(ctx, s.cfg.MessageSource, s.cfg.MessageFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	return s.classifier.ClassifyAll(msgs), nil
}
