package attention

import (
	"context"
	"fmt"

	"github.com/heartmarshall/attention-backend/internal/correlate"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// GetBuildingLinkNeedsAttention returns the unresolved outages, uncollected
// packages and user-flagged messages among the recent messages. Entities
// whose pin is dismissed are left out of the outage and package lists.
func (s *Service) GetBuildingLinkNeedsAttention(ctx context.Context) (*domain.BuildingLinkAttention, error) {
	classified, err := s.recentMessages(ctx)
	if err != nil {
		return nil, err
	}

	msgType := domain.EntityTypeMessage
	pins, err := s.pins.ListPins(ctx, domain.PinFilter{EntityType: &msgType, IncludeDismissed: true})
	if err != nil {
		return nil, fmt.Errorf("list message pins: %w", err)
	}

	view := s.correlator.NeedsAttention(classified, correlate.IndexPins(pins), s.now())
	return &view, nil
}
