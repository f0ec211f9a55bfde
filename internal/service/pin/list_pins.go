package pin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// PinsByOwner partitions the active pins of one entity type.
type PinsByOwner struct {
	Smart []domain.Pin
	User  []domain.Pin
}

// GetPinnedIDs returns the ids of all active pins of one entity type.
func (s *Service) GetPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	ids, err := s.pins.ListPinnedIDs(ctx, entityType)
	if err != nil {
		return nil, fmt.Errorf("list pinned ids: %w", err)
	}
	return ids, nil
}

// GetSmartAndUserPins returns the active pins of one entity type split by
// ownership. Dismissed pins are excluded.
func (s *Service) GetSmartAndUserPins(ctx context.Context, entityType domain.EntityType) (*PinsByOwner, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	if err := validateEntityType(entityType); err != nil {
		return nil, err
	}

	pins, err := s.pins.ListPins(ctx, domain.PinFilter{EntityType: &entityType})
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	out := &PinsByOwner{Smart: []domain.Pin{}, User: []domain.Pin{}}
	for _, p := range pins {
		if p.IsSystemPin {
			out.Smart = append(out.Smart, p)
		} else {
			out.User = append(out.User, p)
		}
	}
	return out, nil
}
