package pin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// UndoDismiss restores a dismissed system pin. Returns whether a record
// changed; any other slot state is a no-op and nothing is written.
func (s *Service) UndoDismiss(ctx context.Context, input UndoDismissInput) (bool, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return false, err
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	var changed bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.pins.GetForUpdate(txCtx, input.EntityType, input.EntityID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get pin: %w", err)
		}
		if !current.Lifecycle().AllowsUndoDismiss() {
			return nil
		}

		changed, err = s.pins.UndoDismiss(txCtx, input.EntityType, input.EntityID, s.now())
		return err
	})
	if err != nil {
		return false, fmt.Errorf("undo dismiss: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "pin dismissal undone",
			slog.String("user_id", actor.UserID.String()),
			slog.String("entity_type", input.EntityType.String()),
			slog.String("entity_id", input.EntityID.String()),
		)
	}

	return changed, nil
}
