package pin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/attention-backend/internal/domain"
	"github.com/heartmarshall/attention-backend/pkg/ctxutil"
)

// ToggleResult reports what a toggle did to the ledger.
type ToggleResult struct {
	Pinned bool
	Action domain.ToggleAction
	// Pin is the active record after the toggle; nil when unpinned.
	Pin *domain.Pin
}

// TogglePin flips the pinned state of an entity for the calling user.
// An active system pin is dismissed, an active user pin is deleted, an empty
// slot gets a new user pin and a dismissed system pin is reclaimed as a user pin.
func (s *Service) TogglePin(ctx context.Context, input TogglePinInput) (*ToggleResult, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var result ToggleResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.pins.GetForUpdate(txCtx, input.EntityType, input.EntityID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get pin: %w", err)
		}

		action := domain.NextToggleAction(current.Lifecycle())
		result = ToggleResult{Pinned: action.PinnedAfter(), Action: action}

		switch action {
		case domain.ToggleCreateUserPin:
			md, err := s.snapshot(txCtx, input.EntityRef)
			if err != nil {
				return err
			}
			p, err := s.pins.CreateUserPin(txCtx, input.EntityType, input.EntityID, actor, md.ToMap(), now)
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("create user pin: %w", domain.ErrConflict)
			}
			if err != nil {
				return fmt.Errorf("create user pin: %w", err)
			}
			result.Pin = p

		case domain.ToggleDismiss:
			if err := s.pins.Dismiss(txCtx, input.EntityType, input.EntityID, actor, now); err != nil {
				return fmt.Errorf("dismiss pin: %w", err)
			}

		case domain.ToggleDelete:
			if err := s.pins.DeleteUserPin(txCtx, input.EntityType, input.EntityID); err != nil {
				return fmt.Errorf("delete user pin: %w", err)
			}

		case domain.ToggleReclaimForUser:
			p, err := s.pins.ReclaimForUser(txCtx, input.EntityType, input.EntityID, actor, now)
			if err != nil {
				return fmt.Errorf("reclaim pin: %w", err)
			}
			result.Pin = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle pin: %w", err)
	}

	s.log.InfoContext(ctx, "pin toggled",
		slog.String("user_id", actor.UserID.String()),
		slog.String("entity_type", input.EntityType.String()),
		slog.String("entity_id", input.EntityID.String()),
		slog.String("action", string(result.Action)),
	)

	return &result, nil
}

// snapshot fetches the entity and builds the metadata stored on its pin.
func (s *Service) snapshot(ctx context.Context, ref EntityRef) (domain.PinMetadata, error) {
	switch ref.EntityType {
	case domain.EntityTypeBill:
		b, err := s.bills.GetByID(ctx, ref.EntityID)
		if err != nil {
			return nil, fmt.Errorf("get bill: %w", err)
		}
		return domain.NewBillPinMetadata(*b), nil

	case domain.EntityTypeTicket:
		t, err := s.tickets.GetByID(ctx, ref.EntityID)
		if err != nil {
			return nil, fmt.Errorf("get ticket: %w", err)
		}
		return domain.NewTicketPinMetadata(*t), nil

	case domain.EntityTypeMessage:
		m, err := s.messages.GetByID(ctx, ref.EntityID)
		if err != nil {
			return nil, fmt.Errorf("get message: %w", err)
		}
		return domain.NewMessagePinMetadata(s.classifier.ClassifyMessage(*m)), nil
	}
	return nil, domain.NewValidationError("entity_type", "invalid value")
}

// actorFromCtx builds the acting user from request identity. The display name
// falls back to the user id.
func actorFromCtx(ctx context.Context) (domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	name := ctxutil.UserNameFromCtx(ctx)
	if name == "" {
		name = userID.String()
	}
	return domain.Actor{UserID: userID, Name: name}, nil
}
