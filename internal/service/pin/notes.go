package pin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// UpsertNote creates or replaces the calling user's note on an entity.
// The note does not require an active pin.
func (s *Service) UpsertNote(ctx context.Context, input UpsertNoteInput) (*domain.PinNote, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.notesCfg.MaxLength); err != nil {
		return nil, err
	}

	note, err := s.notes.Upsert(ctx, domain.PinNote{
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		UserID:     actor.UserID,
		Text:       strings.TrimSpace(input.Text),
		DueDate:    dateOnly(input.DueDate),
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("upsert pin note: %w", err)
	}

	s.log.InfoContext(ctx, "pin note saved",
		slog.String("user_id", actor.UserID.String()),
		slog.String("entity_type", input.EntityType.String()),
		slog.String("entity_id", input.EntityID.String()),
	)

	return note, nil
}

// DeleteNote removes the calling user's note on an entity.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, actor.UserID, input.EntityType, input.EntityID); err != nil {
		return fmt.Errorf("delete pin note: %w", err)
	}

	s.log.InfoContext(ctx, "pin note deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("entity_type", input.EntityType.String()),
		slog.String("entity_id", input.EntityID.String()),
	)

	return nil
}

// dateOnly truncates t to its UTC calendar day.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
