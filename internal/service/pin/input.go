package pin

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// EntityRef identifies the ledger slot an operation targets.
type EntityRef struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
}

func (r EntityRef) check(errs *domain.FieldErrors) {
	if !r.EntityType.IsValid() {
		errs.Add("entity_type", "invalid value")
	}
	if r.EntityID == uuid.Nil {
		errs.Add("entity_id", "required")
	}
}

// TogglePinInput holds the parameters for toggling a pin.
type TogglePinInput struct {
	EntityRef
}

// Validate checks all fields and collects all errors.
func (i TogglePinInput) Validate() error {
	var errs domain.FieldErrors
	i.check(&errs)
	return errs.Err()
}

// UndoDismissInput holds the parameters for restoring a dismissed pin.
type UndoDismissInput struct {
	EntityRef
}

// Validate checks all fields and collects all errors.
func (i UndoDismissInput) Validate() error {
	var errs domain.FieldErrors
	i.check(&errs)
	return errs.Err()
}

// UpsertNoteInput holds the parameters for creating or replacing a pin note.
type UpsertNoteInput struct {
	EntityRef
	Text    string
	DueDate *time.Time
}

// Validate checks all fields and collects all errors. Text is measured in
// characters after trimming.
func (i UpsertNoteInput) Validate(maxLength int) error {
	var errs domain.FieldErrors
	i.check(&errs)

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs.Add("text", "required")
	}
	if utf8.RuneCountInString(text) > maxLength {
		errs.Add("text", fmt.Sprintf("max %d characters", maxLength))
	}
	return errs.Err()
}

// DeleteNoteInput holds the parameters for deleting a pin note.
type DeleteNoteInput struct {
	EntityRef
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	var errs domain.FieldErrors
	i.check(&errs)
	return errs.Err()
}

func validateEntityType(t domain.EntityType) error {
	if !t.IsValid() {
		return domain.NewValidationError("entity_type", "invalid value")
	}
	return nil
}
