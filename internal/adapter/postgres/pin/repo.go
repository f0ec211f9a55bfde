// Package pin implements the pin ledger using PostgreSQL.
// Single-row writes use raw SQL; list queries are built with squirrel.
package pin

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/attention-backend/internal/adapter/postgres"
	"github.com/heartmarshall/attention-backend/internal/domain"
)

// Repo provides pin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const pinColumns = `id, entity_type, entity_id, is_system_pin, pinned_by, pinned_by_name, metadata,
       pinned_at, updated_at, dismissed_at, dismissed_by, dismissed_by_name`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const getByEntitySQL = `SELECT ` + pinColumns + `
FROM pins
WHERE entity_type = $1 AND entity_id = $2`

const getForUpdateSQL = getByEntitySQL + `
FOR UPDATE`

// upsertSmartPinSQL never touches a dismissed row and skips the write when
// the metadata snapshot is unchanged. prior sees the row as it was before
// the insert, which tells an unchanged row apart from a dismissed one.
const upsertSmartPinSQL = `
WITH prior AS (
    SELECT dismissed_at IS NOT NULL AS dismissed
    FROM pins
    WHERE entity_type = $2 AND entity_id = $3
), written AS (
    INSERT INTO pins (id, entity_type, entity_id, is_system_pin, pinned_by_name, metadata, pinned_at, updated_at)
    VALUES ($1, $2, $3, true, $4, $5, $6, $6)
    ON CONFLICT (entity_type, entity_id) DO UPDATE
        SET metadata = EXCLUDED.metadata,
            updated_at = EXCLUDED.updated_at
        WHERE pins.dismissed_at IS NULL
          AND pins.metadata IS DISTINCT FROM EXCLUDED.metadata
    RETURNING (xmax = 0) AS inserted
)
SELECT (SELECT inserted FROM written), (SELECT dismissed FROM prior)`

const removeSmartPinSQL = `
DELETE FROM pins
WHERE entity_type = $1 AND entity_id = $2 AND is_system_pin`

const createUserPinSQL = `
INSERT INTO pins (id, entity_type, entity_id, is_system_pin, pinned_by, pinned_by_name, metadata, pinned_at, updated_at)
VALUES ($1, $2, $3, false, $4, $5, $6, $7, $7)
RETURNING ` + pinColumns

const dismissSQL = `
UPDATE pins
SET dismissed_at = $3, dismissed_by = $4, dismissed_by_name = $5, updated_at = $3
WHERE entity_type = $1 AND entity_id = $2 AND is_system_pin AND dismissed_at IS NULL`

const deleteUserPinSQL = `
DELETE FROM pins
WHERE entity_type = $1 AND entity_id = $2 AND NOT is_system_pin`

const reclaimSQL = `
UPDATE pins
SET is_system_pin = false, pinned_by = $3, pinned_by_name = $4, pinned_at = $5, updated_at = $5,
    dismissed_at = NULL, dismissed_by = NULL, dismissed_by_name = NULL
WHERE entity_type = $1 AND entity_id = $2 AND is_system_pin AND dismissed_at IS NOT NULL
RETURNING ` + pinColumns

const undoDismissSQL = `
UPDATE pins
SET dismissed_at = NULL, dismissed_by = NULL, dismissed_by_name = NULL, updated_at = $3
WHERE entity_type = $1 AND entity_id = $2 AND is_system_pin AND dismissed_at IS NOT NULL`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the ledger record for (entityType, entityID), dismissed
// or not. Returns domain.ErrNotFound if the slot is empty.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error) {
	return r.get(ctx, getByEntitySQL, entityType, entityID)
}

// GetForUpdate is GetByEntity with a row lock. It must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error) {
	return r.get(ctx, getForUpdateSQL, entityType, entityID)
}

func (r *Repo) get(ctx context.Context, query string, entityType domain.EntityType, entityID uuid.UUID) (*domain.Pin, error) {
	var row pinRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, string(entityType), entityID)
	if err != nil {
		return nil, postgres.MapError(err, "pin", entityID)
	}
	p := row.toDomain()
	return &p, nil
}

// ListPins returns pins matching f, newest first.
func (r *Repo) ListPins(ctx context.Context, f domain.PinFilter) ([]domain.Pin, error) {
	q := postgres.Builder().
		Select(pinColumns).
		From("pins").
		OrderBy("pinned_at DESC", "id")

	if f.EntityType != nil {
		q = q.Where(squirrel.Eq{"entity_type": string(*f.EntityType)})
	}
	if !f.IncludeDismissed {
		q = q.Where(squirrel.Eq{"dismissed_at": nil})
	}
	switch {
	case f.SystemOnly:
		q = q.Where(squirrel.Eq{"is_system_pin": true})
	case f.UserOnly:
		q = q.Where(squirrel.Eq{"is_system_pin": false})
	}
	if f.EntityIDs != nil {
		if len(f.EntityIDs) == 0 {
			return []domain.Pin{}, nil
		}
		q = q.Where("entity_id = ANY(?)", f.EntityIDs)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pins query: %w", err)
	}

	var rows []pinRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}

	pins := make([]domain.Pin, len(rows))
	for i, row := range rows {
		pins[i] = row.toDomain()
	}
	return pins, nil
}

// ListPinnedIDs returns the entity ids of all active pins of one type.
func (r *Repo) ListPinnedIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	return r.listIDs(ctx, entityType, false)
}

// ListSystemPinIDs returns the entity ids of active system pins of one type.
// Dismissed pins are not included.
func (r *Repo) ListSystemPinIDs(ctx context.Context, entityType domain.EntityType) ([]uuid.UUID, error) {
	return r.listIDs(ctx, entityType, true)
}

func (r *Repo) listIDs(ctx context.Context, entityType domain.EntityType, systemOnly bool) ([]uuid.UUID, error) {
	q := postgres.Builder().
		Select("entity_id").
		From("pins").
		Where(squirrel.Eq{"entity_type": string(entityType), "dismissed_at": nil}).
		OrderBy("entity_id")
	if systemOnly {
		q = q.Where(squirrel.Eq{"is_system_pin": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pin ids query: %w", err)
	}

	ids := make([]uuid.UUID, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list %s pin ids: %w", entityType, err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertSmartPin creates or refreshes a system pin. A dismissed record is
// left untouched (UpsertDismissed). When the stored metadata already equals
// metadata nothing is written (UpsertUnchanged). An active user pin gets its
// metadata refreshed but stays a user pin: is_system_pin remains false and
// pinned_by is kept, so a later smart removal cannot delete it.
func (r *Repo) UpsertSmartPin(
	ctx context.Context,
	entityType domain.EntityType,
	entityID uuid.UUID,
	metadata map[string]any,
	now time.Time,
) (domain.UpsertOutcome, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}

	var inserted, dismissed *bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSmartPinSQL,
		uuid.New(), string(entityType), entityID, domain.SystemActorName, metadata, now,
	).Scan(&inserted, &dismissed)
	if err != nil {
		return "", postgres.MapError(err, "pin", entityID)
	}

	switch {
	case inserted != nil && *inserted:
		return domain.UpsertCreated, nil
	case inserted != nil:
		return domain.UpsertUpdated, nil
	case dismissed != nil && *dismissed:
		return domain.UpsertDismissed, nil
	default:
		return domain.UpsertUnchanged, nil
	}
}

// RemoveSmartPin deletes the record only if it is a system pin. Returns
// whether a row was deleted. A user pin in the slot is never touched.
func (r *Repo) RemoveSmartPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeSmartPinSQL, string(entityType), entityID)
	if err != nil {
		return false, postgres.MapError(err, "pin", entityID)
	}
	return tag.RowsAffected() > 0, nil
}

// CreateUserPin inserts a user-owned pin. Returns domain.ErrAlreadyExists if
// the slot is taken.
func (r *Repo) CreateUserPin(
	ctx context.Context,
	entityType domain.EntityType,
	entityID uuid.UUID,
	actor domain.Actor,
	metadata map[string]any,
	now time.Time,
) (*domain.Pin, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}

	var row pinRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, createUserPinSQL,
		uuid.New(), string(entityType), entityID, actor.UserID, actor.Name, metadata, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "pin", entityID)
	}
	p := row.toDomain()
	return &p, nil
}

// Dismiss soft-deletes an active system pin. Returns domain.ErrNotFound if
// there is no active system pin in the slot.
func (r *Repo) Dismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, dismissSQL,
		string(entityType), entityID, now, actor.UserID, actor.Name,
	)
	if err != nil {
		return postgres.MapError(err, "pin", entityID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pin %s: %w", entityID, domain.ErrNotFound)
	}
	return nil
}

// DeleteUserPin hard-deletes a user pin. Returns domain.ErrNotFound if the
// slot does not hold a user pin.
func (r *Repo) DeleteUserPin(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteUserPinSQL, string(entityType), entityID)
	if err != nil {
		return postgres.MapError(err, "pin", entityID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pin %s: %w", entityID, domain.ErrNotFound)
	}
	return nil
}

// ReclaimForUser turns a dismissed system pin into an active user pin.
// Returns domain.ErrNotFound if the slot does not hold a dismissed pin.
func (r *Repo) ReclaimForUser(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, actor domain.Actor, now time.Time) (*domain.Pin, error) {
	var row pinRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, reclaimSQL,
		string(entityType), entityID, actor.UserID, actor.Name, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "pin", entityID)
	}
	p := row.toDomain()
	return &p, nil
}

// UndoDismiss restores a dismissed system pin. Returns whether a row changed;
// any other slot state is a no-op.
func (r *Repo) UndoDismiss(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, now time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, undoDismissSQL, string(entityType), entityID, now)
	if err != nil {
		return false, postgres.MapError(err, "pin", entityID)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type pinRow struct {
	ID              uuid.UUID      `db:"id"`
	EntityType      string         `db:"entity_type"`
	EntityID        uuid.UUID      `db:"entity_id"`
	IsSystemPin     bool           `db:"is_system_pin"`
	PinnedBy        *uuid.UUID     `db:"pinned_by"`
	PinnedByName    string         `db:"pinned_by_name"`
	Metadata        map[string]any `db:"metadata"`
	PinnedAt        time.Time      `db:"pinned_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DismissedAt     *time.Time     `db:"dismissed_at"`
	DismissedBy     *uuid.UUID     `db:"dismissed_by"`
	DismissedByName *string        `db:"dismissed_by_name"`
}

func (r pinRow) toDomain() domain.Pin {
	md := r.Metadata
	if md == nil {
		md = map[string]any{}
	}
	return domain.Pin{
		ID:              r.ID,
		EntityType:      domain.EntityType(r.EntityType),
		EntityID:        r.EntityID,
		IsSystemPin:     r.IsSystemPin,
		PinnedBy:        r.PinnedBy,
		PinnedByName:    r.PinnedByName,
		Metadata:        md,
		PinnedAt:        r.PinnedAt,
		UpdatedAt:       r.UpdatedAt,
		DismissedAt:     r.DismissedAt,
		DismissedBy:     r.DismissedBy,
		DismissedByName: r.DismissedByName,
	}
}
